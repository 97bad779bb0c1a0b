package repository

import (
	"github.com/Chandu5342/RestaurntBackend/entity"
	"gorm.io/gorm"
)

type LogRepository struct {
	DB *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{DB: db}
}

func (r *LogRepository) Create(l *entity.Log) error {
	return r.DB.Create(l).Error
}

func (r *LogRepository) Recent(limit int) ([]entity.Log, error) {
	var logs []entity.Log
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
