package repository

import (
	"github.com/Chandu5342/RestaurntBackend/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindPending is the super-admin review queue, newest first, with the
// owner loaded for display.
func (r *RestaurantRepository) FindPending() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Owner").
		Where("status = ?", entity.RestaurantStatusPending).
		Order("id DESC").
		Find(&rests).Error
	return rests, err
}

// ApproveWithOwner flips the restaurant to approved and unblocks its
// owner in one transaction, so the two rows cannot diverge.
func (r *RestaurantRepository) ApproveWithOwner(rest *entity.Restaurant) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		rest.Status = entity.RestaurantStatusApproved
		rest.Approved = true
		if err := tx.Save(rest).Error; err != nil {
			return err
		}

		return tx.Model(&entity.User{}).
			Where("id = ?", rest.OwnerID).
			Update("approved", true).Error
	})
}
