package configs

import (
	"github.com/Chandu5342/RestaurntBackend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey, which the registration path relies on for
	// concurrent duplicate emails.
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Log{},
	)
}
