package repository

import (
	"github.com/Chandu5342/RestaurntBackend/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Restaurant").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Restaurant").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// CreateWithRestaurant persists an admin account and its restaurant in
// one transaction: the user row, then the restaurant owned by the new
// id, then the back-link on the user. Nothing survives a failure
// part-way through.
func (r *UserRepository) CreateWithRestaurant(u *entity.User, rest *entity.Restaurant) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		rest.OwnerID = u.ID
		if err := tx.Create(rest).Error; err != nil {
			return err
		}

		if err := tx.Model(u).Update("restaurant_id", rest.ID).Error; err != nil {
			return err
		}
		u.RestaurantID = &rest.ID
		u.Restaurant = rest
		return nil
	})
}
