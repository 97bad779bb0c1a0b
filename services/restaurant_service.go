package services

import (
	"errors"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/pkg/apperr"
	"github.com/Chandu5342/RestaurntBackend/repository"

	"gorm.io/gorm"
)

// RestaurantService is the super-admin review queue over pending
// restaurants.
type RestaurantService struct {
	restaurants *repository.RestaurantRepository
}

func NewRestaurantService(restaurants *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants}
}

func (s *RestaurantService) Pending() ([]entity.Restaurant, error) {
	return s.restaurants.FindPending()
}

// Approve moves a restaurant and its owner out of the review queue:
// status and the redundant approved flag flip together with the
// owner's login gate, all in one transaction. Approving an already
// approved restaurant is a no-op success so two reviewers cannot race
// each other into an error.
func (s *RestaurantService) Approve(id uint) (*entity.Restaurant, error) {
	rest, err := s.restaurants.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Not found")
		}
		return nil, err
	}

	if rest.Approved && rest.Status == entity.RestaurantStatusApproved {
		return rest, nil
	}

	if err := s.restaurants.ApproveWithOwner(rest); err != nil {
		return nil, err
	}
	return rest, nil
}
