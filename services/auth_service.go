package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/pkg/apperr"
	"github.com/Chandu5342/RestaurntBackend/pkg/storage"
	"github.com/Chandu5342/RestaurntBackend/repository"
	"github.com/Chandu5342/RestaurntBackend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration and login. The approval state machine
// starts here: admins register into a pending restaurant and cannot log
// in until a super admin approves it.
type AuthService struct {
	users       *repository.UserRepository
	restaurants *repository.RestaurantRepository
	store       storage.Storage
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(users *repository.UserRepository, restaurants *repository.RestaurantRepository, store storage.Storage, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		restaurants: restaurants,
		store:       store,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	Location       string
	RestaurantName string
	AvatarURL      string
	Upload         []byte
}

type RegisterResult struct {
	User  *entity.User
	Token string

	// Pending means no token was issued: the account needs super-admin
	// approval before it can log in.
	Pending bool
}

func (s *AuthService) Register(in RegisterInput) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	rolePresent := strings.TrimSpace(in.Role) != ""
	role := entity.RoleCustomer
	if rolePresent {
		parsed, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, apperr.Validation("unknown role " + in.Role)
		}
		role = parsed
	}

	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Dependency("hash password failed", err)
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(in.Name),
		Location: in.Location,
		Role:     role,
		// only super admins skip the review queue
		Approved: role == entity.RoleSuperAdmin,
	}

	// Exactly one of user.Avatar / restaurant.Logo receives the image,
	// chosen by role; an upload result overwrites a plain URL
	// reference. The upload runs before any row is written, so a
	// storage failure persists nothing.
	target := mediaTarget(role, rolePresent)

	var image entity.Image
	if target != mediaNone {
		if in.AvatarURL != "" {
			image = entity.Image{URL: in.AvatarURL}
		}
		if len(in.Upload) > 0 {
			obj, err := s.store.Save(in.Upload, target.folder())
			if err != nil {
				return nil, apperr.Dependency("Image upload failed", err)
			}
			image = entity.Image{URL: obj.URL, StorageID: obj.StorageID}
		}
	}

	if role == entity.RoleAdmin {
		name := strings.TrimSpace(in.RestaurantName)
		if name == "" {
			name = user.Name + "'s Restaurant"
		}
		rest := &entity.Restaurant{
			Name:    name,
			Address: in.Location,
			Status:  entity.RestaurantStatusPending,
			Logo:    image,
		}
		if err := s.users.CreateWithRestaurant(user, rest); err != nil {
			return nil, translateCreateErr(err)
		}
	} else {
		user.Avatar = image
		if err := s.users.Create(user); err != nil {
			return nil, translateCreateErr(err)
		}
	}

	if role == entity.RoleAdmin && !user.Approved {
		return &RegisterResult{User: user, Pending: true}, nil
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperr.Dependency("cannot generate token", err)
	}
	return &RegisterResult{User: user, Token: token}, nil
}

// Login checks credentials and enforces the approval gate. Missing
// account and wrong password return the same message so callers cannot
// probe for registered emails; the pending case is deliberately
// distinct.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}

	if user.Role == entity.RoleAdmin && !user.Approved {
		return "", nil, apperr.Forbidden("Your registration is pending approval by a super admin")
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Dependency("cannot generate token", err)
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// a concurrent registration can slip past CountByEmail; the unique
// index catches it
func translateCreateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("Email already in use")
	}
	return err
}
