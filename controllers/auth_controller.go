package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/pkg/resp"
	"github.com/Chandu5342/RestaurntBackend/services"
	"github.com/Chandu5342/RestaurntBackend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	Email          string `form:"email" json:"email" binding:"required,email"`
	Password       string `form:"password" json:"password" binding:"required,min=6"`
	Role           string `form:"role" json:"role"`
	Location       string `form:"location" json:"location"`
	RestaurantName string `form:"restaurantName" json:"restaurantName"`
	AvatarURL      string `form:"avatarUrl" json:"avatarUrl"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /auth/register — accepts JSON or a multipart form with an
// optional "avatar" file part.
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	input := services.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Location:       req.Location,
		RestaurantName: req.RestaurantName,
		AvatarURL:      req.AvatarURL,
	}

	if file, err := c.FormFile("avatar"); err == nil {
		data, err := readUpload(file)
		if err != nil {
			resp.ServerError(c, "Image upload failed")
			return
		}
		input.Upload = data
	}

	result, err := a.Service.Register(input)
	if err != nil {
		resp.Error(c, err)
		return
	}

	if result.Pending {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registered. Pending approval by a Super Admin.",
			"user":    pendingUserJSON(result.User),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token, "user": userJSON(result.User)})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userJSON(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

func userJSON(u *entity.User) gin.H {
	var avatar any
	if !u.Avatar.Empty() {
		avatar = u.Avatar
	}
	var restaurant any
	if u.Restaurant != nil {
		restaurant = u.Restaurant
	}
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar":     avatar,
		"role":       u.Role,
		"location":   u.Location,
		"approved":   u.Approved,
		"restaurant": restaurant,
	}
}

// the pending acknowledgment omits avatar and location
func pendingUserJSON(u *entity.User) gin.H {
	var restaurant any
	if u.Restaurant != nil {
		restaurant = u.Restaurant
	}
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role,
		"approved":   u.Approved,
		"restaurant": restaurant,
	}
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
