package routes

import (
	"github.com/Chandu5342/RestaurntBackend/configs"
	"github.com/Chandu5342/RestaurntBackend/controllers"
	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/middlewares"
	"github.com/Chandu5342/RestaurntBackend/pkg/storage"
	"github.com/Chandu5342/RestaurntBackend/repository"
	"github.com/Chandu5342/RestaurntBackend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store storage.Storage) {
	users := repository.NewUserRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	logs := repository.NewLogRepository(db)

	authSvc := services.NewAuthService(users, restaurants, store, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restaurants)

	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	uploadCtrl := controllers.NewUploadController(store)
	logCtrl := controllers.NewLogController(logs)

	// audit every request handled below
	r.Use(middlewares.RequestLogger(logs))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(db, cfg.JWTSecret), authCtrl.Me)
	}

	// super-admin review queue
	rest := r.Group("/restaurants", middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleSuperAdmin))
	{
		rest.GET("/pending", restCtrl.Pending)
		rest.POST("/:id/approve", restCtrl.Approve)
	}

	r.POST("/upload", uploadCtrl.Upload)
	r.GET("/logs", middlewares.AuthMiddleware(db, cfg.JWTSecret), logCtrl.List)
}
