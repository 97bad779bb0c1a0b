package main

import (
	"fmt"
	"log"

	"github.com/Chandu5342/RestaurntBackend/configs"
	"github.com/Chandu5342/RestaurntBackend/middlewares"
	"github.com/Chandu5342/RestaurntBackend/pkg/storage"
	"github.com/Chandu5342/RestaurntBackend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedSuperAdmin(cfg); err != nil {
		log.Fatalf("seed super admin failed: %v", err)
	}

	store := storage.NewLocal(cfg.UploadDir, "/uploads")

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve locally stored avatars and logos
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
