package configs

import (
	"log"
	"strings"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedSuperAdmin creates the bootstrap reviewer account on first run.
// Approvals need at least one super admin, and nothing else can mint
// one.
func SeedSuperAdmin(cfg *Config) error {
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		log.Println("skip seeding super admin: missing SUPERADMIN_EMAIL/SUPERADMIN_PASSWORD")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.SuperAdminEmail))

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("super admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Super Admin",
		Role:     entity.RoleSuperAdmin,
		Approved: true,
	}).Error
}
