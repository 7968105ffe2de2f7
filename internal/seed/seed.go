package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/repositories"
	"github.com/collegehub/backend/internal/config"
	"github.com/collegehub/backend/internal/pkg/auth"
	"github.com/collegehub/backend/internal/pkg/logger"
)

// CreateDefaultData ensures the Admin role and a default admin account exist.
// Both steps are idempotent; an existing record is left untouched. Without an
// Admin role every privileged endpoint fails, so this runs on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	roleRepo := repositories.NewRoleRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	adminRole, err := roleRepo.GetByName(ctx, models.AdminRoleName)
	if err != nil {
		return fmt.Errorf("error checking for admin role: %w", err)
	}
	if adminRole == nil {
		adminRole = &models.Role{
			Name:   models.AdminRoleName,
			Status: models.StatusActive,
		}
		if err := roleRepo.Create(ctx, adminRole); err != nil {
			return fmt.Errorf("error creating admin role: %w", err)
		}
		logger.Info().Msg("Created Admin role")
	}

	if cfg.Seed.AdminPassword == "" {
		logger.Warn().Msg("No seed admin password configured, skipping default admin user")
		return nil
	}

	existing, err := userRepo.GetByEmail(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		return fmt.Errorf("error checking for admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		UserID:   "USR-ADMIN",
		Name:     "Administrator",
		Email:    cfg.Seed.AdminEmail,
		PhoneNo:  "0000000000",
		Password: hashed,
		DOB:      "1970-01-01",
		Role:     adminRole.ID,
		Status:   models.StatusActive,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	logger.Info().Str("email", cfg.Seed.AdminEmail).Msg("Created default admin user")
	return nil
}
