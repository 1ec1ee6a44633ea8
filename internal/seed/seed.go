package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/aegisone/campus/internal/app/models"
	appRepos "github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/config"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account and the initial campus
// map locations if they are missing. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	locationRepo := appRepos.NewLocationRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin account, campus locations)...")
	var finalErr error

	// --- Default admin --- //
	hashed, err := auth.HashPassword(cfg.Campus.DefaultImportPassword)
	if err != nil {
		return err
	}
	admin := &appModels.User{
		Email:    "admin@" + cfg.Campus.EmailDomain,
		Name:     "Platform Admin",
		Password: hashed,
		Role:     appModels.RoleAdmin,
		Status:   appModels.AccountActive,
	}
	if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		finalErr = errors.Join(finalErr, err)
	} else if err == nil {
		lgr.Info().Str("email", admin.Email).Msg("Default admin account created; change the password immediately")
	}

	// --- Campus map locations --- //
	existing, err := locationRepo.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing campus locations")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	describe := func(s string) *string { return &s }
	locations := []*appModels.CampusLocation{
		{Name: "Main Academic Block", Description: describe("Lecture halls and faculty offices"), Category: "academic", Latitude: 31.7754, Longitude: 76.9861},
		{Name: "Central Library", Description: describe("Study spaces and reference section"), Category: "facility", Latitude: 31.7761, Longitude: 76.9874},
		{Name: "Parashar Hostel", Category: "hostel", Latitude: 31.7739, Longitude: 76.9889},
		{Name: "Pine Mess", Description: describe("North campus dining hall"), Category: "mess", Latitude: 31.7745, Longitude: 76.9880},
		{Name: "Health Centre", Description: describe("First aid and ambulance point"), Category: "medical", Latitude: 31.7768, Longitude: 76.9852},
	}
	for _, l := range locations {
		if err := locationRepo.Create(ctx, l); err != nil {
			lgr.Error().Err(err).Str("name", l.Name).Msg("Error creating campus location")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if finalErr == nil {
		lgr.Info().Int("count", len(locations)).Msg("Seeded campus map locations")
	}

	return finalErr
}
