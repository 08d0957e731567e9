package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"shopforge/internal/models"
)

// DemoOwnerID is the fixed owner UUID the development seed creates a
// storefront for. The local editor UI identifies as this owner.
const DemoOwnerID = "00000000-0000-0000-0000-000000000001"

// Seed populates the database with initial development data.
// It creates a demo storefront if no sites exist yet. The demo site is
// deliberately incomplete so the coaching panel has work to suggest.
func Seed(db *sql.DB) error {
	// Check if any sites exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sites").Scan(&count); err != nil {
		return fmt.Errorf("seed check sites: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	cfg := models.DefaultSiteConfig()
	cfg.Content.HeroHeading = "Fresh-Baked Happiness"
	cfg.Content.HeroSubheading = "Small-batch cookies shipped the day they leave the oven."
	cfg.Content.Reviews = []models.Review{
		{Author: "Maya", Text: "The best cookies I have ever ordered online.", Rating: 5},
	}
	cfg.Content.Products = []models.Product{
		{Name: "Chocolate Chip Dozen", PriceCents: 1800},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("seed encode config: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO sites (owner_id, title, data)
		VALUES ($1, $2, $3)
	`, DemoOwnerID, "Demo Cookie Shop", data)
	if err != nil {
		return fmt.Errorf("seed insert site: %w", err)
	}

	slog.Info("database seeded with demo storefront",
		"owner_id", DemoOwnerID,
		"title", "Demo Cookie Shop",
	)

	return nil
}
