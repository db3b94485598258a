package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/localnerve/jam-build-catalog/data"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/logger"
	"github.com/localnerve/jam-build-catalog/internal/models"
	"github.com/localnerve/jam-build-catalog/internal/types"
	"gorm.io/gorm"
)

// Seed loads the embedded starter catalog into an empty database.
// It returns the number of components inserted; a non-empty catalog is left alone.
func Seed(ctx context.Context, db *gorm.DB, log *logger.Logger) (int, error) {
	return SeedFrom(ctx, db, log, data.SeedCatalog)
}

// SeedFrom loads a seed document in the data/seed.json format.
func SeedFrom(ctx context.Context, db *gorm.DB, log *logger.Logger, document []byte) (int, error) {
	var seed types.SeedCatalog
	if err := json.Unmarshal(document, &seed); err != nil {
		return 0, fmt.Errorf("invalid seed document: %w", err)
	}

	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Component{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		byName := make(map[string]string, len(seed.Categories))
		for _, sc := range seed.Categories {
			category := catalog.Category{
				Name:        sc.Name,
				Description: sc.Description,
				ParentID:    byName[sc.Parent],
				CreatedBy:   seed.CreatedBy,
				CreatedAt:   now,
			}
			if err := catalog.ValidateCategory(category); err != nil {
				return err
			}
			row := models.NewCategory(category)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			byName[row.Name] = row.ID
		}

		for _, sc := range seed.Components {
			component := catalog.Normalize(sc.Component())
			component.CreatedBy = seed.CreatedBy
			component.Timestamp = now
			component.UsageCount = sc.UsageCount.Uint64()
			if err := catalog.Validate(component); err != nil {
				return fmt.Errorf("seed component %q: %w", sc.Name, err)
			}
			row := models.NewComponent(component)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		log.Info("seeded catalog", "components", inserted, "categories", len(seed.Categories))
	}
	return inserted, nil
}
