// catalog_store.go
//
// A reusable software component catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-catalog.
// jam-build-catalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-catalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-catalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// CatalogStore persists components and categories with GORM.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a store over db. The schema must be migrated.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Columns an update never writes: identity, ownership and the counters owned by IncrementCounters.
var componentUpdateOmit = []string{"id", "created_by", "created_at", "usage_count", "query_count", "last_used"}

// ListComponents returns every component, most used first, then in creation order.
func (s *CatalogStore) ListComponents(ctx context.Context) ([]catalog.Component, error) {
	var rows []models.Component
	if err := s.db.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "catalog:list_components")).
		Order("usage_count DESC, created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]catalog.Component, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

// GetComponent returns one component.
func (s *CatalogStore) GetComponent(ctx context.Context, id string) (catalog.Component, error) {
	row, err := findComponent(s.db.WithContext(ctx), id)
	if err != nil {
		return catalog.Component{}, err
	}
	return row.Entity(), nil
}

// CreateComponent inserts a component and returns it with its new id.
func (s *CatalogStore) CreateComponent(ctx context.Context, c catalog.Component) (catalog.Component, error) {
	row := models.NewComponent(c)
	row.ID = ""
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.Component{}, err
	}
	return row.Entity(), nil
}

// UpdateComponent writes the editable fields of c. Counters are left untouched so a
// concurrent use is never overwritten.
func (s *CatalogStore) UpdateComponent(ctx context.Context, c catalog.Component) (catalog.Component, error) {
	var updated models.Component

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findComponent(tx.Clauses(clause.Locking{Strength: "UPDATE"}), c.ID); err != nil {
			return err
		}

		row := models.NewComponent(c)
		if err := tx.Model(&models.Component{ID: c.ID}).
			Select("*").
			Omit(componentUpdateOmit...).
			Updates(&row).Error; err != nil {
			return err
		}

		var err error
		updated, err = findComponent(tx, c.ID)
		return err
	})
	if err != nil {
		return catalog.Component{}, err
	}
	return updated.Entity(), nil
}

// DeleteComponent hard-deletes a component.
func (s *CatalogStore) DeleteComponent(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Component{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("component %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// IncrementCounters adds delta to the counters of component id and moves LastUsed to at,
// in one relative UPDATE, then reads back the resulting values.
func (s *CatalogStore) IncrementCounters(ctx context.Context, id string, delta catalog.CounterDelta, at time.Time) (catalog.Counters, error) {
	var row models.Component

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Component{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"usage_count": gorm.Expr("usage_count + ?", delta.Usage),
				"query_count": gorm.Expr("query_count + ?", delta.Query),
				"last_used":   at,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("component %s: %w", id, catalog.ErrNotFound)
		}

		return tx.Select("id", "usage_count", "query_count", "last_used").
			Where("id = ?", id).
			Take(&row).Error
	})
	if err != nil {
		return catalog.Counters{}, err
	}
	return row.Entity().Counters(), nil
}

// ListCategories returns every category in creation order.
func (s *CatalogStore) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var rows []models.Category
	if err := s.db.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "catalog:list_categories")).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]catalog.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

// GetCategory returns one category.
func (s *CatalogStore) GetCategory(ctx context.Context, id string) (catalog.Category, error) {
	row, err := findCategory(s.db.WithContext(ctx), id)
	if err != nil {
		return catalog.Category{}, err
	}
	return row.Entity(), nil
}

// CreateCategory inserts a category and returns it with its new id.
func (s *CatalogStore) CreateCategory(ctx context.Context, c catalog.Category) (catalog.Category, error) {
	row := models.NewCategory(c)
	row.ID = ""
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.Category{}, err
	}
	return row.Entity(), nil
}

// UpdateCategory writes name, description and parent of c.
func (s *CatalogStore) UpdateCategory(ctx context.Context, c catalog.Category) (catalog.Category, error) {
	var updated models.Category

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCategory(tx.Clauses(clause.Locking{Strength: "UPDATE"}), c.ID); err != nil {
			return err
		}

		row := models.NewCategory(c)
		if err := tx.Model(&models.Category{ID: c.ID}).
			Select("name", "description", "parent_id").
			Updates(&row).Error; err != nil {
			return err
		}

		var err error
		updated, err = findCategory(tx, c.ID)
		return err
	})
	if err != nil {
		return catalog.Category{}, err
	}
	return updated.Entity(), nil
}

// DeleteCategory hard-deletes one category. Children keep their parent id.
func (s *CatalogStore) DeleteCategory(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

func findComponent(db *gorm.DB, id string) (models.Component, error) {
	var row models.Component
	if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return row, fmt.Errorf("component %s: %w", id, catalog.ErrNotFound)
		}
		return row, err
	}
	return row, nil
}

func findCategory(db *gorm.DB, id string) (models.Category, error) {
	var row models.Category
	if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return row, fmt.Errorf("category %s: %w", id, catalog.ErrNotFound)
		}
		return row, err
	}
	return row, nil
}
