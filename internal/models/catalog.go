package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"gorm.io/gorm"
)

// Component is the stored row of a catalog component. The payload variant is
// flattened into Type plus the columns of that variant.
type Component struct {
	ID             string `gorm:"primaryKey;size:36"`
	Name           string `gorm:"size:255;not null;index"`
	Description    string `gorm:"size:4000"`
	Type           string `gorm:"size:16;not null"`
	Language       string `gorm:"size:64"`
	Body           string
	Notation       string `gorm:"size:64"`
	FileReference  string `gorm:"size:1024"`
	Category       string `gorm:"size:255;not null;index"`
	ParentCategory string `gorm:"size:255;index"`
	Keywords       StringList
	Dependencies   StringList
	Version        string `gorm:"size:64;not null"`
	UsageCount     uint64 `gorm:"not null;default:0"`
	QueryCount     uint64 `gorm:"not null;default:0"`
	LastUsed       *time.Time
	Status         string `gorm:"size:16;not null;index"`
	CreatedBy      string `gorm:"size:255;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the table name for Component
func (Component) TableName() string {
	return "catalog_components"
}

// BeforeCreate assigns a new id when none is set.
func (c *Component) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Category is the stored row of a catalog category. ParentID is not a foreign key:
// deleting a parent leaves its children in place.
type Category struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"size:255;not null;index"`
	Description string  `gorm:"size:4000"`
	ParentID    *string `gorm:"size:36;index"`
	CreatedBy   string  `gorm:"size:255;index"`
	CreatedAt   time.Time
}

// TableName overrides the table name for Category
func (Category) TableName() string {
	return "catalog_categories"
}

// BeforeCreate assigns a new id when none is set.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// NewComponent converts a catalog component into its row.
func NewComponent(c catalog.Component) Component {
	row := Component{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Type:           string(c.Type()),
		Category:       c.Category,
		ParentCategory: c.ParentCategory,
		Keywords:       StringList(c.Keywords),
		Dependencies:   StringList(c.Dependencies),
		Version:        c.Version,
		UsageCount:     c.UsageCount,
		QueryCount:     c.QueryCount,
		LastUsed:       c.LastUsed,
		Status:         string(c.Status),
		CreatedBy:      c.CreatedBy,
		CreatedAt:      c.Timestamp,
	}
	switch p := c.Payload.(type) {
	case catalog.CodePayload:
		row.Language = p.Language
		row.Body = p.Body
	case catalog.DesignPayload:
		row.Notation = p.Notation
		row.FileReference = p.FileReference
	}
	return row
}

// Entity converts the row back into a catalog component.
func (c Component) Entity() catalog.Component {
	out := catalog.Component{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Category:       c.Category,
		ParentCategory: c.ParentCategory,
		Keywords:       c.Keywords.Strings(),
		Dependencies:   c.Dependencies.Strings(),
		Version:        c.Version,
		UsageCount:     c.UsageCount,
		QueryCount:     c.QueryCount,
		Status:         catalog.Status(c.Status),
		CreatedBy:      c.CreatedBy,
		Timestamp:      c.CreatedAt.UTC(),
	}
	if c.LastUsed != nil {
		t := c.LastUsed.UTC()
		out.LastUsed = &t
	}
	switch catalog.ComponentType(c.Type) {
	case catalog.TypeCode:
		out.Payload = catalog.CodePayload{Language: c.Language, Body: c.Body}
	case catalog.TypeDesign:
		out.Payload = catalog.DesignPayload{Notation: c.Notation, FileReference: c.FileReference}
	}
	return out
}

// NewCategory converts a catalog category into its row.
func NewCategory(c catalog.Category) Category {
	row := Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
	}
	if c.ParentID != "" {
		parent := c.ParentID
		row.ParentID = &parent
	}
	return row
}

// Entity converts the row back into a catalog category.
func (c Category) Entity() catalog.Category {
	out := catalog.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt.UTC(),
	}
	if c.ParentID != nil {
		out.ParentID = *c.ParentID
	}
	return out
}
