package types

import (
	"strings"
	"time"

	"github.com/localnerve/jam-build-catalog/internal/catalog"
)

// ComponentInput is the request body for creating or updating a component.
// Keywords and dependencies accept a single string or an array.
type ComponentInput struct {
	Name           string           `json:"name" example:"JSON parser"`
	Description    string           `json:"description,omitempty"`
	Type           string           `json:"type" example:"code" enums:"code,design"`
	Language       string           `json:"language,omitempty" example:"js"`
	Body           string           `json:"body,omitempty"`
	Notation       string           `json:"notation,omitempty" example:"UML"`
	FileReference  string           `json:"fileReference,omitempty"`
	Category       string           `json:"category" example:"Text"`
	ParentCategory string           `json:"parentCategory,omitempty"`
	Keywords       FlexList[string] `json:"keywords,omitempty" swaggertype:"array,string"`
	Dependencies   FlexList[string] `json:"dependencies,omitempty" swaggertype:"array,string"`
	Version        string           `json:"version,omitempty" example:"1.0.0"`
	Status         string           `json:"status,omitempty" enums:"active,archived"`
}

// Component converts the input into a catalog component. An unknown type yields
// a component without payload, which fails validation.
func (in ComponentInput) Component() catalog.Component {
	c := catalog.Component{
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		ParentCategory: in.ParentCategory,
		Keywords:       in.Keywords.Slice(),
		Dependencies:   in.Dependencies.Slice(),
		Version:        in.Version,
		Status:         catalog.Status(strings.ToLower(strings.TrimSpace(in.Status))),
	}
	switch catalog.ComponentType(strings.ToLower(strings.TrimSpace(in.Type))) {
	case catalog.TypeCode:
		c.Payload = catalog.CodePayload{Language: in.Language, Body: in.Body}
	case catalog.TypeDesign:
		c.Payload = catalog.DesignPayload{Notation: in.Notation, FileReference: in.FileReference}
	}
	return c
}

// ComponentView is the response representation of a component.
type ComponentView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Type           string     `json:"type"`
	Language       string     `json:"language,omitempty"`
	Body           string     `json:"body,omitempty"`
	Notation       string     `json:"notation,omitempty"`
	FileReference  string     `json:"fileReference,omitempty"`
	Category       string     `json:"category"`
	ParentCategory string     `json:"parentCategory,omitempty"`
	Keywords       []string   `json:"keywords"`
	Dependencies   []string   `json:"dependencies"`
	Version        string     `json:"version"`
	UsageCount     uint64     `json:"usageCount"`
	QueryCount     uint64     `json:"queryCount"`
	LastUsed       *time.Time `json:"lastUsed,omitempty"`
	Status         string     `json:"status"`
	CreatedBy      string     `json:"createdBy"`
	Timestamp      time.Time  `json:"timestamp"`
}

// NewComponentView flattens a catalog component for output.
func NewComponentView(c catalog.Component) ComponentView {
	v := ComponentView{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Type:           string(c.Type()),
		Category:       c.Category,
		ParentCategory: c.ParentCategory,
		Keywords:       nonNil(c.Keywords),
		Dependencies:   nonNil(c.Dependencies),
		Version:        c.Version,
		UsageCount:     c.UsageCount,
		QueryCount:     c.QueryCount,
		LastUsed:       c.LastUsed,
		Status:         string(c.Status),
		CreatedBy:      c.CreatedBy,
		Timestamp:      c.Timestamp,
	}
	switch p := c.Payload.(type) {
	case catalog.CodePayload:
		v.Language, v.Body = p.Language, p.Body
	case catalog.DesignPayload:
		v.Notation, v.FileReference = p.Notation, p.FileReference
	}
	return v
}

// NewComponentViews converts a list of components.
func NewComponentViews(components []catalog.Component) []ComponentView {
	views := make([]ComponentView, 0, len(components))
	for _, c := range components {
		views = append(views, NewComponentView(c))
	}
	return views
}

// CategoryInput is the request body for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" example:"Storage"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

// Category converts the input into a catalog category.
func (in CategoryInput) Category() catalog.Category {
	return catalog.Category{Name: in.Name, Description: in.Description, ParentID: strings.TrimSpace(in.ParentID)}
}

// CategoryView is the response representation of a category.
type CategoryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    string    `json:"parentId,omitempty"`
	ParentName  string    `json:"parentName,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewCategoryView converts a catalog category with an optional resolved parent name.
func NewCategoryView(c catalog.Category, parentName string) CategoryView {
	return CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		ParentName:  parentName,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
	}
}

// CategoryNodeView is one node of the category hierarchy response.
type CategoryNodeView struct {
	CategoryView
	Children []CategoryNodeView `json:"children"`
}

// NewCategoryNodeViews converts hierarchy nodes recursively.
func NewCategoryNodeViews(nodes []*catalog.CategoryNode) []CategoryNodeView {
	out := make([]CategoryNodeView, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, CategoryNodeView{
			CategoryView: NewCategoryView(n.Category, ""),
			Children:     NewCategoryNodeViews(n.Children),
		})
	}
	return out
}

// TreeNodeView is one node of the component tree response.
type TreeNodeView struct {
	Label      string          `json:"label"`
	Path       []string        `json:"path"`
	Components []ComponentView `json:"components"`
	Children   []TreeNodeView  `json:"children"`
}

// NewTreeViews converts a component tree.
func NewTreeViews(tree catalog.Tree) []TreeNodeView {
	return newTreeViews(tree, nil)
}

func newTreeViews(tree catalog.Tree, prefix []string) []TreeNodeView {
	out := make([]TreeNodeView, 0, len(tree))
	for _, n := range tree {
		path := append(append([]string(nil), prefix...), n.Label)
		out = append(out, TreeNodeView{
			Label:      n.Label,
			Path:       path,
			Components: NewComponentViews(n.Components),
			Children:   newTreeViews(n.Children, path),
		})
	}
	return out
}

// SeedComponent is a component entry of the embedded seed catalog. Initial usage
// counts may be written as numbers or strings.
type SeedComponent struct {
	ComponentInput
	UsageCount FlexUint64 `json:"usageCount"`
}

// SeedCategory is a category entry of the embedded seed catalog, with the parent
// referenced by name.
type SeedCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parent      string `json:"parent"`
}

// SeedCatalog is the embedded seed document.
type SeedCatalog struct {
	CreatedBy  string          `json:"createdBy"`
	Categories []SeedCategory  `json:"categories"`
	Components []SeedComponent `json:"components"`
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
