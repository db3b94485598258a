package catalog

import "strings"

// Validate checks the invariants of a component before it is sent to the store.
func Validate(c Component) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: "component name is required"}
	}

	switch p := c.Payload.(type) {
	case CodePayload:
		if strings.TrimSpace(p.Language) == "" {
			return &ValidationError{Field: "language", Message: "a programming language is required for code components"}
		}
	case DesignPayload:
		if strings.TrimSpace(p.Notation) == "" {
			return &ValidationError{Field: "notation", Message: "a design notation is required for design components"}
		}
	default:
		return &ValidationError{Field: "type", Message: "component type must be code or design"}
	}

	if strings.TrimSpace(c.Category) == "" {
		return &ValidationError{Field: "category", Message: "component category is required"}
	}
	if strings.TrimSpace(c.Version) == "" {
		return &ValidationError{Field: "version", Message: "component version is required"}
	}
	if c.Status != StatusActive && c.Status != StatusArchived {
		return &ValidationError{Field: "status", Message: "status must be active or archived"}
	}
	return nil
}

// ValidateCategory checks the invariants of a category that do not need the store.
func ValidateCategory(c Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: "category name is required"}
	}
	if c.ParentID != "" && c.ParentID == c.ID {
		return &ValidationError{Field: "parent_id", Message: "a category cannot be its own parent"}
	}
	return nil
}

// Normalize trims user supplied text, removes duplicate keywords and dependencies
// and fills the defaults of a new component.
func Normalize(c Component) Component {
	c = normalizeFields(c)
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	return c
}

// normalizeFields is Normalize without the defaults. A blank version or status stays blank.
func normalizeFields(c Component) Component {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Category = strings.TrimSpace(c.Category)
	c.ParentCategory = strings.TrimSpace(c.ParentCategory)
	c.Version = strings.TrimSpace(c.Version)
	c.Keywords = dedupe(c.Keywords)
	c.Dependencies = dedupe(c.Dependencies)
	return c
}
