// entity.go
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

// Package catalog holds the indexing and retrieval core of the component catalog:
// the entity model, the category tree builders, the query engine, the usage ledger
// and the access policy. Everything here is free of I/O except through the Store
// and CounterStore interfaces.
package catalog

import (
	"time"
)

// ComponentType names the kind of artifact a component carries.
type ComponentType string

const (
	TypeCode   ComponentType = "code"
	TypeDesign ComponentType = "design"
)

// Status is the caller-controlled lifecycle state of a component.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// DefaultVersion is assigned to components created without a version.
const DefaultVersion = "1.0.0"

// KnownLanguages lists the programming languages offered by the catalog editor.
// Other values are accepted.
var KnownLanguages = []string{
	"java", "cpp", "js", "php", "python", "ruby", "swift", "rust", "html", "css", "xml", "json",
}

// KnownNotations lists the design notations offered by the catalog editor.
var KnownNotations = []string{"UML", "ERD", "Structured Design", "Other"}

// Payload is the type-specific content of a component.
// It is either a CodePayload or a DesignPayload.
type Payload interface {
	Type() ComponentType
	sealed()
}

// CodePayload is the payload of a code component.
type CodePayload struct {
	Language string `json:"language"`
	Body     string `json:"body"`
}

func (CodePayload) Type() ComponentType { return TypeCode }
func (CodePayload) sealed()             {}

// DesignPayload is the payload of a design component.
type DesignPayload struct {
	Notation      string `json:"notation"`
	FileReference string `json:"fileReference,omitempty"`
}

func (DesignPayload) Type() ComponentType { return TypeDesign }
func (DesignPayload) sealed()             {}

// Component is a reusable artifact in the catalog.
type Component struct {
	ID             string
	Name           string
	Description    string
	Payload        Payload
	Category       string
	ParentCategory string
	Keywords       []string
	Dependencies   []string
	Version        string
	UsageCount     uint64
	QueryCount     uint64
	LastUsed       *time.Time
	Status         Status
	CreatedBy      string
	Timestamp      time.Time
}

// Type reports the component type, derived from its payload.
// A component without a payload has an empty type.
func (c Component) Type() ComponentType {
	if c.Payload == nil {
		return ""
	}
	return c.Payload.Type()
}

// Path returns the tree placement path of the component.
func (c Component) Path() []string {
	if c.ParentCategory != "" {
		return []string{c.ParentCategory, c.Category}
	}
	return []string{c.Category}
}

// AddKeyword appends keyword unless it is empty or already present.
// Membership is case-sensitive. Reports whether the keyword was added.
func (c *Component) AddKeyword(keyword string) bool {
	return appendUnique(&c.Keywords, keyword)
}

// RemoveKeyword removes every occurrence of keyword.
func (c *Component) RemoveKeyword(keyword string) {
	c.Keywords = removeValue(c.Keywords, keyword)
}

// AddDependency appends dependency unless it is empty or already present.
func (c *Component) AddDependency(dependency string) bool {
	return appendUnique(&c.Dependencies, dependency)
}

// RemoveDependency removes every occurrence of dependency.
func (c *Component) RemoveDependency(dependency string) {
	c.Dependencies = removeValue(c.Dependencies, dependency)
}

// Counters is the usage statistics snapshot of a component.
type Counters struct {
	UsageCount uint64     `json:"usageCount"`
	QueryCount uint64     `json:"queryCount"`
	LastUsed   *time.Time `json:"lastUsed,omitempty"`
}

// Counters returns the current usage statistics of the component.
func (c Component) Counters() Counters {
	return Counters{UsageCount: c.UsageCount, QueryCount: c.QueryCount, LastUsed: c.LastUsed}
}

// Category is a node of the stored category taxonomy.
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    string
	CreatedAt   time.Time
	CreatedBy   string
}

// Role is the authority level of a principal.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

// Principal is an authenticated caller. A nil *Principal means no principal.
type Principal struct {
	ID   string
	Role Role
}

func appendUnique(list *[]string, value string) bool {
	if value == "" {
		return false
	}
	for _, v := range *list {
		if v == value {
			return false
		}
	}
	*list = append(*list, value)
	return true
}

func removeValue(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// dedupe returns values with empty strings and repeats removed, first occurrence wins.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		appendUnique(&out, v)
	}
	return out
}
