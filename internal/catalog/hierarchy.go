package catalog

import (
	"sort"
	"strings"
)

// CategoryNode is a category placed in the taxonomy with its children.
type CategoryNode struct {
	Category Category
	Children []*CategoryNode
}

// Hierarchy is the taxonomy built from stored categories.
type Hierarchy struct {
	Roots []*CategoryNode
	// Excluded holds a *CycleDetectedError for every category left out because its
	// parent chain loops.
	Excluded []error
}

// BuildHierarchy places categories into a tree using ParentID.
// Categories on or below a parent cycle are excluded and reported; a category whose
// parent no longer exists becomes a root. Siblings are ordered by name.
func BuildHierarchy(categories []Category) Hierarchy {
	byID := make(map[string]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	var h Hierarchy
	nodes := make(map[string]*CategoryNode, len(categories))
	for _, c := range categories {
		if chain, cyclic := ancestorCycle(byID, c.ID); cyclic {
			h.Excluded = append(h.Excluded, &CycleDetectedError{CategoryID: c.ID, Chain: chain})
			continue
		}
		nodes[c.ID] = &CategoryNode{Category: c}
	}

	for _, c := range categories {
		node, ok := nodes[c.ID]
		if !ok {
			continue
		}
		if parent, ok := nodes[c.ParentID]; ok && c.ParentID != "" {
			parent.Children = append(parent.Children, node)
			continue
		}
		h.Roots = append(h.Roots, node)
	}

	sortNodes(h.Roots)
	return h
}

// DetectCycle reports whether setting parentID as the parent of categoryID would
// make categoryID its own ancestor.
func DetectCycle(categories []Category, categoryID, parentID string) error {
	if parentID == "" {
		return nil
	}
	byID := make(map[string]Category, len(categories)+1)
	for _, c := range categories {
		byID[c.ID] = c
	}
	self := byID[categoryID]
	self.ID = categoryID
	self.ParentID = parentID
	byID[categoryID] = self

	if chain, cyclic := ancestorCycle(byID, categoryID); cyclic {
		return &CycleDetectedError{CategoryID: categoryID, Chain: chain}
	}
	return nil
}

// ancestorCycle follows ParentID links from id. It stops at a root, at a missing
// parent, or when an id repeats; the walk is bounded by the number of categories.
func ancestorCycle(byID map[string]Category, id string) ([]string, bool) {
	seen := make(map[string]bool)
	chain := []string{}
	current := id
	for current != "" {
		if seen[current] {
			return append(chain, current), true
		}
		c, ok := byID[current]
		if !ok {
			return chain, false
		}
		seen[current] = true
		chain = append(chain, current)
		current = c.ParentID
	}
	return chain, false
}

func sortNodes(nodes []*CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Category, nodes[j].Category
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

// SortCategories orders categories by name, the natural sort key.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
}
