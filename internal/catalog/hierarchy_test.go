package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*CategoryNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Category.Name)
	}
	return out
}

func TestBuildHierarchyNestsAndSorts(t *testing.T) {
	h := BuildHierarchy([]Category{
		{ID: "3", Name: "sql", ParentID: "1"},
		{ID: "1", Name: "Storage"},
		{ID: "2", Name: "Cache"},
		{ID: "4", Name: "Blob", ParentID: "1"},
		{ID: "5", Name: "Postgres", ParentID: "3"},
	})

	require.Empty(t, h.Excluded)
	assert.Equal(t, []string{"Cache", "Storage"}, names(h.Roots))
	storage := h.Roots[1]
	assert.Equal(t, []string{"Blob", "sql"}, names(storage.Children))
	assert.Equal(t, []string{"Postgres"}, names(storage.Children[1].Children))
}

func TestBuildHierarchyPromotesDanglingParent(t *testing.T) {
	h := BuildHierarchy([]Category{
		{ID: "1", Name: "Orphan", ParentID: "gone"},
	})

	require.Len(t, h.Roots, 1)
	assert.Equal(t, "Orphan", h.Roots[0].Category.Name)
}

func TestBuildHierarchyExcludesCycles(t *testing.T) {
	h := BuildHierarchy([]Category{
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "self", Name: "Self", ParentID: "self"},
		{ID: "ok", Name: "Fine"},
	})

	assert.Equal(t, []string{"Fine"}, names(h.Roots))
	require.Len(t, h.Excluded, 4)
	for _, err := range h.Excluded {
		var cycle *CycleDetectedError
		assert.True(t, errors.As(err, &cycle))
	}
}

func TestDetectCycle(t *testing.T) {
	categories := []Category{
		{ID: "root", Name: "Root"},
		{ID: "mid", Name: "Mid", ParentID: "root"},
		{ID: "leaf", Name: "Leaf", ParentID: "mid"},
	}

	assert.NoError(t, DetectCycle(categories, "leaf", "root"))
	assert.NoError(t, DetectCycle(categories, "mid", ""))
	assert.NoError(t, DetectCycle(categories, "new", "leaf"))

	err := DetectCycle(categories, "root", "leaf")
	var cycle *CycleDetectedError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "root", cycle.CategoryID)
	assert.Equal(t, []string{"root", "leaf", "mid", "root"}, cycle.Chain)
}

func TestSortCategories(t *testing.T) {
	categories := []Category{{Name: "beta"}, {Name: "Alpha"}, {Name: "gamma"}}
	SortCategories(categories)
	assert.Equal(t, "Alpha", categories[0].Name)
	assert.Equal(t, "beta", categories[1].Name)
	assert.Equal(t, "gamma", categories[2].Name)
}
