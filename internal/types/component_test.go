package types

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentInputAcceptsSingleKeyword(t *testing.T) {
	var in ComponentInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"P","type":"Code","language":"js","category":"Text","keywords":"json","dependencies":["a","b"]}`), &in))

	c := in.Component()

	assert.Equal(t, catalog.CodePayload{Language: "js"}, c.Payload)
	assert.Equal(t, []string{"json"}, c.Keywords)
	assert.Equal(t, []string{"a", "b"}, c.Dependencies)
}

func TestComponentInputUnknownTypeHasNoPayload(t *testing.T) {
	c := ComponentInput{Name: "x", Type: "video", Category: "c"}.Component()

	assert.Nil(t, c.Payload)
	var verr *catalog.ValidationError
	assert.ErrorAs(t, catalog.Validate(catalog.Normalize(c)), &verr)
}

func TestComponentViewFlattensPayload(t *testing.T) {
	v := NewComponentView(catalog.Component{
		ID:      "d",
		Payload: catalog.DesignPayload{Notation: "UML", FileReference: "x.uml"},
	})

	assert.Equal(t, "design", v.Type)
	assert.Equal(t, "UML", v.Notation)
	assert.Equal(t, []string{}, v.Keywords)
}

func TestTreeViewsCarryPath(t *testing.T) {
	tree := catalog.BuildTree([]catalog.Component{
		{ID: "1", Category: "DB", ParentCategory: "Storage"},
	})

	views := NewTreeViews(tree)

	require.Len(t, views, 1)
	require.Len(t, views[0].Children, 1)
	assert.Equal(t, []string{"Storage", "DB"}, views[0].Children[0].Path)
	assert.Len(t, views[0].Children[0].Components, 1)
}

func TestSeedComponentUsageCount(t *testing.T) {
	var seeds []SeedComponent
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"a","usageCount":"12"},{"name":"b","usageCount":3}]`), &seeds))

	assert.Equal(t, uint64(12), seeds[0].UsageCount.Uint64())
	assert.Equal(t, uint64(3), seeds[1].UsageCount.Uint64())
	assert.Equal(t, "a", seeds[0].Name)
}
