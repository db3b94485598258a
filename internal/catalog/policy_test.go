package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owned := Component{ID: "c1", CreatedBy: "alice"}

	tests := []struct {
		name      string
		principal *Principal
		want      bool
	}{
		{"creator", &Principal{ID: "alice", Role: RoleRegular}, true},
		{"admin", &Principal{ID: "root", Role: RoleAdmin}, true},
		{"other user", &Principal{ID: "bob", Role: RoleRegular}, false},
		{"no principal", nil, false},
		{"empty id", &Principal{Role: RoleRegular}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.principal, owned))
		})
	}
}

func TestCanMutateUnownedComponent(t *testing.T) {
	unowned := Component{ID: "c1"}

	assert.False(t, CanMutate(&Principal{Role: RoleRegular}, unowned))
	assert.True(t, CanMutate(&Principal{ID: "x", Role: RoleAdmin}, unowned))
}

func TestCanMutateCategory(t *testing.T) {
	category := Category{ID: "k", CreatedBy: "alice"}

	assert.True(t, CanMutateCategory(&Principal{ID: "alice"}, category))
	assert.False(t, CanMutateCategory(&Principal{ID: "bob"}, category))
	assert.False(t, CanMutateCategory(nil, category))
}
