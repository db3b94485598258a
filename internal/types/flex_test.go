package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`"one"`, []string{"one"}},
		{`["a","b"]`, []string{"a", "b"}},
		{`null`, nil},
		{`[]`, []string{}},
	}
	for _, tt := range tests {
		var f FlexList[string]
		require.NoError(t, json.Unmarshal([]byte(tt.in), &f), tt.in)
		assert.Equal(t, tt.want, f.Slice(), tt.in)
	}

	var f FlexList[string]
	assert.Error(t, json.Unmarshal([]byte(`{}`), &f))
}

func TestFlexUint64(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{`7`, 7, false},
		{`" 12 "`, 12, false},
		{`null`, 0, false},
		{`-1`, 0, true},
		{`"many"`, 0, true},
		{`1.5`, 0, true},
	}
	for _, tt := range tests {
		var f FlexUint64
		err := json.Unmarshal([]byte(tt.in), &f)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f.Uint64(), tt.in)
	}

	out, err := json.Marshal(FlexUint64(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(out))
}
