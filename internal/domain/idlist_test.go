package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garutech/internal/domain"
)

func TestIDListDecodesBothShapes(t *testing.T) {
	var p domain.Product

	// legacy record: scalar category, no sub-category
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","category":"x"}`), &p))
	assert.Equal(t, domain.IDList{"x"}, p.Category)
	assert.Empty(t, p.SubCategory)

	// multi-category record
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b","category":["x","y"],"subCategory":["s1"]}`), &p))
	assert.Equal(t, domain.IDList{"x", "y"}, p.Category)
	assert.Equal(t, domain.IDList{"s1"}, p.SubCategory)

	// explicit null
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c","category":"x","subCategory":null}`), &p))
	assert.Empty(t, p.SubCategory)
}

func TestIDListKeepsLegacyShapeOnWrite(t *testing.T) {
	single, err := json.Marshal(domain.IDList{"x"})
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(single))

	many, err := json.Marshal(domain.IDList{"x", "y"})
	require.NoError(t, err)
	assert.JSONEq(t, `["x","y"]`, string(many))
}

func TestIDListContainsAndPrimary(t *testing.T) {
	l := domain.IDList{"x", "y"}
	assert.True(t, l.Contains("y"))
	assert.False(t, l.Contains("z"))

	first, ok := l.Primary()
	require.True(t, ok)
	assert.Equal(t, "x", first)

	_, ok = domain.IDList(nil).Primary()
	assert.False(t, ok)
	assert.False(t, domain.IDList(nil).Contains("x"))
}
