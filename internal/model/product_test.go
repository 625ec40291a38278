package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"CLOTHS", CategoryCloths, true},
		{"cloths", CategoryCloths, true},
		{" Food ", CategoryFood, true},
		{"HOUSEWARES", CategoryHousewares, true},
		{"AUTOMOTIVE", CategoryAutomotive, true},
		{"TOOLS", CategoryTools, true},
		{"UNKNOWN", CategoryUnknown, true},
		{"SPORTING_GOODS", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseCategory(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestCategoryNamesCoversEveryMember(t *testing.T) {
	names := CategoryNames()
	require.Len(t, names, len(categoryNames))
	for _, n := range names {
		_, ok := ParseCategory(n)
		assert.True(t, ok, "name %q should round-trip", n)
	}
}

func TestProductString(t *testing.T) {
	p := &Product{Name: "Fedora"}
	assert.Equal(t, "<Product Fedora id=[None]>", p.String())

	p.ID = 42
	assert.Equal(t, "<Product Fedora id=[42]>", p.String())
}

func TestProductJSONRoundTrip(t *testing.T) {
	p := Product{
		ID:          7,
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}

	data, err := json.Marshal(&p)
	require.NoError(t, err)

	var got Product
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Description, got.Description)
	assert.True(t, p.Price.Equal(got.Price), "price %s != %s", p.Price, got.Price)
	assert.Equal(t, p.Available, got.Available)
	assert.Equal(t, p.Category, got.Category)
}

func TestProductJSONCategoryRenderedAsName(t *testing.T) {
	p := Product{Name: "Hammer", Price: decimal.NewFromInt(24), Available: true, Category: CategoryTools}

	data, err := json.Marshal(&p)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `"TOOLS"`, string(raw["category"]))
	assert.JSONEq(t, `true`, string(raw["available"]))
}

func TestCategoryUnmarshalRejectsUnknown(t *testing.T) {
	var c Category
	err := json.Unmarshal([]byte(`"GARDENING"`), &c)
	assert.Error(t, err)

	// A non-string value is a type failure, not silently coerced.
	err = json.Unmarshal([]byte(`3`), &c)
	assert.Error(t, err)
}

func TestCategorySQLCodec(t *testing.T) {
	v, err := CategoryFood.Value()
	require.NoError(t, err)
	assert.Equal(t, "FOOD", v)

	var c Category
	require.NoError(t, c.Scan("AUTOMOTIVE"))
	assert.Equal(t, CategoryAutomotive, c)

	require.NoError(t, c.Scan([]byte("TOOLS")))
	assert.Equal(t, CategoryTools, c)

	assert.Error(t, c.Scan("NOPE"))
	assert.Error(t, c.Scan(12))
}
