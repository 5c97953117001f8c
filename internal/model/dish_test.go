package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "json array", input: `["cheese","tomato"]`, want: []string{"cheese", "tomato"}},
		{name: "comma separated string", input: `"cheese, tomato, basil"`, want: []string{"cheese", "tomato", "basil"}},
		{name: "array with blanks", input: `["cheese","","  "]`, want: []string{"cheese"}},
		{name: "string with stray commas", input: `"cheese,,tomato, "`, want: []string{"cheese", "tomato"}},
		{name: "single item string", input: `"cheese"`, want: []string{"cheese"}},
		{name: "empty array", input: `[]`, want: []string{}},
		{name: "empty string", input: `""`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list IngredientList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &list))
			assert.Equal(t, tt.want, []string(list))
		})
	}
}

func TestIngredientListRejectsOtherShapes(t *testing.T) {
	var list IngredientList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &list))
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestDishRequestPriceShapes(t *testing.T) {
	var fromNumber DishRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Pizza","price":12.5}`), &fromNumber))

	var fromString DishRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Pizza","price":"12.50"}`), &fromString))

	assert.True(t, fromNumber.Price.Equal(fromString.Price),
		"number and string payloads must normalise to the same price")
	assert.True(t, fromNumber.Price.Equal(decimal.RequireFromString("12.5")))
}
