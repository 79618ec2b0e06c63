package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() map[string]any {
	return map[string]any{
		"title":        "Nasi Goreng",
		"description":  "Indonesian fried rice",
		"ingredients":  []any{"rice", "egg"},
		"instructions": []any{"fry", "serve"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		input  map[string]any
		expect []string
	}{
		{
			name:   "valid input",
			input:  validInput(),
			expect: nil,
		},
		{
			name:  "nil input",
			input: nil,
			expect: []string{
				"title is required",
				"ingredients is required",
				"instructions is required",
			},
		},
		{
			name: "missing title",
			input: map[string]any{
				"ingredients":  []any{"rice"},
				"instructions": []any{"fry"},
			},
			expect: []string{"title is required"},
		},
		{
			name: "whitespace title counts as missing",
			input: map[string]any{
				"title":        "   ",
				"ingredients":  []any{"rice"},
				"instructions": []any{"fry"},
			},
			expect: []string{"title is required"},
		},
		{
			name: "non string title counts as missing",
			input: map[string]any{
				"title":        42.0,
				"ingredients":  []any{"rice"},
				"instructions": []any{"fry"},
			},
			expect: []string{"title is required"},
		},
		{
			name: "short title",
			input: map[string]any{
				"title":        "Hi",
				"ingredients":  []any{"rice"},
				"instructions": []any{"fry"},
			},
			expect: []string{"Title must be at least 3 characters"},
		},
		{
			name: "title length is measured after trimming",
			input: map[string]any{
				"title":        "  ab  ",
				"ingredients":  []any{"rice"},
				"instructions": []any{"fry"},
			},
			expect: []string{"Title must be at least 3 characters"},
		},
		{
			name: "empty ingredients",
			input: map[string]any{
				"title":        "Soup",
				"ingredients":  []any{},
				"instructions": []any{"boil"},
			},
			expect: []string{"ingredients is required"},
		},
		{
			name: "blank only instructions",
			input: map[string]any{
				"title":        "Soup",
				"ingredients":  []any{"water"},
				"instructions": []any{" ", ""},
			},
			expect: []string{"instructions is required"},
		},
		{
			name: "string ingredients are not parsed",
			input: map[string]any{
				"title":        "Soup",
				"ingredients":  `["water"]`,
				"instructions": []any{"boil"},
			},
			expect: []string{"ingredients must be an array"},
		},
		{
			name: "non string elements",
			input: map[string]any{
				"title":        "Soup",
				"ingredients":  []any{"water"},
				"instructions": []any{"boil", 3.0},
			},
			expect: []string{"instructions must be an array"},
		},
		{
			name: "errors accumulate in rule order",
			input: map[string]any{
				"title":        "ab",
				"ingredients":  map[string]any{"a": 1},
				"instructions": []any{},
			},
			expect: []string{
				"instructions is required",
				"ingredients must be an array",
				"Title must be at least 3 characters",
			},
		},
		{
			name: "native string slices are accepted",
			input: map[string]any{
				"title":        "Soup",
				"ingredients":  []string{"water"},
				"instructions": []string{"boil"},
			},
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, NewRecipe(tt.input).Validate())
		})
	}
}

func TestNewRecipeIgnoresClientManagedFields(t *testing.T) {
	input := validInput()
	input["id"] = 99.0
	input["created_at"] = "2020-01-01T00:00:00Z"

	r := NewRecipe(input)
	assert.Zero(t, r.ID)
	assert.True(t, r.CreatedAt.IsZero())
}

func TestStorageView(t *testing.T) {
	input := map[string]any{
		"title":        "  Nasi Goreng ",
		"description":  "  tasty  ",
		"ingredients":  []any{" rice ", "", "egg", "   "},
		"instructions": []any{"fry", " serve"},
	}

	stored := NewRecipe(input).StorageView()
	assert.Equal(t, "Nasi Goreng", stored.Title)
	require.NotNil(t, stored.Description)
	assert.Equal(t, "tasty", *stored.Description)
	assert.Equal(t, StringArray{"rice", "egg"}, stored.Ingredients)
	assert.Equal(t, StringArray{"fry", "serve"}, stored.Instructions)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, stored, stored.StorageView())
	})

	t.Run("missing description stays nil", func(t *testing.T) {
		assert.Nil(t, NewRecipe(validInputWithout("description")).StorageView().Description)
	})
}

func validInputWithout(field string) map[string]any {
	in := validInput()
	delete(in, field)
	return in
}

func TestRoundTripPreservesContent(t *testing.T) {
	input := map[string]any{
		"title":        "Pancakes",
		"ingredients":  []any{"flour", " ", "milk", "egg"},
		"instructions": []any{"mix", "cook"},
	}

	stored := NewRecipe(input).StorageView()

	// what storage hands back is rebuilt from the serialized columns
	ingredients, err := stored.Ingredients.Value()
	require.NoError(t, err)
	var scanned StringArray
	require.NoError(t, scanned.Scan(ingredients))

	rebuilt := &Recipe{ID: 1, Title: stored.Title, Ingredients: scanned, Instructions: stored.Instructions}
	view := rebuilt.APIView()
	assert.Equal(t, "Pancakes", view.Title)
	assert.Equal(t, []string{"flour", "milk", "egg"}, view.Ingredients)
	assert.Equal(t, []string{"mix", "cook"}, view.Instructions)
}

func TestAPIViewKeepsNulls(t *testing.T) {
	r := NewRecipe(map[string]any{"title": "Soup"})

	b, err := json.Marshal(r.APIView())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Len(t, fields, 7)
	assert.Nil(t, fields["id"])
	assert.Nil(t, fields["description"])
	assert.Nil(t, fields["created_at"])
	assert.Nil(t, fields["updated_at"])
	assert.Equal(t, []any{}, fields["ingredients"])
	assert.Contains(t, fields, "description")
}

func TestAPIViewPersistedRecord(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := &Recipe{
		ID:           7,
		Title:        "Soup",
		Ingredients:  StringArray{"water"},
		Instructions: StringArray{"boil"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	view := r.APIView()
	require.NotNil(t, view.ID)
	assert.Equal(t, uint(7), *view.ID)
	require.NotNil(t, view.CreatedAt)
	assert.Equal(t, now, *view.CreatedAt)
	assert.Equal(t, now, *view.UpdatedAt)
}

func TestStringArray(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		v, err := StringArray(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("value encodes json", func(t *testing.T) {
		v, err := StringArray{"a", "b"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, v)
	})

	t.Run("scan bytes and strings", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan([]byte(`["x"]`)))
		assert.Equal(t, StringArray{"x"}, a)
		require.NoError(t, a.Scan(`["y","z"]`))
		assert.Equal(t, StringArray{"y", "z"}, a)
	})

	t.Run("scan null", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(nil))
		assert.Equal(t, StringArray{}, a)
		require.NoError(t, a.Scan("null"))
		assert.Equal(t, StringArray{}, a)
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var a StringArray
		assert.Error(t, a.Scan(12))
	})
}
