package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MinTitleLength is the minimum number of characters in a trimmed title.
const MinTitleLength = 3

// StringArray is an ordered list of strings persisted as a JSON array column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}

	var out []string
	if err := json.Unmarshal(bytes, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}

// Recipe is the only persisted entity. Instances are built fresh per request,
// either from raw API input (NewRecipe) or from a storage row.
type Recipe struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Title        string      `gorm:"size:255;not null" json:"title"`
	Description  *string     `gorm:"type:text" json:"description"`
	Ingredients  StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// fields whose raw input was present but not a sequence of strings
	malformed map[string]bool
}

// RecipeView is the API representation of a recipe. Every field is always
// emitted; unset values are encoded as null.
type RecipeView struct {
	ID           *uint      `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NewRecipe builds a recipe from a loosely-typed mapping such as a decoded
// JSON object. It never fails: missing or unusable values fall back to their
// defaults and are reported later by Validate. Client supplied ids and
// timestamps are ignored.
func NewRecipe(data map[string]any) *Recipe {
	r := &Recipe{}
	if data == nil {
		return r
	}

	if title, ok := data["title"].(string); ok {
		r.Title = title
	}
	if desc, ok := data["description"].(string); ok {
		r.Description = &desc
	}

	r.Ingredients = r.readList(data, "ingredients")
	r.Instructions = r.readList(data, "instructions")
	return r
}

func (r *Recipe) readList(data map[string]any, field string) StringArray {
	raw, present := data[field]
	if !present || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case []string:
		return append(StringArray{}, v...)
	case StringArray:
		return append(StringArray{}, v...)
	case []any:
		out := make(StringArray, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				r.markMalformed(field)
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		r.markMalformed(field)
		return nil
	}
}

func (r *Recipe) markMalformed(field string) {
	if r.malformed == nil {
		r.malformed = make(map[string]bool)
	}
	r.malformed[field] = true
}

// Validate returns every rule violation in a stable order. An empty result
// means the recipe can be written.
func (r *Recipe) Validate() []string {
	var errs []string

	title := strings.TrimSpace(r.Title)

	// required
	if title == "" {
		errs = append(errs, "title is required")
	}
	if !r.malformed["ingredients"] && len(compact(r.Ingredients)) == 0 {
		errs = append(errs, "ingredients is required")
	}
	if !r.malformed["instructions"] && len(compact(r.Instructions)) == 0 {
		errs = append(errs, "instructions is required")
	}

	// type
	if r.malformed["ingredients"] {
		errs = append(errs, "ingredients must be an array")
	}
	if r.malformed["instructions"] {
		errs = append(errs, "instructions must be an array")
	}

	// length
	if title != "" && utf8.RuneCountInString(title) < MinTitleLength {
		errs = append(errs, fmt.Sprintf("Title must be at least %d characters", MinTitleLength))
	}

	return errs
}

// APIView converts the recipe into its response shape.
func (r *Recipe) APIView() RecipeView {
	view := RecipeView{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  nonNil(r.Ingredients),
		Instructions: nonNil(r.Instructions),
	}
	if r.ID != 0 {
		id := r.ID
		view.ID = &id
	}
	if !r.CreatedAt.IsZero() {
		created := r.CreatedAt
		view.CreatedAt = &created
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt
		view.UpdatedAt = &updated
	}
	return view
}

// StorageView returns a normalized copy ready to be written: title and
// description trimmed, list entries trimmed with blank entries dropped.
func (r *Recipe) StorageView() *Recipe {
	out := &Recipe{
		ID:           r.ID,
		Title:        strings.TrimSpace(r.Title),
		Ingredients:  compact(r.Ingredients),
		Instructions: compact(r.Instructions),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Description != nil {
		desc := strings.TrimSpace(*r.Description)
		out.Description = &desc
	}
	return out
}

func compact(items StringArray) StringArray {
	out := make(StringArray, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(items StringArray) []string {
	if items == nil {
		return []string{}
	}
	return append([]string{}, items...)
}
