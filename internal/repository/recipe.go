package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/recipes-api/backend/internal/model"
)

// RecipeRepository reads and writes recipes through gorm. Database errors
// are returned unchanged.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository instance
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindAll returns every recipe, newest first.
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// FindByID returns nil without an error when no row matches.
func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create inserts the recipe and reads it back so the result carries the
// id and timestamps exactly as stored.
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	row := &model.Recipe{
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, row.ID)
}

// Update overwrites the mutable columns, a nil description included, and
// returns the fresh row.
func (r *RecipeRepository) Update(ctx context.Context, id uint, recipe *model.Recipe) (*model.Recipe, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":        recipe.Title,
			"description":  recipe.Description,
			"ingredients":  recipe.Ingredients,
			"instructions": recipe.Instructions,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the row and returns it as it was before deletion, or nil
// when there was nothing to delete.
func (r *RecipeRepository) Delete(ctx context.Context, id uint) (*model.Recipe, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
