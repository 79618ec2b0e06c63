package service

import (
	"context"

	"github.com/pageza/recipes-api/backend/internal/model"
)

// RecipeStore is the storage contract the recipe service depends on.
// Lookups return a nil recipe, not an error, when nothing matches.
type RecipeStore interface {
	FindAll(ctx context.Context) ([]*model.Recipe, error)
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	Update(ctx context.Context, id uint, recipe *model.Recipe) (*model.Recipe, error)
	Delete(ctx context.Context, id uint) (*model.Recipe, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) (*Result[[]model.RecipeView], error)
	GetRecipe(ctx context.Context, rawID string) (*Result[model.RecipeView], error)
	CreateRecipe(ctx context.Context, input map[string]any) (*Result[model.RecipeView], error)
	UpdateRecipe(ctx context.Context, rawID string, input map[string]any) (*Result[model.RecipeView], error)
	DeleteRecipe(ctx context.Context, rawID string) (*Result[model.RecipeView], error)
}
