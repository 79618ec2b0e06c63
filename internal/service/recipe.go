package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pageza/recipes-api/backend/internal/apperror"
	"github.com/pageza/recipes-api/backend/internal/metrics"
	"github.com/pageza/recipes-api/backend/internal/model"
)

const (
	msgInvalidID = "Invalid recipe ID"
	msgNotFound  = "Recipe not found"
)

// Result is the success envelope returned by every recipe operation.
type Result[T any] struct {
	Success bool
	Message string
	Data    T
}

func ok[T any](message string, data T) *Result[T] {
	return &Result[T]{Success: true, Message: message, Data: data}
}

// RecipeService validates input, applies the recipe rules and coordinates
// the store. It holds no per-request state.
type RecipeService struct {
	store  RecipeStore
	logger logrus.FieldLogger
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store RecipeStore, logger logrus.FieldLogger) *RecipeService {
	return &RecipeService{
		store:  store,
		logger: logger,
	}
}

// ListRecipes returns every recipe in store order.
func (s *RecipeService) ListRecipes(ctx context.Context) (*Result[[]model.RecipeView], error) {
	recipes, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, s.fail("list", apperror.Store("Failed to fetch recipes", err))
	}

	views := make([]model.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, r.APIView())
	}

	s.succeed("list")
	return ok("Recipes retrieved successfully", views), nil
}

// GetRecipe returns a single recipe.
func (s *RecipeService) GetRecipe(ctx context.Context, rawID string) (*Result[model.RecipeView], error) {
	id, invalid := parseID(rawID)
	if invalid != nil {
		return nil, s.fail("get", invalid)
	}

	recipe, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", apperror.Store("Failed to fetch recipe", err))
	}
	if recipe == nil {
		return nil, s.fail("get", apperror.NotFound(msgNotFound))
	}

	s.succeed("get")
	return ok("Recipe retrieved successfully", recipe.APIView()), nil
}

// CreateRecipe validates the input and stores its normalized form.
func (s *RecipeService) CreateRecipe(ctx context.Context, input map[string]any) (*Result[model.RecipeView], error) {
	recipe := model.NewRecipe(input)
	if errs := recipe.Validate(); len(errs) > 0 {
		return nil, s.fail("create", apperror.Validation(errs))
	}

	created, err := s.store.Create(ctx, recipe.StorageView())
	if err != nil {
		return nil, s.fail("create", apperror.Store("Failed to create recipe", err))
	}
	if created == nil {
		return nil, s.fail("create", apperror.Store("Failed to create recipe", nil))
	}

	s.logger.WithField("recipe_id", created.ID).Info("recipe created")
	s.succeed("create")
	return ok("Recipe created successfully", created.APIView()), nil
}

// UpdateRecipe replaces every mutable field of an existing recipe. The input
// is validated on its own and is not merged with the stored record, so an
// omitted description clears the stored one.
func (s *RecipeService) UpdateRecipe(ctx context.Context, rawID string, input map[string]any) (*Result[model.RecipeView], error) {
	id, invalid := parseID(rawID)
	if invalid != nil {
		return nil, s.fail("update", invalid)
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("update", apperror.Store("Failed to update recipe", err))
	}
	if existing == nil {
		return nil, s.fail("update", apperror.NotFound(msgNotFound))
	}

	recipe := model.NewRecipe(input)
	if errs := recipe.Validate(); len(errs) > 0 {
		return nil, s.fail("update", apperror.Validation(errs))
	}

	updated, err := s.store.Update(ctx, id, recipe.StorageView())
	if err != nil {
		return nil, s.fail("update", apperror.Store("Failed to update recipe", err))
	}
	if updated == nil {
		// removed between the read and the write
		return nil, s.fail("update", apperror.NotFound(msgNotFound))
	}

	s.logger.WithField("recipe_id", id).Info("recipe updated")
	s.succeed("update")
	return ok("Recipe updated successfully", updated.APIView()), nil
}

// DeleteRecipe removes a recipe and returns it as it was.
func (s *RecipeService) DeleteRecipe(ctx context.Context, rawID string) (*Result[model.RecipeView], error) {
	id, invalid := parseID(rawID)
	if invalid != nil {
		return nil, s.fail("delete", invalid)
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("delete", apperror.Store("Failed to delete recipe", err))
	}
	if existing == nil {
		return nil, s.fail("delete", apperror.NotFound(msgNotFound))
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, s.fail("delete", apperror.Store("Failed to delete recipe", err))
	}
	if deleted == nil {
		return nil, s.fail("delete", apperror.NotFound(msgNotFound))
	}

	s.logger.WithField("recipe_id", id).Info("recipe deleted")
	s.succeed("delete")
	return ok("Recipe deleted successfully", deleted.APIView()), nil
}

// parseID accepts positive base-10 integers only.
func parseID(raw string) (uint, *apperror.Error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperror.InvalidInput(msgInvalidID)
	}
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, apperror.InvalidInput(msgInvalidID)
	}
	return uint(id), nil
}

func (s *RecipeService) succeed(operation string) {
	metrics.RecordRecipeOperation(operation, "success")
}

func (s *RecipeService) fail(operation string, err *apperror.Error) error {
	metrics.RecordRecipeOperation(operation, string(err.Kind))

	entry := s.logger.WithFields(logrus.Fields{
		"operation": operation,
		"kind":      err.Kind,
	})
	if err.Kind == apperror.KindStore {
		entry.WithError(err.Cause).Error(err.Message)
	} else {
		entry.Debug(err.Message)
	}
	return err
}
