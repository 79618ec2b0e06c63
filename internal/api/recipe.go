package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipes-api/backend/internal/apperror"
	"github.com/pageza/recipes-api/backend/internal/service"
	"github.com/pageza/recipes-api/backend/internal/types"
)

// fields that clients may send as JSON-encoded strings
var listFields = []string{"ingredients", "instructions"}

// RecipeHandler exposes the recipe operations over HTTP.
type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe routes on router. write runs before every
// mutating route.
func (h *RecipeHandler) RegisterRoutes(router gin.IRouter, write ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", withPrefix(write, h.CreateRecipe)...)
		recipes.PUT("/:id", withPrefix(write, h.UpdateRecipe)...)
		recipes.DELETE("/:id", withPrefix(write, h.DeleteRecipe)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	res, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.Success(res.Message, res.Data))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	res, err := h.recipeService.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.Success(res.Message, res.Data))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	input, ok := bindRecipe(c)
	if !ok {
		return
	}

	res, err := h.recipeService.CreateRecipe(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.Success(res.Message, res.Data))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	input, ok := bindRecipe(c)
	if !ok {
		return
	}

	res, err := h.recipeService.UpdateRecipe(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.Success(res.Message, res.Data))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	res, err := h.recipeService.DeleteRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.Success(res.Message, res.Data))
}

// bindRecipe decodes the body into a loosely typed mapping. Only JSON objects
// are accepted.
func bindRecipe(c *gin.Context) (map[string]any, bool) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil || input == nil {
		respondError(c, apperror.InvalidInput("Invalid request body"))
		return nil, false
	}

	for _, field := range listFields {
		raw, isString := input[field].(string)
		if !isString {
			continue
		}
		var decoded []any
		// undecodable strings are left for validation to reject
		if err := json.Unmarshal([]byte(raw), &decoded); err == nil && decoded != nil {
			input[field] = decoded
		}
	}
	return input, true
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Store("Internal server error", err)
	}
	types.AbortWithFailure(c, appErr.Kind.HTTPStatus(), appErr.Message, appErr.Details()...)
}

func withPrefix(prefix []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(prefix)+1)
	chain = append(chain, prefix...)
	return append(chain, handler)
}
