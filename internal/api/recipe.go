package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodrecipes/backend/internal/metrics"
	"github.com/pageza/moodrecipes/backend/internal/service"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

// RecipeHandler serves the read-only recipe endpoints
type RecipeHandler struct {
	recipes service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/moods", h.GetMoods)
	router.GET("/recipe/:mood", h.GetRandomRecipe)
	router.GET("/recipes", h.ListRecipes)
	router.GET("/check-mood/:mood", h.CheckMood)
}

// GetMoods returns every distinct mood, sorted
func (h *RecipeHandler) GetMoods(c *gin.Context) {
	moods, err := h.recipes.DistinctMoods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moods)
}

// GetRandomRecipe returns one recipe for the mood. An unknown mood is not
// an HTTP error; the body carries the message instead.
func (h *RecipeHandler) GetRandomRecipe(c *gin.Context) {
	mood := service.Sanitize(c.Param("mood"))

	recipe, err := h.recipes.RandomRecipeForMood(c.Request.Context(), mood)
	if errors.Is(err, service.ErrNotFound) {
		metrics.RecordRecipeLookup(metrics.LookupNotFound)
		c.JSON(http.StatusOK, types.ErrorResponse{Error: msgNoRecipeForMood})
		return
	}
	if err != nil {
		metrics.RecordRecipeLookup(metrics.LookupError)
		respondError(c, err)
		return
	}

	metrics.RecordRecipeLookup(metrics.LookupFound)
	c.JSON(http.StatusOK, recipe)
}

// ListRecipes returns all recipes in insertion order
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// CheckMood reports whether any recipe uses the mood, ignoring case
func (h *RecipeHandler) CheckMood(c *gin.Context) {
	mood := service.Sanitize(c.Param("mood"))

	exists, stored, err := h.recipes.MoodExists(c.Request.Context(), mood)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := types.MoodCheckResponse{Exists: exists}
	if exists {
		resp.ExistingMood = &stored
	}
	c.JSON(http.StatusOK, resp)
}
