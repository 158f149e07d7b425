package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodrecipes/backend/internal/service"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgRequiredFields  = "All required fields must be filled out"
	msgDuplicateRecipe = "This recipe already exists for this mood"
	msgRecipeNotFound  = "Recipe not found"
	msgNoRecipeForMood = "No recipe found for this mood"
)

// respondError maps service errors onto status codes. Storage failures
// pass their message through.
func respondError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, err.Error()
	switch {
	case errors.Is(err, service.ErrValidation):
		status, msg = http.StatusBadRequest, msgRequiredFields
	case errors.Is(err, service.ErrDuplicate):
		status, msg = http.StatusBadRequest, msgDuplicateRecipe
	case errors.Is(err, service.ErrNotFound):
		status, msg = http.StatusNotFound, msgRecipeNotFound
	}
	_ = c.Error(err)
	c.JSON(status, types.ErrorResponse{Error: msg})
}
