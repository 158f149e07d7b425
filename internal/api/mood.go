package api

import (
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodrecipes/backend/internal/metrics"
	"github.com/pageza/moodrecipes/backend/internal/palette"
	"github.com/pageza/moodrecipes/backend/internal/service"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

// MoodHandler serves add-mood and the mood button palette
type MoodHandler struct {
	moods   service.IMoodService
	recipes service.IRecipeService

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMoodHandler creates a new MoodHandler instance. A nil rng is seeded
// from the clock.
func NewMoodHandler(moods service.IMoodService, recipes service.IRecipeService, rng *rand.Rand) *MoodHandler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MoodHandler{
		moods:   moods,
		recipes: recipes,
		rng:     rng,
	}
}

func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/add-mood", h.AddMood)
	router.GET("/mood-buttons", h.MoodButtons)
}

// AddMood files a new or existing recipe under a mood
func (h *MoodHandler) AddMood(c *gin.Context) {
	var req types.AddMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordMoodAddition(metrics.ModeNew, metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: msgInvalidBody})
		return
	}
	mode := additionMode(&req)

	result, err := h.moods.AddMood(c.Request.Context(), &req)
	if err != nil {
		metrics.RecordMoodAddition(mode, additionOutcome(err))
		respondError(c, err)
		return
	}

	metrics.RecordMoodAddition(mode, metrics.OutcomeSuccess)
	resp := types.AddMoodResponse{Success: true}
	if result.ID != 0 {
		resp.ID = &result.ID
	}
	c.JSON(http.StatusOK, resp)
}

// MoodButtons returns a label, a readable color and an emoji per mood
func (h *MoodHandler) MoodButtons(c *gin.Context) {
	moods, err := h.recipes.DistinctMoods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	h.mu.Lock()
	buttons := make([]types.MoodButton, 0, len(moods))
	for _, mood := range moods {
		buttons = append(buttons, types.MoodButton{
			Mood:  mood,
			Label: palette.Label(mood),
			Color: palette.RandomColor(h.rng).String(),
			Emoji: palette.RandomEmoji(h.rng),
		})
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, buttons)
}

func additionMode(req *types.AddMoodRequest) string {
	switch {
	case req.IsNewRecipe:
		return metrics.ModeNew
	case req.AddType == types.AddTypeReplace:
		return metrics.ModeReplace
	default:
		return metrics.ModeClone
	}
}

func additionOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, service.ErrDuplicate):
		return metrics.OutcomeDuplicate
	case errors.Is(err, service.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
