package service

import (
	"context"

	"github.com/pageza/moodrecipes/backend/internal/model"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

// IRecipeService defines the read side of the recipe store used by handlers
type IRecipeService interface {
	RandomRecipeForMood(ctx context.Context, mood string) (*model.Recipe, error)
	DistinctMoods(ctx context.Context) ([]string, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	MoodExists(ctx context.Context, mood string) (bool, string, error)
}

// IMoodService defines the add-mood operation
type IMoodService interface {
	AddMood(ctx context.Context, req *types.AddMoodRequest) (*AddMoodResult, error)
}

// Locker serializes work on a key. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}
