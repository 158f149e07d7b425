package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/moodrecipes/backend/internal/model"
	"github.com/pageza/moodrecipes/backend/internal/service"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

// MockRecipeService is a mock implementation of service.IRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) RandomRecipeForMood(ctx context.Context, mood string) (*model.Recipe, error) {
	args := m.Called(ctx, mood)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) DistinctMoods(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeService) MoodExists(ctx context.Context, mood string) (bool, string, error) {
	args := m.Called(ctx, mood)
	return args.Bool(0), args.String(1), args.Error(2)
}

// MockMoodService is a mock implementation of service.IMoodService
type MockMoodService struct {
	mock.Mock
}

func (m *MockMoodService) AddMood(ctx context.Context, req *types.AddMoodRequest) (*service.AddMoodResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AddMoodResult), args.Error(1)
}

var (
	_ service.IRecipeService = (*MockRecipeService)(nil)
	_ service.IMoodService   = (*MockMoodService)(nil)
)
