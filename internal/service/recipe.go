package service

import (
	"context"
	"errors"

	"github.com/pageza/moodrecipes/backend/internal/model"
	"gorm.io/gorm"
)

// RecipeService handles recipe storage operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Transaction runs fn against a RecipeService bound to a single transaction.
// The transaction is rolled back if fn returns an error.
func (s *RecipeService) Transaction(ctx context.Context, fn func(tx *RecipeService) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RecipeService{db: tx})
	})
}

// RandomRecipeForMood picks one recipe uniformly at random among those whose
// mood matches case-insensitively
func (s *RecipeService) RandomRecipeForMood(ctx context.Context, mood string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Where("LOWER(mood) = LOWER(?)", mood).
		Order("RANDOM()").
		Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("random recipe", err)
	}
	return &recipe, nil
}

// DistinctMoods returns every stored mood once, sorted
func (s *RecipeService) DistinctMoods(ctx context.Context) ([]string, error) {
	var moods []string
	err := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Distinct("mood").
		Order("mood").
		Pluck("mood", &moods).Error
	if err != nil {
		return nil, storageErr("distinct moods", err)
	}
	if moods == nil {
		moods = []string{}
	}
	return moods, nil
}

// ListRecipes returns all recipes in insertion order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, storageErr("list recipes", err)
	}
	return recipes, nil
}

// MoodExists reports whether any recipe carries mood (case-insensitive) and,
// if so, the casing stored on the oldest such recipe
func (s *RecipeService) MoodExists(ctx context.Context, mood string) (bool, string, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Select("mood").
		Where("LOWER(mood) = LOWER(?)", mood).
		Order("id").
		Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", storageErr("check mood", err)
	}
	return true, recipe.Mood, nil
}

// FindByNameAndMood returns the recipe matching both name and mood
// case-insensitively, or nil if there is none
func (s *RecipeService) FindByNameAndMood(ctx context.Context, name, mood string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND LOWER(mood) = LOWER(?)", name, mood).
		Order("id").
		Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("find recipe", err)
	}
	return &recipe, nil
}

// CreateRecipe inserts recipe and returns its generated ID
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (uint, error) {
	recipe.ID = 0
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return 0, storageErr("create recipe", err)
	}
	return recipe.ID, nil
}

// UpdateMood moves an existing recipe to another mood
func (s *RecipeService) UpdateMood(ctx context.Context, id uint, mood string) error {
	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		Update("mood", mood)
	if result.Error != nil {
		return storageErr("update mood", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("get recipe", err)
	}
	return &recipe, nil
}

// CountRecipes returns the number of stored recipes
func (s *RecipeService) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, storageErr("count recipes", err)
	}
	return count, nil
}
