package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pageza/moodrecipes/backend/internal/logging"
	"github.com/pageza/moodrecipes/backend/internal/model"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

var validate = validator.New()

// moodInput is an add-mood request after sanitization
type moodInput struct {
	Mood         string `validate:"required"`
	Name         string `validate:"required"`
	Description  string
	Ingredients  string `validate:"required"`
	Instructions string `validate:"required"`
}

// AddMoodResult describes the row an add-mood wrote. ID is zero when an
// existing recipe was moved rather than inserted.
type AddMoodResult struct {
	ID uint
}

// MoodService files recipes under moods
type MoodService struct {
	recipes *RecipeService
	locker  Locker
}

// NewMoodService creates a new MoodService instance
func NewMoodService(recipes *RecipeService, locker Locker) *MoodService {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &MoodService{
		recipes: recipes,
		locker:  locker,
	}
}

// AddMood files a recipe under req.Mood. A new recipe is inserted; an
// existing one (req.Recipe.ID) is either moved (replace) or copied (new).
// The duplicate check and the write happen under a lock on (name, mood)
// and inside one transaction.
func (s *MoodService) AddMood(ctx context.Context, req *types.AddMoodRequest) (*AddMoodResult, error) {
	in := moodInput{
		Mood:         Sanitize(req.Mood),
		Name:         Sanitize(req.Recipe.Name),
		Description:  Sanitize(req.Recipe.Description),
		Ingredients:  Sanitize(req.Recipe.Ingredients),
		Instructions: Sanitize(req.Recipe.Instructions),
	}
	if err := validate.Struct(in); err != nil {
		return nil, ErrValidation
	}

	unlock, err := s.locker.Lock(ctx, lockKey(in.Name, in.Mood))
	if err != nil {
		return nil, storageErr("lock", err)
	}
	defer unlock()

	result := &AddMoodResult{}
	err = s.recipes.Transaction(ctx, func(tx *RecipeService) error {
		existing, err := tx.FindByNameAndMood(ctx, in.Name, in.Mood)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicate
		}

		switch {
		case req.IsNewRecipe:
			result.ID, err = tx.CreateRecipe(ctx, &model.Recipe{
				Name:         in.Name,
				Description:  in.Description,
				Mood:         in.Mood,
				Ingredients:  in.Ingredients,
				Instructions: in.Instructions,
			})
			return err
		case req.AddType == types.AddTypeReplace:
			return tx.UpdateMood(ctx, req.Recipe.ID, in.Mood)
		default:
			source, err := tx.GetRecipe(ctx, req.Recipe.ID)
			if err != nil {
				return err
			}
			result.ID, err = tx.CreateRecipe(ctx, source.CopyTo(in.Mood))
			return err
		}
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, storageErr("add mood", err)
	}

	logging.Info().
		Str("mood", in.Mood).
		Str("recipe", in.Name).
		Uint("id", result.ID).
		Bool("new_recipe", req.IsNewRecipe).
		Str("add_type", req.AddType).
		Msg("mood added")
	return result, nil
}

func lockKey(name, mood string) string {
	return "add-mood:" + strings.ToLower(mood) + ":" + strings.ToLower(name)
}
