package types

// Add types accepted by the add-mood endpoint
const (
	AddTypeNew     = "new"
	AddTypeReplace = "replace"
)

// AddMoodRequest represents the request body for adding a mood. When
// IsNewRecipe is false, Recipe.ID names the existing recipe to clone or move.
type AddMoodRequest struct {
	Mood        string        `json:"mood"`
	IsNewRecipe bool          `json:"isNewRecipe"`
	AddType     string        `json:"addType"`
	Recipe      AddMoodRecipe `json:"recipe"`
}

// AddMoodRecipe carries the recipe fields of an add-mood request
type AddMoodRecipe struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}
