package model

// Recipe is a dish filed under a mood. Many recipes share a mood; the
// (name, mood) pair is kept unique case-insensitively by the write path.
type Recipe struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:text;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	Mood         string `gorm:"type:text;not null" json:"mood"`
	Ingredients  string `gorm:"type:text;not null" json:"ingredients"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`
}

// TableName pins the table name so existing recipes.db files keep working.
func (Recipe) TableName() string {
	return "recipes"
}

// CopyTo returns a new, unsaved recipe with the same content filed under mood.
func (r *Recipe) CopyTo(mood string) *Recipe {
	return &Recipe{
		Name:         r.Name,
		Description:  r.Description,
		Mood:         mood,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}
