package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/moodrecipes/backend/internal/logging"
	"github.com/pageza/moodrecipes/backend/internal/model"
	"github.com/pageza/moodrecipes/backend/internal/service"
)

// SampleRecipes are inserted into an empty table on first run
var SampleRecipes = []model.Recipe{
	{
		Name:         "Comforting Mac and Cheese",
		Description:  "A warm, creamy comfort food perfect for when you're feeling down",
		Mood:         "sad",
		Ingredients:  "Macaroni, Cheddar cheese, Milk, Butter, Flour, Salt, Pepper",
		Instructions: "1. Cook macaroni\n2. Make cheese sauce\n3. Combine and bake",
	},
	{
		Name:         "Warm Chocolate Chip Cookies",
		Description:  "Fresh-baked cookies that feel like a hug from the inside",
		Mood:         "sad",
		Ingredients:  "Flour, Butter, Brown sugar, White sugar, Eggs, Vanilla, Chocolate chips",
		Instructions: "1. Cream butter and sugars\n2. Add wet ingredients\n3. Mix in dry ingredients\n4. Bake until golden",
	},
	{
		Name:         "Creamy Tomato Soup",
		Description:  "A soothing bowl of warmth for gloomy days",
		Mood:         "sad",
		Ingredients:  "Tomatoes, Heavy cream, Onion, Garlic, Vegetable broth, Basil, Salt, Pepper",
		Instructions: "1. Sauté onions and garlic\n2. Add tomatoes and broth\n3. Blend and add cream\n4. Simmer until ready",
	},
	{
		Name:         "Energizing Smoothie Bowl",
		Description:  "A vibrant and nutritious bowl to boost your mood",
		Mood:         "happy",
		Ingredients:  "Frozen berries, Banana, Greek yogurt, Honey, Granola, Chia seeds",
		Instructions: "1. Blend fruits\n2. Top with granola and seeds",
	},
	{
		Name:         "Rainbow Buddha Bowl",
		Description:  "A colorful, healthy bowl that makes you smile",
		Mood:         "happy",
		Ingredients:  "Quinoa, Roasted chickpeas, Avocado, Cherry tomatoes, Kale, Sweet potato, Tahini dressing",
		Instructions: "1. Cook quinoa\n2. Roast chickpeas and sweet potato\n3. Assemble bowl\n4. Drizzle with dressing",
	},
	{
		Name:         "Fruit-Topped Pancakes",
		Description:  "Fluffy pancakes topped with fresh fruits to start the day right",
		Mood:         "happy",
		Ingredients:  "Flour, Milk, Eggs, Baking powder, Sugar, Fresh berries, Maple syrup",
		Instructions: "1. Mix batter\n2. Cook pancakes\n3. Top with fresh fruits\n4. Drizzle with syrup",
	},
	{
		Name:         "Spicy Chicken Tacos",
		Description:  "Exciting and flavorful tacos to spice up your day",
		Mood:         "excited",
		Ingredients:  "Chicken, Taco seasoning, Tortillas, Lettuce, Cheese, Hot sauce",
		Instructions: "1. Cook seasoned chicken\n2. Assemble tacos with toppings",
	},
	{
		Name:         "Sizzling Fajita Platter",
		Description:  "A dramatic, steaming platter that brings excitement to the table",
		Mood:         "excited",
		Ingredients:  "Steak, Bell peppers, Onions, Fajita seasoning, Lime, Tortillas, Guacamole",
		Instructions: "1. Marinate steak\n2. Sauté vegetables\n3. Cook steak\n4. Serve sizzling hot",
	},
	{
		Name:         "Spicy Korean Bibimbap",
		Description:  "A bowl of vibrant colors and exciting flavors",
		Mood:         "excited",
		Ingredients:  "Rice, Ground beef, Carrots, Spinach, Bean sprouts, Gochujang sauce, Fried egg",
		Instructions: "1. Cook rice\n2. Prepare vegetables\n3. Cook beef\n4. Assemble with sauce and egg",
	},
}

// SeedRecipes inserts SampleRecipes when the table is empty and returns how
// many rows it wrote. With force set it seeds a non-empty table too, skipping
// samples whose name and mood already exist.
func SeedRecipes(ctx context.Context, db *gorm.DB, force bool) (int, error) {
	recipes := service.NewRecipeService(db)

	count, err := recipes.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 && !force {
		logging.Debug().Int64("existing", count).Msg("recipes table not empty, skipping seed")
		return 0, nil
	}

	inserted := 0
	err = recipes.Transaction(ctx, func(tx *service.RecipeService) error {
		for _, sample := range SampleRecipes {
			existing, err := tx.FindByNameAndMood(ctx, sample.Name, sample.Mood)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			recipe := sample
			if _, err := tx.CreateRecipe(ctx, &recipe); err != nil {
				return fmt.Errorf("failed to seed %q: %w", sample.Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logging.Info().Int("inserted", inserted).Msg("seeded sample recipes")
	return inserted, nil
}
