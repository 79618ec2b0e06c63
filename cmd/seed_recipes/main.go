package main

import (
	"context"
	"log"

	"github.com/pageza/recipes-api/backend/config"
	"github.com/pageza/recipes-api/backend/internal/database"
	"github.com/pageza/recipes-api/backend/internal/logging"
	"github.com/pageza/recipes-api/backend/internal/repository"
	"github.com/pageza/recipes-api/backend/internal/service"
)

var sampleRecipes = []map[string]any{
	{
		"title":        "Nasi Goreng",
		"description":  "Indonesian fried rice with sweet soy sauce",
		"ingredients":  []string{"2 cups cooked rice", "2 eggs", "2 tbsp kecap manis", "1 shallot", "2 cloves garlic"},
		"instructions": []string{"Fry shallot and garlic", "Scramble the eggs", "Add rice and kecap manis", "Stir-fry until hot"},
	},
	{
		"title":        "Classic Pancakes",
		"description":  "Fluffy breakfast pancakes",
		"ingredients":  []string{"1 cup flour", "1 cup milk", "1 egg", "1 tbsp sugar", "2 tsp baking powder"},
		"instructions": []string{"Whisk dry ingredients", "Add milk and egg", "Cook on a hot griddle until bubbles form", "Flip and finish"},
	},
	{
		"title":        "Tomato Soup",
		"ingredients":  []string{"1 kg tomatoes", "1 onion", "500 ml stock", "Salt", "Pepper"},
		"instructions": []string{"Soften the onion", "Add tomatoes and stock", "Simmer for 20 minutes", "Blend and season"},
	},
	{
		"title":        "Guacamole",
		"description":  "Chunky avocado dip",
		"ingredients":  []string{"3 avocados", "1 lime", "1 small onion", "Cilantro", "Salt"},
		"instructions": []string{"Mash the avocados", "Stir in lime juice, onion and cilantro", "Season to taste"},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Close(db)

	ctx := context.Background()
	if _, err := database.RunMigrations(ctx, db); err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}

	recipeService := service.NewRecipeService(repository.NewRecipeRepository(db), logger)

	created := 0
	for _, recipe := range sampleRecipes {
		res, err := recipeService.CreateRecipe(ctx, recipe)
		if err != nil {
			logger.WithError(err).WithField("title", recipe["title"]).Error("Failed to seed recipe")
			continue
		}
		logger.WithField("recipe_id", *res.Data.ID).Infof("Seeded recipe %q", res.Data.Title)
		created++
	}

	logger.Infof("Seeded %d of %d recipes", created, len(sampleRecipes))
}
