package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	ai "resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using process environment")
	}

	// infra setup: everything beyond the renderer is optional
	exportsPool, err := infra.NewExportsPool(ctx)
	if err != nil {
		log.Printf("warning: exports DB not available: %v", err)
	} else if err := migration.RunMigrations(ctx, exportsPool); err != nil {
		log.Printf("warning: migrations failed: %v", err)
	}

	cache, err := infra.NewSuggestionCache(ctx)
	if err != nil {
		log.Printf("warning: suggestion cache not available: %v", err)
	}

	renderer := infra.NewChromedpRenderer()
	exportsRepo := repo.NewExportsRepo(exportsPool)
	exporter := usecase.NewExporter(renderer, exportsRepo, "templates")
	suggester := usecase.NewSuggester(ai.NewSourceFromEnv(), cache)

	app := fiber.New()

	store := httpadapter.NewStore()
	h := httpadapter.NewHandler(store, exporter, suggester)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
