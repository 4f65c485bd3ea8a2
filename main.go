// @title linkline API
// @version 1.0
// @description Minimal social-feed backend: posts, likes, comments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"linkline/bootstrap"
	"linkline/config"
	"linkline/database"
	_ "linkline/docs"
	"linkline/internal/handlers"
	"linkline/internal/middleware"
	"linkline/internal/repository"
	"linkline/internal/routes"
	"linkline/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Public surface
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	// Everything registered after this carries the verified uid in Locals;
	// RequireAuth on the route groups makes it mandatory.
	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Auth:     handlers.NewAuthHandler(userRepo, cfg.JWTSecret),
		Users:    handlers.NewUserHandler(userRepo),
		Posts:    handlers.NewPostHandler(postRepo, feedRepo, commentRepo, userRepo, store),
		Comments: handlers.NewCommentHandler(commentRepo, postRepo),
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
