package main

import (
	"log"
	"net/http"
	"os"

	_ "authsvc/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"authsvc/internal/auth"
	"authsvc/internal/cache"
	"authsvc/internal/config"
	"authsvc/internal/db"
	"authsvc/internal/handler"
	"authsvc/internal/model"
	"authsvc/internal/repository"
	"authsvc/internal/router"
	"authsvc/internal/service"
)

// @title Auth Service API
// @version 1.0
// @description Username/password authentication API with signed session tokens.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping user table...")
		if err := gormDB.Migrator().DropTable(&model.User{}); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	router.Register(e, cfg, authHandler, userHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
