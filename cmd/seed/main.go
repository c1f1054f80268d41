package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"authsvc/internal/config"
	"authsvc/internal/db"
	apperrors "authsvc/internal/errors"
	"authsvc/internal/model"
	"authsvc/internal/password"
	"authsvc/internal/repository"
)

// demoUser is a seed record; the plaintext is hashed before insert.
type demoUser struct {
	Email    string
	Password string
	FullName string
}

var demoUsers = []demoUser{
	{Email: "alice@example.com", Password: "password1", FullName: "Alice Example"},
	{Email: "bob@example.com", Password: "password2", FullName: "Bob Example"},
	{Email: "demo@example.com", Password: "demo-pass", FullName: ""},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, d := range demoUsers {
		hashed, err := password.Hash(d.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", d.Email, err)
		}

		user := &model.User{
			Email:        d.Email,
			PasswordHash: hashed,
			FullName:     d.FullName,
		}
		if err := repo.Create(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEmail) {
				skipped++
				continue
			}
			log.Fatalf("Failed to create user %s: %v", d.Email, err)
		}
		created++
	}

	log.Printf("Seed complete: %d users created, %d already present", created, skipped)
}
