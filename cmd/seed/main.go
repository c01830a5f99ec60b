package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"vehicle-rental-api/internal/config"
	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/repository/postgres"
)

// Seeds the initial admin user so the API has a login to bootstrap from.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	username := flag.String("username", "admin", "Username for the seeded admin user")
	password := flag.String("password", "", "Password for the seeded admin user (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := postgres.NewUserRepository(db)
	user := &domain.User{
		ID:           uuid.New(),
		Username:     *username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := users.Create(context.Background(), user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %q (%s)", user.Username, user.ID)
}
