package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("adding owner into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if cfg.Auth.OwnerEmail == "" || cfg.Auth.OwnerPassword == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD must be set")
	}

	hash, err := auth.HashPassword(cfg.Auth.OwnerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	ctx := context.Background()
	appLogger := logger.NewZapLogger(cfg.App.Env)
	if cfg.DB.AutoMigrate {
		if err := persistence.Migrate(cfg.DB.DSN, appLogger); err != nil {
			log.Fatalf("cannot migrate database: %v", err)
		}
	}
	pool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	users := persistence.NewPostgresUserRepo(pool)
	owner := &user.User{ID: uuid.New(), Email: cfg.Auth.OwnerEmail, PasswordHash: hash}
	if existing, err := users.FindByEmail(ctx, owner.Email); err == nil {
		owner.ID = existing.ID
		owner.Name = existing.Name
	}
	if err := users.Upsert(ctx, owner); err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", owner.Email)
}
