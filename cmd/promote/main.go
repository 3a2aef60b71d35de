// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user. The user must have signed
// in at least once so that their row exists.
//
// Usage:
//
//	promote --email=user@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/lexilens-backend/internal/app"
	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/service/session"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	u, err := session.NewService(logger, userrepo.New(pool)).Promote(ctx, *email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	case err != nil:
		log.Fatalf("promote: %v", err)
	}

	fmt.Printf("User %q (%s) is admin.\n", u.Email, u.ID)
}
