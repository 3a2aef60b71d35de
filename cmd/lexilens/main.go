// Command lexilens uploads a photo, submits it for analysis, and waits for
// the vocabulary list.
//
// Usage:
//
//	lexilens --image=menu.jpg --lang=es [--description="cafe menu"] [--save --title="Lunch"]
//
// LEXILENS_API_URL and LEXILENS_TOKEN provide the server address and a
// Supabase access token. Both can also be set in a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/lexilens-backend/internal/client"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

func main() {
	_ = godotenv.Load()

	var (
		apiURL      = flag.String("api", envOr("LEXILENS_API_URL", "http://localhost:8080"), "API base URL")
		token       = flag.String("token", os.Getenv("LEXILENS_TOKEN"), "Supabase access token")
		image       = flag.String("image", "", "path to the photo to analyze")
		lang        = flag.String("lang", "", "target language code, e.g. es")
		description = flag.String("description", "", "optional hint for the analyzer")
		save        = flag.Bool("save", false, "save the result as a lesson")
		title       = flag.String("title", "", "lesson title when saving")
		timeout     = flag.Duration("timeout", 3*time.Minute, "give up waiting after this long")
		verbose     = flag.Bool("v", false, "log polling progress")
	)
	flag.Parse()

	if *image == "" || *lang == "" || *token == "" {
		fmt.Fprintln(os.Stderr, "Usage: lexilens --image=PATH --lang=CODE (token via --token or LEXILENS_TOKEN)")
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	c := client.New(*apiURL, *token, logger)

	data, err := os.ReadFile(*image)
	if err != nil {
		log.Fatalf("read image: %v", err)
	}
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(*image)))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	ticket, err := c.CreateUpload(ctx, contentType)
	if err != nil {
		log.Fatalf("create upload: %v", err)
	}
	if err := c.PutObject(ctx, ticket.UploadURL, contentType, data); err != nil {
		log.Fatalf("upload image: %v", err)
	}

	var desc *string
	if *description != "" {
		desc = description
	}
	t, err := c.SubmitTask(ctx, ticket.Key, *lang, desc)
	if err != nil {
		log.Fatalf("submit: %v", err)
	}
	fmt.Fprintf(os.Stderr, "task %s submitted\n", t.ID)

	last := t.Status
	t, err = c.WaitForTask(ctx, t.ID, func(u *client.Task) {
		if u.Status != last {
			fmt.Fprintf(os.Stderr, "status: %s\n", u.Status)
			last = u.Status
		}
	})
	if err != nil {
		log.Fatalf("wait: %v", err)
	}
	if t.Status == domain.TaskStatusError {
		reason := "unknown error"
		if t.ErrorMessage != nil {
			reason = *t.ErrorMessage
		}
		log.Fatalf("analysis failed: %s", reason)
	}

	if t.Description != nil {
		fmt.Println(*t.Description)
		fmt.Println()
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, item := range t.Vocabulary {
		fmt.Fprintf(w, "%s\t%s\n", item.Word, item.Translation)
	}
	_ = w.Flush()

	if *save {
		var ttl *string
		if *title != "" {
			ttl = title
		}
		a, err := c.SaveAnalysis(ctx, t.ID, ttl)
		if err != nil {
			log.Fatalf("save: %v", err)
		}
		fmt.Fprintf(os.Stderr, "saved as %q (%s)\n", a.Title, a.ID)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
