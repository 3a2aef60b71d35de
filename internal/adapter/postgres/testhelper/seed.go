package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with role "user".
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates an active user with role "admin".
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		DisplayName: "Test User " + suffix,
		Role:        role,
		Status:      domain.UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTask inserts an analysis task in the given status owned by userID.
// Completed tasks get a two-word vocabulary.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.TaskStatus) domain.AnalysisTask {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.AnalysisTask{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    status,
		ImageKey:  "images/" + userID.String() + "/" + uniqueSuffix() + ".jpg",
		Language:  "es",
		CreatedAt: now,
		UpdatedAt: now,
	}

	var vocab []byte
	if status == domain.TaskStatusCompleted {
		desc := "A kitchen table with fruit"
		task.Description = &desc
		task.Vocabulary = []domain.VocabularyItem{
			{Word: "manzana", Translation: "apple"},
			{Word: "mesa", Translation: "table"},
		}
		task.CompletedAt = &now
		var err error
		vocab, err = json.Marshal(task.Vocabulary)
		if err != nil {
			t.Fatalf("testhelper: SeedTask marshal: %v", err)
		}
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO analysis_tasks (id, user_id, status, image_key, language, description, vocabulary, created_at, updated_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		task.ID, task.UserID, string(task.Status), task.ImageKey, task.Language,
		task.Description, vocab, task.CreatedAt, task.UpdatedAt, task.CompletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}

	return task
}

// SeedAnalysis inserts a saved analysis with the given title owned by userID.
func SeedAnalysis(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.SavedAnalysis {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	key := "images/" + userID.String() + "/" + uniqueSuffix() + ".png"
	a := domain.SavedAnalysis{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: "Seeded analysis " + title,
		ImageKey:    &key,
		Language:    "fr",
		Vocabulary:  []domain.VocabularyItem{{Word: "chat", Translation: "cat"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	vocab, err := json.Marshal(a.Vocabulary)
	if err != nil {
		t.Fatalf("testhelper: SeedAnalysis marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO saved_analyses (id, user_id, title, description, image_key, language, vocabulary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.UserID, a.Title, a.Description, a.ImageKey, a.Language, vocab, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnalysis insert: %v", err)
	}

	return a
}
