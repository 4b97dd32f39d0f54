package db

import (
	"testing"

	"github.com/readstash/readstash/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleArticle() *models.Article {
	return &models.Article{
		Title:     "Solid-State Batteries",
		Source:    "https://example.com/solid-state",
		Filetype:  "url",
		Plaintext: "Solid-state batteries replace the liquid electrolyte.",
		Markdown:  "<p>Solid-state batteries replace the liquid electrolyte.</p>",
		Summary:   "Solid-state batteries replace the liquid electrolyte.",
		AutoTags:  []string{"batteries", "electrolyte"},
		Read:      models.ReadStats{Words: 7, Minutes: 1},
		Takeaways: models.Takeaways{
			models.CategoryTechnicalDetails: {"Solid-state batteries replace the liquid electrolyte."},
		},
		Language:           "en",
		LanguageConfidence: 0.99,
		TopKeywords:        []string{"batteries:2", "electrolyte:1"},
	}
}

func TestInsertAndGetArticle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.InsertArticle(sampleArticle())
	if err != nil {
		t.Fatalf("InsertArticle() error = %v", err)
	}
	if id == 0 {
		t.Fatal("InsertArticle() returned 0 ID")
	}

	got, err := db.GetArticle(id)
	if err != nil {
		t.Fatalf("GetArticle() error = %v", err)
	}

	if got.Title != "Solid-State Batteries" {
		t.Errorf("title = %q, want %q", got.Title, "Solid-State Batteries")
	}
	if got.Status != "unread" {
		t.Errorf("status = %q, want default %q", got.Status, "unread")
	}
	if len(got.AutoTags) != 2 || got.AutoTags[0] != "batteries" {
		t.Errorf("auto tags = %v, want [batteries electrolyte]", got.AutoTags)
	}
	if got.Read.Words != 7 || got.Read.Minutes != 1 {
		t.Errorf("read stats = %+v, want {7 1}", got.Read)
	}
	if len(got.Takeaways[models.CategoryTechnicalDetails]) != 1 {
		t.Errorf("takeaways = %v, want one Technical Details entry", got.Takeaways)
	}
	if got.Language != "en" {
		t.Errorf("language = %q, want %q", got.Language, "en")
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetArticle(42); err == nil {
		t.Error("GetArticle() on empty database succeeded, want error")
	}
}

func TestListArticles(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := sampleArticle()
	second := sampleArticle()
	second.Title = "A Different Article"
	second.Source = "https://example.com/other"

	if _, err := db.InsertArticle(first); err != nil {
		t.Fatalf("InsertArticle() error = %v", err)
	}
	if _, err := db.InsertArticle(second); err != nil {
		t.Fatalf("InsertArticle() error = %v", err)
	}

	articles, err := db.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("ListArticles() returned %d articles, want 2", len(articles))
	}
	if articles[0].Title != "Solid-State Batteries" || articles[1].Title != "A Different Article" {
		t.Errorf("articles out of insertion order: %q, %q", articles[0].Title, articles[1].Title)
	}
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.InsertArticle(sampleArticle())
	if err != nil {
		t.Fatalf("InsertArticle() error = %v", err)
	}

	if err := db.UpdateStatus(id, "read"); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	got, err := db.GetArticle(id)
	if err != nil {
		t.Fatalf("GetArticle() error = %v", err)
	}
	if got.Status != "read" {
		t.Errorf("status = %q, want %q", got.Status, "read")
	}

	if err := db.UpdateStatus(999, "read"); err == nil {
		t.Error("UpdateStatus() on missing ID succeeded, want error")
	}
}
