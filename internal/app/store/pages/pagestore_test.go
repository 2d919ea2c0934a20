package pagestore

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safispaces/safispaces/internal/domain/models"
	"github.com/safispaces/safispaces/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Upsert_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:    "about",
		Title:   "About Us",
		Content: "<p>Professional cleaning across Nairobi</p>",
	}

	err := store.Upsert(ctx, page)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	retrieved, err := store.GetBySlug(ctx, "about")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}

	if retrieved.Slug != page.Slug {
		t.Errorf("Slug = %v, want %v", retrieved.Slug, page.Slug)
	}
	if retrieved.Title != page.Title {
		t.Errorf("Title = %v, want %v", retrieved.Title, page.Title)
	}
	if retrieved.Content != page.Content {
		t.Errorf("Content = %v, want %v", retrieved.Content, page.Content)
	}
	if retrieved.UpdatedAt == nil {
		t.Error("UpdatedAt should be set")
	}
}

func TestStore_Upsert_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	initial := models.Page{
		Slug:    "terms",
		Title:   "Terms of Service",
		Content: "<p>Original terms</p>",
	}
	store.Upsert(ctx, initial)

	updated := models.Page{
		Slug:    "terms",
		Title:   "Updated Terms",
		Content: "<p>Updated terms content</p>",
	}

	err := store.Upsert(ctx, updated)
	if err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}

	retrieved, _ := store.GetBySlug(ctx, "terms")
	if retrieved.Title != updated.Title {
		t.Errorf("Title = %v, want %v", retrieved.Title, updated.Title)
	}
	if retrieved.Content != updated.Content {
		t.Errorf("Content = %v, want %v", retrieved.Content, updated.Content)
	}

	// Should still only be one page with this slug
	all, _ := store.GetAll(ctx)
	count := 0
	for _, p := range all {
		if p.Slug == "terms" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Should have exactly 1 page with slug 'terms', got %d", count)
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "nonexistent")
	if err != mongo.ErrNoDocuments {
		t.Errorf("GetBySlug() for nonexistent slug error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_GetAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, slug := range models.AllPageSlugs() {
		store.Upsert(ctx, models.Page{
			Slug:    slug,
			Title:   "Title for " + slug,
			Content: "<p>Content for " + slug + "</p>",
		})
	}

	pages, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(pages) != len(models.AllPageSlugs()) {
		t.Errorf("GetAll() count = %d, want %d", len(pages), len(models.AllPageSlugs()))
	}

	foundSlugs := make(map[string]bool)
	for _, p := range pages {
		foundSlugs[p.Slug] = true
	}
	for _, slug := range models.AllPageSlugs() {
		if !foundSlugs[slug] {
			t.Errorf("GetAll() missing page with slug %q", slug)
		}
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx, "about")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() should return false before page is created")
	}

	store.Upsert(ctx, models.Page{
		Slug:    "about",
		Title:   "About",
		Content: "Content",
	})

	exists, err = store.Exists(ctx, "about")
	if err != nil {
		t.Fatalf("Exists() after create error = %v", err)
	}
	if !exists {
		t.Error("Exists() should return true after page is created")
	}
}
