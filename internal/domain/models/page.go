// internal/domain/models/page.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page represents a content page like About, Terms of Service, and Privacy Policy.
type Page struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug    string             `bson:"slug" json:"slug"`       // URL slug: "about", "terms", "privacy"
	Title   string             `bson:"title" json:"title"`     // Display title
	Content string             `bson:"content" json:"content"` // HTML content

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Page slugs
const (
	PageSlugAbout   = "about"
	PageSlugTerms   = "terms"
	PageSlugPrivacy = "privacy"
)

// AllPageSlugs returns all valid page slugs.
func AllPageSlugs() []string {
	return []string{
		PageSlugAbout,
		PageSlugTerms,
		PageSlugPrivacy,
	}
}

// IsValidPageSlug checks if a slug is valid.
func IsValidPageSlug(slug string) bool {
	for _, s := range AllPageSlugs() {
		if s == slug {
			return true
		}
	}
	return false
}
