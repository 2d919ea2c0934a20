// Package htmlsanitize neutralizes markup in untrusted text.
// It uses bluemonday with two policies: a strict policy that strips every
// tag and attribute from form input, and a display policy that keeps safe
// formatting for company-authored page content.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	displayPolicy *bluemonday.Policy
	policyOnce    sync.Once
)

// policies returns the shared sanitization policies, creating them on first use.
func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		// Empty tag allow-list, empty attribute allow-list: only text survives.
		strictPolicy = bluemonday.StrictPolicy()

		// Page content keeps basic formatting (headings, lists, links).
		displayPolicy = bluemonday.UGCPolicy()
	})
	return strictPolicy, displayPolicy
}

// Sanitize strips every markup tag and attribute from raw, leaving only the
// textual content with markup delimiters entity-escaped. It never fails:
// malformed or unbalanced markup degrades to best-effort text extraction.
// The result contains no raw '<' or '>' and sanitizing it again is a no-op.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	strict, _ := policies()
	return strict.Sanitize(raw)
}

// SanitizeContent cleans company-authored page HTML, removing dangerous
// elements while preserving safe formatting, and returns it ready for
// direct rendering in templates.
func SanitizeContent(html string) template.HTML {
	if html == "" {
		return ""
	}
	_, display := policies()
	return template.HTML(display.Sanitize(html))
}
