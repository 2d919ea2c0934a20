package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string // Strings that should be in output
		excludes []string // Strings that should NOT be in output
	}{
		{
			name:     "empty string",
			input:    "",
			contains: []string{},
			excludes: []string{},
		},
		{
			name:     "plain text",
			input:    "Need weekly cleaning",
			contains: []string{"Need weekly cleaning"},
			excludes: []string{},
		},
		{
			name:     "formatting tags stripped",
			input:    "<p>Hello <strong>World</strong></p>",
			contains: []string{"Hello", "World"},
			excludes: []string{"<p>", "<strong>"},
		},
		{
			name:     "script tag and body removed",
			input:    "Hello<script>alert('xss')</script>",
			contains: []string{"Hello"},
			excludes: []string{"script", "alert", "xss"},
		},
		{
			name:     "onclick removed",
			input:    `<p onclick="alert('xss')">Click me</p>`,
			contains: []string{"Click me"},
			excludes: []string{"onclick", "alert"},
		},
		{
			name:     "javascript URL removed",
			input:    `<a href="javascript:alert('xss')">Link</a>`,
			contains: []string{"Link"},
			excludes: []string{"javascript:", "alert", "href"},
		},
		{
			name:     "links stripped to text",
			input:    `<a href="https://example.com">Link</a>`,
			contains: []string{"Link"},
			excludes: []string{"<a", "href", "example.com"},
		},
		{
			name:     "iframe removed",
			input:    `<iframe src="https://evil.com"></iframe>Content`,
			contains: []string{"Content"},
			excludes: []string{"iframe", "evil.com"},
		},
		{
			name:     "style tag removed",
			input:    "<style>body{display:none}</style>Content",
			contains: []string{"Content"},
			excludes: []string{"style", "display:none"},
		},
		{
			name:     "img with onerror removed entirely",
			input:    `before <img src="x" onerror="alert('xss')"> after`,
			contains: []string{"before", "after"},
			excludes: []string{"img", "onerror", "alert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.input)

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("Sanitize() result should contain %q, got %q", s, result)
				}
			}

			for _, s := range tt.excludes {
				if strings.Contains(result, s) {
					t.Errorf("Sanitize() result should NOT contain %q, got %q", s, result)
				}
			}
		})
	}
}

func TestSanitize_NoMarkupDelimitersSurvive(t *testing.T) {
	inputs := []string{
		"<b>bold</b>",
		"a < b and c > d",
		"<script>alert(1)</script>",
		"<<<<>>>>",
		"<img src=x onerror=alert(1)>",
		"unbalanced <div",
		"text with <unknown-tag>inside</unknown-tag>",
	}

	for _, in := range inputs {
		out := Sanitize(in)
		if strings.ContainsAny(out, "<>") {
			t.Errorf("Sanitize(%q) = %q, contains a raw markup delimiter", in, out)
		}
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<p>Hello <strong>World</strong></p>",
		"a < b and c > d",
		"Tom & Jerry",
		"it's \"quoted\"",
		"&lt;already escaped&gt;",
		"<script>alert('x')</script>trailing",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first=%q, second=%q", in, once, twice)
		}
	}
}

func TestSanitize_OrderPreserving(t *testing.T) {
	in := "first <b>second</b> third"
	out := Sanitize(in)

	i1 := strings.Index(out, "first")
	i2 := strings.Index(out, "second")
	i3 := strings.Index(out, "third")
	if i1 == -1 || i2 == -1 || i3 == -1 {
		t.Fatalf("Sanitize(%q) = %q, lost text runs", in, out)
	}
	if !(i1 < i2 && i2 < i3) {
		t.Errorf("Sanitize(%q) = %q, text runs out of order", in, out)
	}
}

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "safe formatting preserved",
			input:    "<h2>About</h2><p>Hello <strong>there</strong></p>",
			contains: []string{"<h2>", "<strong>", "Hello"},
			excludes: []string{},
		},
		{
			name:     "script removed",
			input:    "<p>Content</p><script>bad()</script>",
			contains: []string{"<p>Content</p>"},
			excludes: []string{"<script>", "bad()"},
		},
		{
			name:     "event handler removed",
			input:    `<p onmouseover="steal()">Content</p>`,
			contains: []string{"<p>", "Content"},
			excludes: []string{"onmouseover", "steal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(SanitizeContent(tt.input))

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("SanitizeContent() should contain %q, got %q", s, result)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(result, s) {
					t.Errorf("SanitizeContent() should NOT contain %q, got %q", s, result)
				}
			}
		})
	}
}
