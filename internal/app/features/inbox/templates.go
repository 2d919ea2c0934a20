// internal/app/features/inbox/templates.go
package inbox

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "inbox",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
