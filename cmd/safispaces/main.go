// cmd/safispaces/main.go
package main

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/app"

	"github.com/safispaces/safispaces/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		// Error already logged by WAFFLE
		os.Exit(1)
	}
}
