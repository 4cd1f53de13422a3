//go:build tools

package tools

// Kept so `go mod tidy` retains CLI tool dependencies used via `go tool`.
import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
