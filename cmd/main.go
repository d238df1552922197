package main

import (
	"log/slog"
	"os"

	"github.com/zmzlois/readingreact/cmd/readingreact"
	"github.com/zmzlois/readingreact/logging"
)

func main() {
	// --verbose swaps this for a debug level handler once flags are parsed.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, false)))

	readingreact.Execute()
}
