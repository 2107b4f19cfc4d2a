package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/uisnippets/cmd/uisnippets"
	"github.com/dasdy/uisnippets/logging"
)

func main() {
	slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelDebug))

	uisnippets.Execute()
}
