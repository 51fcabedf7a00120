package main

import (
	"log/slog"
	"os"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/bootstrap"
)

func main() {
	if err := bootstrap.Run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}
