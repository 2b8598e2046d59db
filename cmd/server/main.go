package main

import (
	"log/slog"
	"os"
	"strconv"

	"filmgraph/internal/transport/http"
)

func main() {
	log := setupLogger()

	if err := http.Run(log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger() *slog.Logger {
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))
	if debug {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
