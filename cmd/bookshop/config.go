package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"Bookshop/internal/term"
)

type config struct {
	LogLevel     string
	LogOutput    string
	Color        string
	PauseScale   float64
	AdminAddr    string
	MetricsToken string
	AdminRate    int
}

func loadEnvFiles() {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() (config, error) {
	loadEnvFiles()

	cfg := config{
		LogLevel:     getenv("BOOKSHOP_LOG_LEVEL", "warn"),
		LogOutput:    getenv("BOOKSHOP_LOG_OUTPUT", "stderr"),
		Color:        getenv("BOOKSHOP_COLOR", term.ColorAuto),
		AdminAddr:    os.Getenv("BOOKSHOP_ADMIN_ADDR"),
		MetricsToken: os.Getenv("BOOKSHOP_METRICS_TOKEN"),
	}

	switch cfg.Color {
	case term.ColorAuto, term.ColorAlways, term.ColorNever:
	default:
		return config{}, fmt.Errorf("BOOKSHOP_COLOR: unknown mode %q", cfg.Color)
	}

	scale, err := strconv.ParseFloat(getenv("BOOKSHOP_PAUSE_SCALE", "1"), 64)
	if err != nil || scale < 0 {
		return config{}, fmt.Errorf("BOOKSHOP_PAUSE_SCALE: want a non-negative number")
	}
	cfg.PauseScale = scale

	rate, err := strconv.Atoi(getenv("BOOKSHOP_ADMIN_RATE", "120"))
	if err != nil {
		return config{}, fmt.Errorf("BOOKSHOP_ADMIN_RATE: %w", err)
	}
	cfg.AdminRate = rate

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
