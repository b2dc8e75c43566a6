package main

import (
	"log/slog"
	"os"

	"github.com/SundayYogurt/alumni_service/config"
	"github.com/SundayYogurt/alumni_service/internal/api"
	"github.com/SundayYogurt/alumni_service/internal/logging"
)

func main() {
	//load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error("config error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := api.StartServer(cfg, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
