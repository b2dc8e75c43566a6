package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SundayYogurt/alumni_service/config"
	"github.com/SundayYogurt/alumni_service/infra/queue"
	"github.com/SundayYogurt/alumni_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/alumni_service/internal/logging"
	"github.com/SundayYogurt/alumni_service/internal/services"
)

func main() {
	// ---------- Load Config ----------
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat).With(slog.String("service", "mailer"))

	if err := cfg.ValidateMailer(); err != nil {
		log.Error("config error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("mail service starting",
		slog.String("broker", cfg.KafkaBroker),
		slog.String("topic", cfg.KafkaTopic),
		slog.String("group_id", cfg.KafkaGroupID),
	)

	// ---------- Init Service ----------
	mailService, err := services.NewMailService(cfg.Mail, log)
	if err != nil {
		log.Error("mail service init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ---------- Init Handler ----------
	handler := handlers.NewMailHandler(mailService, log)

	// ---------- Init Kafka Consumer ----------
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
		log,
	)

	// ---------- Start Listening ----------
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("listening for events")
	if err := consumer.Listen(ctx); err != nil {
		log.Error("consumer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
