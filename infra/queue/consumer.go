package queue

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type KafkaConsumer struct {
	Reader      *kafka.Reader
	Handler     interfaces.ConsumerHandler
	ServiceName string
	log         *slog.Logger
}

func NewKafkaConsumer(broker, topic, groupID, username, password string, handler interfaces.ConsumerHandler, logger *slog.Logger) *KafkaConsumer {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	if username != "" {
		dialer.TLS = &tls.Config{}
		dialer.SASLMechanism = plain.Mechanism{
			Username: username,
			Password: password,
		}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3, //10KB
		MaxBytes: 10e6, //10MB
		Dialer:   dialer,
	})

	if logger == nil {
		logger = slog.Default()
	}

	return &KafkaConsumer{
		Reader:      reader,
		Handler:     handler,
		ServiceName: "Alumni Mailer",
		log:         logger,
	}
}

// Listen reads until ctx is cancelled. Handler errors are logged and the
// message is still committed; a bad event must not block the partition.
func (kc *KafkaConsumer) Listen(ctx context.Context) error {
	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return kc.Reader.Close()
			}
			if errors.Is(err, io.EOF) {
				// reader closed underneath us
				return nil
			}
			kc.log.Error("kafka read failed", slog.String("service", kc.ServiceName), slog.String("error", err.Error()))
			continue
		}

		kc.log.Info("event received", slog.String("service", kc.ServiceName), slog.String("key", string(msg.Key)))

		if err := kc.Handler.HandleMessage(string(msg.Key), msg.Value); err != nil {
			kc.log.Error("event handler failed",
				slog.String("service", kc.ServiceName),
				slog.String("key", string(msg.Key)),
				slog.String("error", err.Error()))
		}
	}
}
