package queue

import (
	"context"

	"github.com/lspdigital/sertifikasi_service/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaConsumer feeds workflow events emitted by this service back into the
// admin notification feed.
type KafkaConsumer struct {
	Reader  *kafka.Reader
	Handler interfaces.ConsumerHandler
	log     *zap.Logger
}

func NewKafkaConsumer(broker, topic, groupID string, handler interfaces.ConsumerHandler, log *zap.Logger) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})

	return &KafkaConsumer{
		Reader:  reader,
		Handler: handler,
		log:     log,
	}
}

func (kc *KafkaConsumer) Listen(ctx context.Context) {
	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			kc.log.Error("kafka read failed", zap.Error(err))
			continue
		}

		kc.log.Info("event received",
			zap.ByteString("key", msg.Key),
			zap.Int("size", len(msg.Value)))

		if err := kc.Handler.HandleMessage(string(msg.Key), string(msg.Value)); err != nil {
			kc.log.Error("event handler failed",
				zap.ByteString("key", msg.Key),
				zap.Error(err))
		}
	}
}
