package community

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher публикует посты сообщества в kafka
type Publisher struct {
	writer       MessageWriter
	writeTimeout time.Duration
	log          Logger
}

// NewKafkaWriter создает kafka.Writer для топика постов сообщества
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

// NewPublisher создает публикатор поверх writer
func NewPublisher(writer MessageWriter, writeTimeout time.Duration, log Logger) *Publisher {
	return &Publisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		log:          log,
	}
}

// PublishMatchRequest публикует пост о регулярном бронировании.
// Ключ сообщения - ID поля, чтобы посты одного поля попадали в одну партицию.
func (p *Publisher) PublishMatchRequest(ctx context.Context, event *MatchRequestEvent) error {
	if event == nil || event.BookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidEvent)
	}
	if event.Type == "" {
		event.Type = EventTypeMatchRequest
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInvalidEvent, err)
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(event.FieldID),
		Value: data,
		Time:  event.CreatedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: booking=%s: %v", ErrPublishFailed, event.BookingID, err)
	}

	p.log.Info("Community: published match request booking=%s field=%s sessions=%d",
		event.BookingID, event.FieldID, len(event.SessionDates))
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
