package broker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/serhatayata/Debezium-MSSQL/internal/consumer"
)

type segmentioClient struct {
	cfg    consumer.ClientConfig
	reader *kafka.Reader
}

// Segmentio builds a group consumer on segmentio/kafka-go. The reader itself
// is created on Subscribe because kafka-go binds the topic at construction.
func Segmentio(ctx context.Context, cfg consumer.ClientConfig) (consumer.Client, error) {
	if err := dialAny(ctx, SplitBrokers(cfg.Brokers)); err != nil {
		return nil, err
	}
	return &segmentioClient{cfg: cfg}, nil
}

func dialAny(ctx context.Context, brokers []string) error {
	var errs []error
	for _, addr := range brokers {
		conn, err := kafka.DialContext(ctx, "tcp", addr)
		if err != nil {
			errs = append(errs, fmt.Errorf("dial %s: %w", addr, err))
			continue
		}
		return conn.Close()
	}
	if len(errs) == 0 {
		return errors.New("no brokers configured")
	}
	return errors.Join(errs...)
}

func (c *segmentioClient) Subscribe(_ context.Context, topic string) error {
	if c.reader != nil {
		return fmt.Errorf("already subscribed to %s", c.reader.Config().Topic)
	}
	c.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:  SplitBrokers(c.cfg.Brokers),
		GroupID:  c.cfg.GroupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("[kafka-go] "+msg, args...)
		}),
	})
	return nil
}

func (c *segmentioClient) Poll(ctx context.Context) (consumer.Message, error) {
	if c.reader == nil {
		return consumer.Message{}, errors.New("poll before subscribe")
	}

	// A group reader retries unknown topics and corrupt fetches internally
	// and reports them through ErrorLogger, so ReadMessage blocks instead of
	// failing. The mappings below only fire if kafka-go ever surfaces them.
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		switch {
		case errors.Is(err, kafka.UnknownTopicOrPartition):
			err = fmt.Errorf("%w: %w", consumer.ErrTopicNotFound, err)
		case errors.Is(err, kafka.InvalidMessage):
			err = fmt.Errorf("%w: %w", consumer.ErrCorruptRecord, err)
		}
		return consumer.Message{}, err
	}

	return consumer.Message{
		Topic:     m.Topic,
		Partition: int32(m.Partition),
		Offset:    m.Offset,
		Key:       m.Key,
		Value:     m.Value,
	}, nil
}

func (c *segmentioClient) Close() error {
	if c.reader == nil {
		return nil
	}
	return c.reader.Close()
}
