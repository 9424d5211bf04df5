package broker

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/serhatayata/Debezium-MSSQL/internal/consumer"
)

type franzClient struct {
	client *kgo.Client
}

// Franz builds a group consumer on franz-go. The broker is pinged before the
// handle is returned so an unreachable broker fails here and not on the
// first poll.
func Franz(ctx context.Context, cfg consumer.ClientConfig) (consumer.Client, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(SplitBrokers(cfg.Brokers)...),
		kgo.ConsumerGroup(cfg.GroupID),
		kgo.WithLogger(kgo.BasicLogger(os.Stderr, kgo.LogLevelWarn, func() string { return "[kgo] " })),
	)
	if err != nil {
		return nil, fmt.Errorf("Unable to create consumer client: %w", err)
	}

	if err := cl.Ping(ctx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("unable to reach broker %s: %w", cfg.Brokers, err)
	}

	return &franzClient{client: cl}, nil
}

func (c *franzClient) Subscribe(_ context.Context, topic string) error {
	c.client.AddConsumeTopics(topic)
	return nil
}

func (c *franzClient) Poll(ctx context.Context) (consumer.Message, error) {
	for {
		fetches := c.client.PollRecords(ctx, 1)
		if fetches.IsClientClosed() {
			return consumer.Message{}, kgo.ErrClientClosed
		}
		if err := fetchError(fetches); err != nil {
			return consumer.Message{}, err
		}

		records := fetches.Records()
		if len(records) == 0 {
			continue
		}
		r := records[0]
		return consumer.Message{
			Topic:     r.Topic,
			Partition: r.Partition,
			Offset:    r.Offset,
			Key:       r.Key,
			Value:     r.Value,
		}, nil
	}
}

func (c *franzClient) Close() error {
	c.client.Close()
	return nil
}

func fetchError(fetches kgo.Fetches) error {
	var first error
	fetches.EachError(func(topic string, partition int32, err error) {
		if first != nil {
			return
		}
		switch {
		case errors.Is(err, kerr.UnknownTopicOrPartition):
			err = fmt.Errorf("%w: %w", consumer.ErrTopicNotFound, err)
		case errors.Is(err, kerr.CorruptMessage):
			err = fmt.Errorf("%w: %w", consumer.ErrCorruptRecord, err)
		}
		if topic == "" {
			first = err
			return
		}
		first = fmt.Errorf("topic %s partition %d: %w", topic, partition, err)
	})
	return first
}
