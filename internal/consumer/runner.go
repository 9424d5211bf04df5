package consumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
)

type Config struct {
	GroupID string
	Brokers string
	Topic   string
}

// ClientConfig is what a Builder gets to create a client handle.
type ClientConfig struct {
	GroupID string
	Brokers string
}

// Client is a single consumer handle. It is used by one goroutine only.
type Client interface {
	Subscribe(ctx context.Context, topic string) error
	// Poll blocks until the next message arrives, ctx is done or the
	// client fails.
	Poll(ctx context.Context) (Message, error)
	Close() error
}

type Builder func(ctx context.Context, cfg ClientConfig) (Client, error)

type Runner struct {
	cfg   Config
	build Builder
	out   io.Writer
}

func NewRunner(cfg Config, build Builder, out io.Writer) *Runner {
	return &Runner{cfg: cfg, build: build, out: out}
}

// Run consumes until ctx is cancelled or a fault occurs. Cancellation is not
// an error. Any other stop is returned as a *Fault.
func (r *Runner) Run(ctx context.Context) error {
	client, err := r.build(ctx, ClientConfig{GroupID: r.cfg.GroupID, Brokers: r.cfg.Brokers})
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return &Fault{Kind: KindConnect, Err: err}
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("[Kafka] Error closing client: %v", err)
		}
	}()

	if err := client.Subscribe(ctx, r.cfg.Topic); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return &Fault{Kind: KindSubscribe, Topic: r.cfg.Topic, Err: err}
	}

	log.Printf("[Kafka] Listening on topic %s as group %s", r.cfg.Topic, r.cfg.GroupID)

	for {
		if ctx.Err() != nil {
			return nil
		}

		msg, err := client.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, ErrTopicNotFound) {
				return &Fault{Kind: KindSubscribe, Topic: r.cfg.Topic, Err: err}
			}
			if errors.Is(err, ErrCorruptRecord) {
				return &Fault{Kind: KindDecode, Topic: r.cfg.Topic, Err: err}
			}
			return &Fault{Kind: KindPoll, Topic: r.cfg.Topic, Err: err}
		}

		r.print(msg)
	}
}

func (r *Runner) print(msg Message) {
	value := msg.DecodeValue()

	// The value is printed under both labels.
	fmt.Fprintf(r.out, "Topic : %s\n", msg.Position())
	fmt.Fprintf(r.out, "Message : %s\n", value)
	fmt.Fprintf(r.out, "Value : %s\n", value)
}
