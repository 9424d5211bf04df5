package config

import (
	"fmt"
	"strings"

	"github.com/serhatayata/Debezium-MSSQL/internal/broker"
	"github.com/serhatayata/Debezium-MSSQL/internal/consumer"
	"github.com/serhatayata/Debezium-MSSQL/internal/env"
)

const (
	DefaultBroker = "localhost:9092"
	// The connector's topic name doubles as the consumer group id.
	DefaultGroupID = "topicprefix.DebeziumTestDB.debezium.products"
	DefaultTopic   = "topicprefix.DebeziumTestDB.debezium.products"
)

type Config struct {
	Consumer consumer.Config
	Client   string
}

func SetupConfig() (*Config, error) {
	cfg := &Config{
		Consumer: consumer.Config{
			Brokers: strings.TrimSpace(env.GetEnvString("KAFKA_URL", DefaultBroker)),
			GroupID: strings.TrimSpace(env.GetEnvString("KAFKA_CONSUMER_GROUP", DefaultGroupID)),
			Topic:   strings.TrimSpace(env.GetEnvString("KAFKA_TOPIC", DefaultTopic)),
		},
		Client: strings.TrimSpace(env.GetEnvString("KAFKA_CLIENT", broker.DefaultClient)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Error configuring the app: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(broker.SplitBrokers(c.Consumer.Brokers)) == 0 {
		return fmt.Errorf("KAFKA_URL must name at least one broker")
	}
	if c.Consumer.GroupID == "" {
		return fmt.Errorf("KAFKA_CONSUMER_GROUP must not be empty")
	}
	if c.Consumer.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC must not be empty")
	}
	if _, err := broker.New(c.Client); err != nil {
		return err
	}
	return nil
}
