// Package broker provides consumer.Builder implementations backed by real
// Kafka client libraries.
package broker

import (
	"fmt"
	"strings"

	"github.com/serhatayata/Debezium-MSSQL/internal/consumer"
)

const DefaultClient = "franz"

var builders = map[string]consumer.Builder{
	"franz":     Franz,
	"segmentio": Segmentio,
}

// New returns the builder registered under name. An empty name selects
// DefaultClient.
func New(name string) (consumer.Builder, error) {
	if name == "" {
		name = DefaultClient
	}
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown kafka client %q (want franz or segmentio)", name)
	}
	return build, nil
}

// SplitBrokers turns a comma separated bootstrap list into seed addresses,
// dropping blanks.
func SplitBrokers(brokers string) []string {
	var seeds []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			seeds = append(seeds, b)
		}
	}
	return seeds
}
