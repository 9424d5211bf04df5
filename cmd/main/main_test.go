package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/serhatayata/Debezium-MSSQL/internal/consumer"
)

type failingClient struct {
	values []string
	polls  int
	closed int
	err    error
}

func (c *failingClient) Subscribe(context.Context, string) error { return nil }

func (c *failingClient) Poll(context.Context) (consumer.Message, error) {
	c.polls++
	if len(c.values) == 0 {
		return consumer.Message{}, c.err
	}
	v := c.values[0]
	c.values = c.values[1:]
	return consumer.Message{Topic: "products", Offset: int64(c.polls - 1), Value: []byte(v)}, nil
}

func (c *failingClient) Close() error {
	c.closed++
	return nil
}

func TestRunReportsFaultAsSingleLine(t *testing.T) {
	for _, k := range []int{1, 3} {
		t.Run(fmt.Sprintf("fault on poll %d", k), func(t *testing.T) {
			client := &failingClient{err: errors.New("broker went away")}
			for i := 0; i < k-1; i++ {
				client.values = append(client.values, fmt.Sprintf(`{"op":"c","id":%d}`, i))
			}
			build := func(context.Context, consumer.ClientConfig) (consumer.Client, error) { return client, nil }

			var out bytes.Buffer
			err := run(context.Background(), consumer.Config{GroupID: "g", Brokers: "localhost:9092", Topic: "products"}, build, &out)
			require.Error(t, err)
			report(err, &out)

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Len(t, lines, 3*(k-1)+1)
			require.Equal(t, err.Error(), lines[len(lines)-1])
			require.Contains(t, lines[len(lines)-1], "broker went away")
			require.Equal(t, k, client.polls)
			require.Equal(t, 1, client.closed)
		})
	}
}

func TestRunReportsConnectFault(t *testing.T) {
	build := func(context.Context, consumer.ClientConfig) (consumer.Client, error) {
		return nil, errors.New("connection refused")
	}

	var out bytes.Buffer
	report(run(context.Background(), consumer.Config{Topic: "products"}, build, &out), &out)

	require.Equal(t, "connect failed: connection refused\n", out.String())
}

func TestReportIgnoresNil(t *testing.T) {
	var out bytes.Buffer
	report(nil, &out)
	require.Empty(t, out.String())
}
