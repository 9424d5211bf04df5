package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/serhatayata/Debezium-MSSQL/internal/broker"
	"github.com/serhatayata/Debezium-MSSQL/internal/config"
	"github.com/serhatayata/Debezium-MSSQL/internal/consumer"
)

func init() {
	if os.Getenv("RUNNING_IN_DOCKER") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using environment and defaults")
		}
	}
}

// Faults are printed to stdout and the process still exits 0.
func main() {
	cfg, err := config.SetupConfig()
	if err != nil {
		report(err, os.Stdout)
		return
	}

	build, err := broker.New(cfg.Client)
	if err != nil {
		report(err, os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[Kafka] Connecting to %s using %s client", cfg.Consumer.Brokers, cfg.Client)
	report(run(ctx, cfg.Consumer, build, os.Stdout), os.Stdout)
}

func run(ctx context.Context, cfg consumer.Config, build consumer.Builder, out io.Writer) error {
	if err := consumer.NewRunner(cfg, build, out).Run(ctx); err != nil {
		return err
	}
	log.Println("Context canceled, shutting down gracefully")
	return nil
}

// report writes err as a single line to out. A nil err writes nothing.
func report(err error, out io.Writer) {
	if err == nil {
		return
	}
	if kind, ok := consumer.KindOf(err); ok {
		log.Printf("[Kafka] Consumer stopped on %s fault", kind)
	}
	fmt.Fprintln(out, err.Error())
}
