// Command s3-list-buckets lists the S3 buckets owned by the configured
// account, as a working example of the signing core.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ochsenreither/go-sigv4/s3"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}

	client, err := s3.New(s3.Config{
		Region:      cfg.Region,
		Credentials: cfg.credentials(),
		Endpoint:    cfg.Endpoint,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("failed to create S3 client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := client.ListBuckets(ctx)
	if err != nil {
		logger.Fatal("ListBuckets failed", zap.Error(err))
	}

	fmt.Printf("Found %d buckets:\n", len(result.Buckets))
	for _, b := range result.Buckets {
		fmt.Printf("- %s (Created: %s)\n", b.Name, b.CreationDate.Format(time.RFC3339))
	}
	if result.Owner.DisplayName != "" || result.Owner.ID != "" {
		fmt.Printf("Owner: %s (ID: %s)\n", result.Owner.DisplayName, result.Owner.ID)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
