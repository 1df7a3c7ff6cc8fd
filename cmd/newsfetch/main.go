package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/c-leri/newsapi/internal/config"
	"github.com/c-leri/newsapi/internal/logger"
	"github.com/c-leri/newsapi/pkg/httpclient"
	"github.com/c-leri/newsapi/pkg/newsapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "newsfetch failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	endpoint, err := newsapi.ParseEndpoint(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}
	country, err := newsapi.ParseCountry(cfg.Country)
	if err != nil {
		return fmt.Errorf("parse country: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := newsapi.New(cfg.APIKey,
		newsapi.WithHTTPClient(httpclient.NewRestyClient(cfg.Timeout)),
		newsapi.WithLogger(log),
	)
	client.SetEndpoint(endpoint).SetCountry(country)

	resp, err := client.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch headlines: %w", err)
	}

	log.Infow("fetched headlines", "endpoint", cfg.Endpoint, "country", cfg.Country, "count", len(resp.Articles()))

	for _, article := range resp.Articles() {
		fmt.Println(article.Title())
		if desc, ok := article.Description(); ok {
			fmt.Println("  " + desc)
		}
		fmt.Println("  " + article.URL())
		fmt.Println()
	}

	return nil
}
