package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"

	"distress-intel/client-go/internal/client"
	"distress-intel/client-go/internal/config"
	"distress-intel/client-go/internal/models"
	"distress-intel/client-go/internal/snapshot"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env", ".env.local")

	kindFlag := flag.String("kind", "all", "data kind to fetch: dashboard, analytics, insights or all")
	cached := flag.Bool("cached", false, "print the last stored snapshot instead of fetching")
	force := flag.Bool("force", false, "bypass the freshness window")
	flag.Parse()

	cfg := config.Load()
	logger := log.Logger{
		Level:  log.ParseLevel(cfg.LogLevel),
		Writer: &log.ConsoleWriter{},
	}

	kinds, err := selectKinds(*kindFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctl := client.New(cfg, client.StaticToken(cfg.AuthToken), snapshot.New(cfg), logger)
	defer ctl.Dispose()

	ctx := context.Background()
	exit := 0
	for _, kind := range kinds {
		res, err := resolve(ctx, ctl, kind, *cached, *force)
		if err != nil {
			logger.Error().Str("kind", string(kind)).Err(err).Msg("fetch failed")
			exit = 1
		}
		if res == nil {
			logger.Warn().Str("kind", string(kind)).Msg("no data available")
			continue
		}
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			logger.Error().Str("kind", string(kind)).Err(err).Msg("encode failed")
			exit = 1
			continue
		}
		fmt.Printf("%s\n", b)
	}
	return exit
}

func selectKinds(name string) ([]models.Kind, error) {
	if name == "all" {
		return models.Kinds(), nil
	}
	kind := models.Kind(name)
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown kind %q (want dashboard, analytics, insights or all)", name)
	}
	return []models.Kind{kind}, nil
}

func resolve(ctx context.Context, ctl *client.Controller, kind models.Kind, cached bool, force bool) (models.Result, error) {
	if cached {
		res, ok := ctl.LastSnapshot(ctx, kind)
		if !ok {
			return nil, nil
		}
		return res, nil
	}
	return ctl.Fetch(ctx, kind, force)
}
