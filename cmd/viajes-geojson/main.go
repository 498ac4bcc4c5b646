package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	viajes "github.com/Mammogram7685/maps"
	"github.com/Mammogram7685/maps/config"
	"github.com/Mammogram7685/maps/feed"
	"github.com/Mammogram7685/maps/nominatim"
	"github.com/Mammogram7685/maps/osrm"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML configuration")
	csvPath := flag.String("csv", "", "feed CSV URL or path (overrides config)")
	noPublish := flag.Bool("no-publish", false, "skip the git commit/push step")
	flag.Parse()

	// Secrets such as the published-sheet URL may live in a .env file.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("config: %v", err)
	}
	if v := os.Getenv("VIAJES_CSV_URL"); v != "" {
		cfg.Feed.CSVPath = v
	}
	if *csvPath != "" {
		cfg.Feed.CSVPath = *csvPath
	}

	loc, err := time.LoadLocation(cfg.Output.Timezone)
	if err != nil {
		fatal("timezone %q: %v", cfg.Output.Timezone, err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	logger, closeLogger, err := viajes.NewRunLogger(repoFile(cfg, cfg.Output.LogPath))
	if err != nil {
		fatal("log: %v", err)
	}
	defer closeLogger()

	// Cache corruption aborts before any external call is made.
	cache, err := viajes.LoadCache(repoFile(cfg, cfg.Output.CachePath))
	if err != nil {
		logger.Error("Cache de geocodificacion ilegible", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}

	reader := feed.NewReader(cfg.Feed.CSVPath, cfg.Feed.RenameColumns, msec(cfg.Feed.TimeoutMS))
	rows, err := reader.Read()
	if err != nil {
		logger.Error("No se pudo leer el feed", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}

	geocoder := viajes.NewGeocoder(
		nominatim.NewClient(cfg.Nominatim.BaseURL, cfg.Nominatim.CountryCodes, cfg.Nominatim.UserAgent, msec(cfg.Nominatim.TimeoutMS)),
		cache,
		time.Duration(cfg.Nominatim.SleepSeconds*float64(time.Second)),
		logger,
	)
	router := viajes.NewRouteResolver(osrm.NewClient(cfg.OSRM.BaseURL, msec(cfg.OSRM.TimeoutMS)), logger)
	pipeline := viajes.NewPipeline(viajes.NewValidator(now), geocoder, router, logger)

	result := pipeline.Run(rows)

	publisher := viajes.NewPublisher(cfg.Output.RepoPath, cfg.Publish.Remote, now, logger)
	if err := publisher.WriteGeoJSON(repoFile(cfg, cfg.Output.GeoJSONPath), result.Features); err != nil {
		logger.Error("No se pudo escribir el geojson", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}
	if err := cache.Save(); err != nil {
		logger.Error("No se pudo guardar la cache", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}

	if cfg.Publish.Enabled && !*noPublish {
		if err := publisher.Publish(cfg.Output.GeoJSONPath, cfg.Output.CachePath, cfg.Output.LogPath); err != nil {
			logger.Error("Fallo al publicar", zap.Error(err))
			closeLogger()
			os.Exit(1)
		}
	}
}

// repoFile resolves an output file relative to the working repo.
func repoFile(cfg *config.AppConfig, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Output.RepoPath, name)
}

func msec(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
