package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the application configuration from the given
// YAML file, applying defaults for optional fields.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org/search"
	}
	if cfg.Nominatim.SleepSeconds == 0 {
		cfg.Nominatim.SleepSeconds = 1.0
	}
	if cfg.Nominatim.TimeoutMS == 0 {
		cfg.Nominatim.TimeoutMS = 20000
	}
	if cfg.OSRM.BaseURL == "" {
		cfg.OSRM.BaseURL = "https://router.project-osrm.org/route/v1/driving"
	}
	if cfg.OSRM.TimeoutMS == 0 {
		cfg.OSRM.TimeoutMS = 20000
	}
	if cfg.Feed.TimeoutMS == 0 {
		cfg.Feed.TimeoutMS = 30000
	}
	if cfg.Output.GeoJSONPath == "" {
		cfg.Output.GeoJSONPath = "viajes.geojson"
	}
	if cfg.Output.CachePath == "" {
		cfg.Output.CachePath = "geocache.json"
	}
	if cfg.Output.LogPath == "" {
		cfg.Output.LogPath = "generacion.log"
	}
	if cfg.Output.RepoPath == "" {
		cfg.Output.RepoPath = "."
	}
	if cfg.Output.Timezone == "" {
		cfg.Output.Timezone = "Europe/Madrid"
	}
	if cfg.Publish.Remote == "" {
		cfg.Publish.Remote = "origin"
	}
}
