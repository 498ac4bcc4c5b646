package config

// FeedConfig describes the tabular trip feed.
type FeedConfig struct {
	// CSVPath is an HTTP(S) URL (published spreadsheet) or a local file path.
	CSVPath string `yaml:"csvPath" validate:"required"`
	// RenameColumns maps source header names to the canonical column names
	// before rows are decoded, e.g. "Primera parada" -> "Parada1".
	RenameColumns map[string]string `yaml:"renameColumns"`
	TimeoutMS     int               `yaml:"timeoutMS" validate:"gte=0"`
}

// NominatimConfig configures the geocoding provider.
type NominatimConfig struct {
	BaseURL      string  `yaml:"baseURL" validate:"required,url"`
	CountryCodes string  `yaml:"countryCodes"`
	UserAgent    string  `yaml:"userAgent" validate:"required"`
	SleepSeconds float64 `yaml:"sleepSeconds" validate:"gte=0"`
	TimeoutMS    int     `yaml:"timeoutMS" validate:"gte=0"`
}

// OSRMConfig configures the routing provider.
type OSRMConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// OutputConfig names the files a run produces and the repo they live in.
type OutputConfig struct {
	GeoJSONPath string `yaml:"geojsonPath"`
	CachePath   string `yaml:"cachePath"`
	LogPath     string `yaml:"logPath"`
	RepoPath    string `yaml:"repoPath"`
	// Timezone governs "today"/"now" for the vigency check and commit dates.
	Timezone string `yaml:"timezone"`
}

// PublishConfig controls the git publish step.
type PublishConfig struct {
	Enabled bool   `yaml:"enabled"`
	Remote  string `yaml:"remote"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Feed      FeedConfig      `yaml:"feed" validate:"required"`
	Nominatim NominatimConfig `yaml:"nominatim" validate:"required"`
	OSRM      OSRMConfig      `yaml:"osrm" validate:"required"`
	Output    OutputConfig    `yaml:"output"`
	Publish   PublishConfig   `yaml:"publish"`
}
