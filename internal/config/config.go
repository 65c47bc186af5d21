package config

import (
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all report settings, populated from environment variables.
type Config struct {
	EasternDataPath string
	WesternDataPath string
	SheetName       string

	OutputDir   string
	ChartFormat string
	ChartWidth  float64 // inches
	ChartHeight float64 // inches

	ReportFormat    string
	PreviewAddr     string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka publication of the finished report.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

var (
	chartFormats  = []string{"png", "svg", "pdf"}
	reportFormats = []string{"text", "json"}
)

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	width, err := parsePositiveFloat("CHART_WIDTH_IN", 8)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveFloat("CHART_HEIGHT_IN", 6)
	if err != nil {
		return nil, err
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		EasternDataPath: sharedcfg.EnvOrDefault("EASTERN_DATA_PATH", "eastern_data.xlsx"),
		WesternDataPath: sharedcfg.EnvOrDefault("WESTERN_DATA_PATH", "western_data.xlsx"),
		SheetName:       os.Getenv("SHEET_NAME"),
		OutputDir:       sharedcfg.EnvOrDefault("OUTPUT_DIR", "charts"),
		ChartFormat:     strings.ToLower(sharedcfg.EnvOrDefault("CHART_FORMAT", "png")),
		ChartWidth:      width,
		ChartHeight:     height,
		ReportFormat:    strings.ToLower(sharedcfg.EnvOrDefault("REPORT_FORMAT", "text")),
		PreviewAddr:     os.Getenv("PREVIEW_ADDR"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaEnabled: kafkaEnabled,
		KafkaBrokers: brokers,
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "hurricane-reports"),
	}

	if cfg.EasternDataPath == "" {
		return nil, errors.New("EASTERN_DATA_PATH is required")
	}
	if cfg.WesternDataPath == "" {
		return nil, errors.New("WESTERN_DATA_PATH is required")
	}
	if !slices.Contains(chartFormats, cfg.ChartFormat) {
		return nil, errors.New("invalid CHART_FORMAT: must be one of png, svg, pdf")
	}
	if !slices.Contains(reportFormats, cfg.ReportFormat) {
		return nil, errors.New("invalid REPORT_FORMAT: must be text or json")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when Kafka is enabled")
	}

	return cfg, nil
}

func parsePositiveFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}
