package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Booking   BookingConfig   `yaml:"booking"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type AppConfig struct {
	Env         string `yaml:"env"`
	ServiceName string `yaml:"service_name"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
	Swagger bool   `yaml:"swagger"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"ssl_mode"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// MigrationURL renders the database location in URL form for golang-migrate.
func (d DatabaseConfig) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	FlightsCacheTTL int `yaml:"flights_cache_ttl_seconds"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// LoadConfig reads the YAML file at path. A .env file in the working
// directory, when present, is loaded first so that its variables can
// override secrets from the file.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("APP_ENV"); ok && v != "" {
		c.App.Env = v
	}
	if v, ok := os.LookupEnv("DATABASE_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv("FLIGHTS_CACHE_TTL_SECONDS"); ok && v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("conversion failed env: FLIGHTS_CACHE_TTL_SECONDS: %w", err)
		}
		c.Booking.FlightsCacheTTL = ttl
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.ServiceName == "" {
		c.App.ServiceName = "travelapp"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Address == "" {
		errs = append(errs, errors.New("missing http.address"))
	}
	if c.GRPC.Address == "" {
		errs = append(errs, errors.New("missing grpc.address"))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("missing database.host"))
	}
	if c.Database.Name == "" {
		errs = append(errs, errors.New("missing database.name"))
	}
	if c.Booking.FlightsCacheTTL < 0 {
		errs = append(errs, errors.New("booking.flights_cache_ttl_seconds cannot be negative"))
	}
	return errors.Join(errs...)
}
