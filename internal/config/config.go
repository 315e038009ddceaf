package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type AnalyticsConfig struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	AnalyticsDB `yaml:"analytics_db"`
	RedisCache  `yaml:"redis_cache"`
	KafkaService `yaml:"kafka-service"`
	Generator    GeneratorConfig `yaml:"generator"`
	LogConfig    `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type AnalyticsDB struct {
	Dsn            string `yaml:"dsn" env:"ANALYTICS_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

type RedisCache struct {
	Host     string `yaml:"host" env:"REDIS_HOST"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTLSec   int    `yaml:"ttl_seconds" env:"REDIS_TTL_SECONDS" env-default:"300"`
}

type KafkaService struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"suspicious-payments"`
}

// GeneratorConfig is the tunable half of generator.Params. Values here are
// policy knobs; the hard invariants (risk derivation, breach computation,
// commission identity) live in the generator itself.
type GeneratorConfig struct {
	Seed                int64   `yaml:"seed" env:"GENERATOR_SEED" env-default:"42"`
	Customers           int     `yaml:"customers" env:"GENERATOR_CUSTOMERS" env-default:"500"`
	Merchants           int     `yaml:"merchants" env:"GENERATOR_MERCHANTS" env-default:"50"`
	Payments            int     `yaml:"payments" env:"GENERATOR_PAYMENTS" env-default:"5000"`
	WindowDays          int     `yaml:"window_days" env:"GENERATOR_WINDOW_DAYS" env-default:"90"`
	SettlementCycleDays int     `yaml:"settlement_cycle_days" env:"GENERATOR_SETTLEMENT_CYCLE_DAYS" env-default:"1"`
	SLADays             int     `yaml:"sla_days" env:"GENERATOR_SLA_DAYS" env-default:"2"`
	BreachProbability   float64 `yaml:"breach_probability" env:"GENERATOR_BREACH_PROBABILITY" env-default:"0.6"`
	OutlierFraction     float64 `yaml:"outlier_fraction" env:"GENERATOR_OUTLIER_FRACTION" env-default:"0.05"`
	RiskScoreThreshold  float64 `yaml:"risk_score_threshold" env:"GENERATOR_RISK_SCORE_THRESHOLD" env-default:"70"`
	HighValueThreshold  float64 `yaml:"high_value_threshold" env:"GENERATOR_HIGH_VALUE_THRESHOLD" env-default:"10000"`
	Workers             int     `yaml:"workers" env:"GENERATOR_WORKERS" env-default:"1"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

func MustLoad() *AnalyticsConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ANALYTICS_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ANALYTICS_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg AnalyticsConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
