package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"           envDefault:"localhost:8080"`
	Token          string        `env:"QIWI_TOKEN"`
	Number         string        `env:"QIWI_NUMBER"`
	APIAddress     string        `env:"QIWI_API_ADDRESS"      envDefault:"edge.qiwi.com"`
	ConnectTimeout time.Duration `env:"QIWI_CONNECT_TIMEOUT"  envDefault:"3500ms"`
	ReadTimeout    time.Duration `env:"QIWI_READ_TIMEOUT"     envDefault:"9999s"`
	Advertising    bool          `env:"QIWI_ADVERTISING"      envDefault:"false"`
	Database       string        `env:"DATABASE_URI"`
	SyncInterval   time.Duration `env:"SYNC_INTERVAL"         envDefault:"1m"`
	SyncRows       int           `env:"SYNC_ROWS"             envDefault:"50"`
	JWTSecret      string        `env:"JWT_SECRET"            envDefault:"change-me"`
	PasswordHash   string        `env:"GATEWAY_PASSWORD_HASH"`
	LogLvl         string        `env:"LOG_LVL"               envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"            envDefault:"console"`
}

// New reads the configuration from an optional .env file, the environment
// and the command line, later sources taking precedence.
func New() *Config {
	cfg := &Config{}

	_ = godotenv.Load()
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Token, "t", cfg.Token, "qiwi api token")
	flag.StringVar(&cfg.Number, "n", cfg.Number, "qiwi wallet number")
	flag.StringVar(&cfg.APIAddress, "r", cfg.APIAddress, "qiwi api address")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, history archive is disabled when empty")
	flag.DurationVar(&cfg.SyncInterval, "i", cfg.SyncInterval, "history sync interval")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.APIAddress, "http://") && !strings.HasPrefix(cfg.APIAddress, "https://") {
		cfg.APIAddress = "https://" + cfg.APIAddress
	}

	return cfg
}
