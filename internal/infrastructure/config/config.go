package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrBankURLRequired = errors.New("bank url must be provided")
	ErrInvalidQRSize   = errors.New("receipt QR size must be positive")
)

type Config struct {
	HTTPAddr      string        `mapstructure:"http_addr"`
	GRPCAddr      string        `mapstructure:"grpc_addr"`
	BankURL       string        `mapstructure:"bank_url"`
	BankTimeout   time.Duration `mapstructure:"bank_timeout"`
	ServiceName   string        `mapstructure:"service_name"`
	Env           string        `mapstructure:"env"`
	LogLevel      string        `mapstructure:"log_level"`
	ReceiptQRSize int           `mapstructure:"receipt_qr_size"`
}

// Load reads defaults, then an optional YAML file named by CONFIG_FILE, then environment
// variables (HTTP_ADDR, BANK_URL, ...), and validates the result.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":5000")
	v.SetDefault("grpc_addr", ":50051")
	v.SetDefault("bank_url", "http://localhost:8080")
	v.SetDefault("bank_timeout", 10*time.Second)
	v.SetDefault("service_name", "payment-gateway")
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("receipt_qr_size", 256)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.BankURL) == "" {
		return ErrBankURLRequired
	}
	u, err := url.Parse(c.BankURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid bank url %q: %w", c.BankURL, ErrBankURLRequired)
	}
	if c.ReceiptQRSize <= 0 {
		return ErrInvalidQRSize
	}
	return nil
}
