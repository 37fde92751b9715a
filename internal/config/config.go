package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	// Either MongoURI directly, or the username/password/cluster triple the
	// hosted deployment composes an SRV URI from.
	MongoURI      string `mapstructure:"MONGO_URI"`
	DBUsername    string `mapstructure:"DB_USERNAME"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBCluster     string `mapstructure:"DB_CLUSTER"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	StripeSecretKey   string `mapstructure:"STRIPE_SECRET_KEY"`
	ClientURL         string `mapstructure:"CLIENT_URL"`

	// Optional infrastructure. Empty values disable the corresponding
	// feature (course-list cache, payment events, receipt mail).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	AMQPURL            string `mapstructure:"AMQP_URL"`
	PaymentEventsQueue string `mapstructure:"PAYMENT_EVENTS_QUEUE"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPSender   string `mapstructure:"SMTP_SENDER"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MONGO_DATABASE", "BrainboxDB")
	viper.SetDefault("PAYMENT_EVENTS_QUEUE", "payment.recorded")
	viper.SetDefault("REDIS_DB", 0)

	for _, key := range []string{
		"PORT", "GIN_MODE",
		"MONGO_URI", "DB_USERNAME", "DB_PASSWORD", "DB_CLUSTER", "MONGO_DATABASE",
		"ACCESS_TOKEN_SECRET", "STRIPE_SECRET_KEY", "CLIENT_URL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"AMQP_URL", "PAYMENT_EVENTS_QUEUE",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_SENDER",
	} {
		_ = viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is required")
	}
	if cfg.MongoURI == "" && (cfg.DBUsername == "" || cfg.DBPassword == "" || cfg.DBCluster == "") {
		return nil, errors.New("either MONGO_URI or DB_USERNAME/DB_PASSWORD/DB_CLUSTER is required")
	}

	return &cfg, nil
}

// StoreURI returns the MongoDB connection URI, composing the SRV form from
// the credential triple when MONGO_URI is not set directly.
func (c *Config) StoreURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s.mongodb.net/?retryWrites=true&w=majority",
		c.DBUsername, c.DBPassword, c.DBCluster,
	)
}
