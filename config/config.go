package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	HttpClient    HttpClientConfig
	Paystack      PaystackConfig
	MessageStream MessageStreamConfig
	Scheduler     SchedulerConfig
	Auth          AuthConfig
	Cron          CronConfig
	Mail          MailConfig
	Pricing       PricingConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"HTTP_SERVER_PORT" default:"8000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DATABASE_HOST" default:"localhost"`
	Port         string `envconfig:"DATABASE_PORT" default:"5432"`
	User         string `envconfig:"DATABASE_USER" default:"postgres"`
	Password     string `envconfig:"DATABASE_PASSWORD"`
	Name         string `envconfig:"DATABASE_NAME" default:"postgres"`
	SSLMode      string `envconfig:"DATABASE_SSL_MODE" default:"require"`
	MaxOpenConns int    `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns int    `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type HttpClientConfig struct {
	// Type is one of threshold, consecutive or rate.
	Type       string        `envconfig:"HTTP_CLIENT_TYPE" default:"consecutive"`
	Threshold  int64         `envconfig:"HTTP_CLIENT_THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"HTTP_CLIENT_RATE" default:"0.5"`
	MinSamples int64         `envconfig:"HTTP_CLIENT_MIN_SAMPLES" default:"10"`
	Timeout    time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"15s"`
}

type PaystackConfig struct {
	BaseURL     string `envconfig:"PAYSTACK_BASE_URL" default:"https://api.paystack.co"`
	SecretKey   string `envconfig:"PAYSTACK_SECRET_KEY"`
	CallbackURL string `envconfig:"PAYSTACK_CALLBACK_URL"`
	Currency    string `envconfig:"PAYSTACK_CURRENCY" default:"NGN"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"MESSAGE_STREAM_HOST" default:"localhost"`
	Port     string `envconfig:"MESSAGE_STREAM_PORT" default:"5672"`
	Username string `envconfig:"MESSAGE_STREAM_USERNAME" default:"guest"`
	Password string `envconfig:"MESSAGE_STREAM_PASSWORD" default:"guest"`
}

type SchedulerConfig struct {
	PayoutCronSpec string `envconfig:"SCHEDULER_PAYOUT_CRON" default:"@every 1h"`
	MonitoringPort string `envconfig:"SCHEDULER_MONITORING_PORT" default:"8080"`
	Concurrency    int    `envconfig:"SCHEDULER_CONCURRENCY" default:"10"`
}

type AuthConfig struct {
	JWTSecret   string   `envconfig:"SUPABASE_JWT_SECRET"`
	RefundRoles []string `envconfig:"AUTH_REFUND_ROLES" default:"service_role,admin"`
}

type CronConfig struct {
	Secret       string        `envconfig:"CRON_SECRET"`
	PayoutMinAge time.Duration `envconfig:"CRON_PAYOUT_MIN_AGE" default:"72h"`
}

type MailConfig struct {
	Host     string `envconfig:"MAIL_HOST"`
	Port     int    `envconfig:"MAIL_PORT" default:"587"`
	Username string `envconfig:"MAIL_USERNAME"`
	Password string `envconfig:"MAIL_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"tickets@localhost"`
}

type PricingConfig struct {
	PlatformFeePercent float64 `envconfig:"PRICING_PLATFORM_FEE_PERCENT" default:"3"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}
