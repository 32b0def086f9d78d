package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort string
	Env     string

	MySQLHost   string
	MySQLPort   string
	MySQLDB     string
	MySQLUser   string
	MySQLPass   string
	AutoMigrate bool

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs int

	LogLevel  string
	LogFormat string

	SchedulerSpec  string
	SchedulerBatch int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")

	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "repayment")
	v.SetDefault("MYSQL_USER", "repayment")
	v.SetDefault("MYSQL_PASS", "repayment")
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PASS", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	// every day at 01:00
	v.SetDefault("SCHEDULER_SPEC", "0 1 * * *")
	v.SetDefault("SCHEDULER_BATCH", 500)
}

// Load reads the optional env files (".env" when none are given) into the
// process environment and resolves every key from it, falling back to
// defaults. Variables already set in the environment win over the files.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		AppPort: v.GetString("APP_PORT"),
		Env:     v.GetString("ENV"),

		MySQLHost:   v.GetString("MYSQL_HOST"),
		MySQLPort:   v.GetString("MYSQL_PORT"),
		MySQLDB:     v.GetString("MYSQL_DB"),
		MySQLUser:   v.GetString("MYSQL_USER"),
		MySQLPass:   v.GetString("MYSQL_PASS"),
		AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),

		RedisAddr: v.GetString("REDIS_ADDR"),
		RedisPass: v.GetString("REDIS_PASS"),
		RedisDB:   v.GetInt("REDIS_DB"),

		IdempTTLSecs: v.GetInt("IDEMPOTENCY_TTL_SECONDS"),

		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),

		SchedulerSpec:  v.GetString("SCHEDULER_SPEC"),
		SchedulerBatch: v.GetInt("SCHEDULER_BATCH"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be > 0, got %d", c.IdempTTLSecs)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q (text|json)", c.LogFormat)
	}
	if c.SchedulerBatch < 0 {
		return fmt.Errorf("SCHEDULER_BATCH must be >= 0, got %d", c.SchedulerBatch)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime is needed for DATETIME columns; loc=UTC keeps due dates on the calendar day they were written
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
