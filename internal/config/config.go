package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Generation defaults; per-run requests may override them.
	GenSeed            int64
	GenCustomers       int
	GenLoans           int
	GenTransactions    int
	GenTargetFraudRate float64
	GenAsOf            time.Time
	ExportDir          string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		GenSeed:            42,
		GenTargetFraudRate: 0.03,
		ExportDir:          getenv("EXPORT_DIR", "data/exports"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "creditflow360"),
		MySQLUser: getenv("MYSQL_USER", "creditflow"),
		MySQLPass: getenv("MYSQL_PASS", "creditflow"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("GEN_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.GenSeed = n
		}
	}
	if v := os.Getenv("GEN_CUSTOMERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.GenCustomers = n
		}
	}
	if v := os.Getenv("GEN_LOANS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.GenLoans = n
		}
	}
	if v := os.Getenv("GEN_TRANSACTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.GenTransactions = n
		}
	}
	if v := os.Getenv("GEN_TARGET_FRAUD_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.GenTargetFraudRate = f
		}
	}
	if v := os.Getenv("GEN_AS_OF"); v != "" {
		if ts, err := time.Parse("2006-01-02", v); err == nil {
			c.GenAsOf = ts.UTC()
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.GenTargetFraudRate < 0 || c.GenTargetFraudRate > 1 {
		return fmt.Errorf("GEN_TARGET_FRAUD_RATE %v outside [0,1]", c.GenTargetFraudRate)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
