package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"root"`
	DBPass     string `env:"DB_PASS" envDefault:"root"`
	DBName     string `env:"DB_NAME" envDefault:"framevault"`
	DBNameTest string `env:"DB_NAME_TEST" envDefault:"framevault_test"`

	SecretKey                string `env:"SECRET_KEY" envDefault:"l=ax+b"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	MinioServerURL string `env:"MINIO_SERVER_URL" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// TokenTTL returns the access token lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

var AppConfig Config

// InitConfig loads configuration from the environment, reading a .env file
// first when one exists.
func InitConfig() {
	_ = godotenv.Load()
	if err := env.Parse(&AppConfig); err != nil {
		logrus.Fatal("parse config: ", err)
	}
}
