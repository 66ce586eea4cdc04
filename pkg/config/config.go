package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var once sync.Once

// loadEnvFile applies the optional .env file to the process environment once.
func loadEnvFile() {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
	})
}

type ServerConfig struct {
	APIAddress       string `env:"API_ADDRESS"          envDefault:":8080"`
	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS"  envDefault:"127.0.0.1:5432"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB"`
	JWTSecret        string `env:"JWT_SECRET,required,notEmpty"`
	ProtocolTimezone string `env:"PROTOCOL_TIMEZONE"    envDefault:"Local"`
	MigrateOnStart   bool   `env:"MIGRATE_ON_START"`
	MigrationsDir    string `env:"MIGRATIONS_DIR"       envDefault:"./migrations"`
}

// Location resolves PROTOCOL_TIMEZONE. Protocol days and calendar dates are taken in it.
func (sc *ServerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(sc.ProtocolTimezone)
	if err != nil {
		return nil, fmt.Errorf("parse PROTOCOL_TIMEZONE: %w", err)
	}
	return loc, nil
}

type ClientConfig struct {
	APIURL   string        `env:"REHAB_API_URL"   envDefault:"http://127.0.0.1:8080/api/v1"`
	Token    string        `env:"REHAB_TOKEN"`
	PlayerID string        `env:"REHAB_PLAYER_ID"`
	DataDir  string        `env:"REHAB_DATA_DIR"`
	Timeout  time.Duration `env:"REHAB_TIMEOUT"   envDefault:"10s"`
}

func LoadServer() (*ServerConfig, error) {
	loadEnvFile()
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	loadEnvFile()
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}
	return &cfg, nil
}

// defaultDataDir follows XDG_DATA_HOME, falling back to ~/.local/share.
func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "rehab"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "rehab"), nil
}
