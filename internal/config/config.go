package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"database.db"`
	Redis             Redis    `yaml:"redis"`
	Recorder          Recorder `yaml:"recorder"`
	Game              Game     `yaml:"game"`
	History           History  `yaml:"history"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// Recorder tunes the background queue that persists match results and sessions.
type Recorder struct {
	QueueSize    int           `yaml:"queue-size" env-default:"256"`
	Workers      int           `yaml:"workers" env-default:"2"`
	WriteTimeout time.Duration `yaml:"write-timeout" env-default:"5s"`
}

type Game struct {
	MinBoardSize     int `yaml:"min-board-size" env-default:"3"`
	MaxBoardSize     int `yaml:"max-board-size" env-default:"10"`
	DefaultBoardSize int `yaml:"default-board-size" env-default:"3"`
}

type History struct {
	DefaultLimit int `yaml:"default-limit" env-default:"100"`
	MaxLimit     int `yaml:"max-limit" env-default:"500"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
