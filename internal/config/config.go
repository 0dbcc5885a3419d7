package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":7521"),
		ReadTimeout:  getenvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getenvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  getenvDuration("IDLE_TIMEOUT", 60*time.Second),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
