package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Catalog  *Catalog
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Catalog struct {
	HostString string        `env:"CATALOG_SERVICE_ADDRESS"`
	Timeout    time.Duration `env:"CATALOG_TIMEOUT"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var catalog Catalog
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8081`, "HTTP server endpoint")
	flag.StringVar(&catalog.HostString, "c", `localhost:8082`, "Catalog service address")
	flag.DurationVar(&catalog.Timeout, "t", 5*time.Second, "Catalog request timeout")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&catalog)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Catalog:  &catalog,
		App:      &app,
	}

	return &config, nil
}
