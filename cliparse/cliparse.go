package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	DeathsTable       string
	VaccinationsTable string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("covid-trends", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Source relation names; the only domain configuration the engine takes
	fs.StringVar(&cfg.DeathsTable, "deaths-table", "", "Case/death relation name")
	fs.StringVar(&cfg.VaccinationsTable, "vaccinations-table", "", "Vaccination relation name")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DeathsTable == "" {
		cfg.DeathsTable = os.Getenv("DEATHS_TABLE")
		if cfg.DeathsTable == "" {
			cfg.DeathsTable = "covid_deaths"
		}
	}
	if cfg.VaccinationsTable == "" {
		cfg.VaccinationsTable = os.Getenv("VACCINATIONS_TABLE")
		if cfg.VaccinationsTable == "" {
			cfg.VaccinationsTable = "covid_vaccinations"
		}
	}

	// Relation names are interpolated into SQL text, so they must be plain
	// identifiers
	for _, name := range []string{cfg.DeathsTable, cfg.VaccinationsTable} {
		if !validIdentifier(name) {
			return Config{}, fmt.Errorf("invalid relation name %q", name)
		}
	}

	return cfg, nil
}

// DriverName maps the configured database type to a database/sql driver name
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
