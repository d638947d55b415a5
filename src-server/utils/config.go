package utils

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	port string

	discordGuildID  string
	discordAppToken string
	discordClientId string

	location *time.Location

	storeBackend      string
	sheetID           string
	googleServiceJSON string

	metricCollectionInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		discordGuildID: func() string {
			discordGuildID := os.Getenv("DISCORD_GUILD_ID")
			if discordGuildID == "" {
				slog.Error("DISCORD_GUILD_ID is not set")
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_GUILD_ID", discordGuildID)
			return discordGuildID
		}(),
		discordAppToken: func() string {
			discordAppToken := os.Getenv("DISCORD_APP_TOKEN")
			if discordAppToken == "" {
				slog.Error("DISCORD_APP_TOKEN is not set")
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_APP_TOKEN", discordAppToken[0:3]+"...")
			return discordAppToken
		}(),
		discordClientId: func() string {
			discordClientId := os.Getenv("DISCORD_CLIENT_ID")
			if discordClientId == "" {
				slog.Error("DISCORD_CLIENT_ID is not set")
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_CLIENT_ID", discordClientId)
			return discordClientId
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			if timezoneStr == "" {
				timezoneStr = "Asia/Kolkata"
				slog.Warn("TIMEZONE is not set, using default", "timezone", timezoneStr)
			}
			loc, err := time.LoadLocation(timezoneStr)
			if err != nil {
				slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		storeBackend: func() string {
			storeBackend := os.Getenv("STORE_BACKEND")
			switch storeBackend {
			case "":
				storeBackend = "sqlite"
				slog.Warn("STORE_BACKEND is not set, using local sqlite store")
			case "sqlite", "gsheets":
			default:
				slog.Error("invalid STORE_BACKEND, must be 'sqlite' or 'gsheets'", "value", storeBackend)
				os.Exit(1)
			}
			slog.Debug("env", "STORE_BACKEND", storeBackend)
			return storeBackend
		}(),
		sheetID: func() string {
			sheetID := os.Getenv("SHEET_ID")
			if sheetID == "" && os.Getenv("STORE_BACKEND") == "gsheets" {
				slog.Error("SHEET_ID is not set")
				os.Exit(1)
			}
			slog.Debug("env", "SHEET_ID", sheetID)
			return sheetID
		}(),
		googleServiceJSON: func() string {
			googleServiceJSON := os.Getenv("GOOGLE_SERVICE_JSON")
			if googleServiceJSON == "" && os.Getenv("STORE_BACKEND") == "gsheets" {
				slog.Error("GOOGLE_SERVICE_JSON is not set")
				os.Exit(1)
			}
			if googleServiceJSON != "" {
				slog.Debug("env", "GOOGLE_SERVICE_JSON", googleServiceJSON[0:3]+"...")
			}
			return googleServiceJSON
		}(),

		metricCollectionInterval: func() time.Duration {
			metricCollectionInterval := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if metricCollectionInterval == "" {
				metricCollectionInterval = "5m"
			}
			duration, err := time.ParseDuration(metricCollectionInterval)
			if err != nil {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", metricCollectionInterval, "duration", duration)
			return duration
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get DISCORD_GUILD_ID env
func (c *Config) GetDiscordGuildID() string {
	return c.discordGuildID
}

// Get DISCORD_APP_TOKEN env
func (c *Config) GetDiscordAppToken() string {
	return c.discordAppToken
}

// Get DISCORD_CLIENT_ID env
func (c *Config) GetDiscordClientId() string {
	return c.discordClientId
}

// Get TIMEZONE env, default to Asia/Kolkata
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get STORE_BACKEND env, either "sqlite" or "gsheets"
func (c *Config) GetStoreBackend() string {
	return c.storeBackend
}

// Get SHEET_ID env
func (c *Config) GetSheetID() string {
	return c.sheetID
}

// Get GOOGLE_SERVICE_JSON env, either inline JSON or a file path
func (c *Config) GetGoogleServiceJSON() string {
	return c.googleServiceJSON
}

// Get METRIC_COLLECTION_INTERVAL env, default to 5m
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}
