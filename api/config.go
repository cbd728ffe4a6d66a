package api

import (
	"strings"
	"sync"

	"github.com/alex-pricope/snackify/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverDynamo   = "dynamo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	StorageConfig
	ServerConfig
	AuthConfig
}

type StorageConfig struct {
	Driver            string
	DSN               string
	Migrate           bool
	TableNameSnacks   string
	TableNameRatings  string
	TableNameComments string
	TableNameProfiles string
}

type ServerConfig struct {
	Port               int
	Env                string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

type AuthConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string
}

var settingsOnce sync.Once

// LoadSettings reads an optional .env file and config.yaml into viper.
// Environment variables win; storage.dsn is read from STORAGE_DSN.
func LoadSettings(paths ...string) error {
	if err := godotenv.Load(); err != nil {
		logging.Log.Debugf("no .env file loaded: %v", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.env", "local")
	viper.SetDefault("server.rateLimit.perSecond", 0)
	viper.SetDefault("server.rateLimit.burst", 5)
	viper.SetDefault("storage.driver", DriverDynamo)
	viper.SetDefault("storage.migrate", true)
	viper.SetDefault("log.level", "debug")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logging.Log.Warn("No config file found, using defaults and environment")
			return nil
		}
		return err
	}
	return nil
}

func ReadConfig() *Config {
	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:            strings.ToLower(getStringOrDefault("storage.driver", DriverDynamo)),
			DSN:               getStringOrDefault("storage.dsn", ""),
			Migrate:           getBoolOrDefault("storage.migrate", true),
			TableNameSnacks:   getStringOrDefault("storage.TableNameSnacks", "Snacks"),
			TableNameRatings:  getStringOrDefault("storage.TableNameRatings", "SnackRatings"),
			TableNameComments: getStringOrDefault("storage.TableNameComments", "SnackComments"),
			TableNameProfiles: getStringOrDefault("storage.TableNameProfiles", "Profiles"),
		},
		ServerConfig: ServerConfig{
			Port:               getIntOrDefault("server.port", 4000),
			Env:                getStringOrDefault("server.env", "local"),
			RateLimitPerSecond: viper.GetFloat64("server.rateLimit.perSecond"),
			RateLimitBurst:     getIntOrDefault("server.rateLimit.burst", 5),
		},
		AuthConfig: AuthConfig{
			URL:       getStringOrDefault("auth.url", ""),
			AnonKey:   getStringOrDefault("auth.anonKey", ""),
			JWTSecret: getStringOrDefault("auth.jwtSecret", ""),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
