package api

import (
	"sync"

	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	GateConfig
	LogLevel string
}

type StorageConfig struct {
	Driver               string
	PostgresURL          string
	TableNameTeams       string
	TableNameVotes       string
	TableNamePredictions string
	TableNameJudges      string
	TableNameJudgeVotes  string
}

type ServerConfig struct {
	Port          int
	Mode          string
	PublicURL     string
	SessionSecret string

	// AllowedOrigins may call the API with credentials. Set it when the pages are served from another origin.
	AllowedOrigins []string
}

// GateConfig holds the shared passphrases of the admin and judge soft gates. They are not access control.
type GateConfig struct {
	AdminToken string
	JudgeCode  string
}

const (
	DriverDynamo   = "dynamo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var settingsOnce sync.Once

func ReadConfig() *Config {
	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:               getStringOrDefault("storage.driver", DriverDynamo),
			PostgresURL:          viper.GetString("storage.postgresURL"),
			TableNameTeams:       getStringOrDefault("storage.TableNameTeams", "HackathonTeams"),
			TableNameVotes:       getStringOrDefault("storage.TableNameVotes", "HackathonVotes"),
			TableNamePredictions: getStringOrDefault("storage.TableNamePredictions", "HackathonPredictions"),
			TableNameJudges:      getStringOrDefault("storage.TableNameJudges", "HackathonJudges"),
			TableNameJudgeVotes:  getStringOrDefault("storage.TableNameJudgeVotes", "HackathonJudgeVotes"),
		},
		ServerConfig: ServerConfig{
			Port:           getIntOrDefault("server.port", 8080),
			Mode:           getStringOrDefault("server.mode", "debug"),
			PublicURL:      getStringOrDefault("server.publicURL", "http://localhost:8080"),
			SessionSecret:  getString("server.sessionSecret"),
			AllowedOrigins: getStringSliceOrDefault("server.allowedOrigins", nil),
		},
		GateConfig: GateConfig{
			AdminToken: getString("gate.adminToken"),
			JudgeCode:  getString("gate.judgeCode"),
		},
		LogLevel: getStringOrDefault("log.level", "debug"),
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
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

func getStringSliceOrDefault(name string, def []string) []string {
	if viper.IsSet(name) {
		v := viper.GetStringSlice(name)
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
