// @title Hackathon Voting API
// @version 1.0
// @description Backend API for attendee votes, top 3 predictions and judge scoring

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	"strings"

	_ "github.com/alex-pricope/hackathon-voting/docs"

	"github.com/alex-pricope/hackathon-voting/api"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil {
		logging.Log.Debugf("no .env file loaded: %v", err)
	}

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
