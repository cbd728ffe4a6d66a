// @title Snackify API
// @version 1.0
// @description Backend API for browsing, rating and commenting on snacks from around the world

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	_ "github.com/alex-pricope/snackify/docs"

	"github.com/alex-pricope/snackify/api"
	"github.com/alex-pricope/snackify/logging"
	"github.com/spf13/viper"
)

func main() {
	// Load env
	if err := api.LoadSettings(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}
	logging.BoostrapLogger(viper.GetString("log.level"))

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
