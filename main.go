package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/evote-api/cmd/app"
)

// @title        evote API
// @version      1.0
// @description  Organizers manage elections, their categories, candidates and voters.
// @BasePath     /
//
// @contact.name  evote maintainers
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
