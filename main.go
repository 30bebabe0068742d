package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/eventhub/cmd/app"
)

// @title           EventHub local API
// @version         1.0
// @description     Local bridge between the desktop shell and the ticketing core.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Id of the calling user
func main() {
	if err := app.Start(os.Args[1:]); err != nil {
		panic(err)
	}
}
