package main

import (
	"log"

	"github.com/jacobaustin123/othello/internal"
	"github.com/jacobaustin123/othello/internal/config"
)

func main() {
	// Setup logging
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
