package main

import (
	"log"

	"recipecost-backend/internal/config"
	"recipecost-backend/internal/database"
	"recipecost-backend/internal/server"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg)

	app := server.New(cfg, db)

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
