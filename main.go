package main

import (
	"log"

	"elearn/config"
	"elearn/database"
	"elearn/routers"
	"elearn/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	app := routers.NewApp(db, config.AppConfig)

	sweeper := utils.StartUploadSweeper(db, config.AppConfig.UploadDir)
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
