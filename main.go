package main

import (
	"log"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/config"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/routes"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration error: ", err)
	}

	db, err := storage.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app := routes.NewApp(routes.Deps{
		Config:   cfg,
		DB:       db,
		Uploader: storage.NewCloudinary(cfg.Cloudinary),
	})

	log.Println("server starting on port", cfg.ServerPort, "env:", cfg.ServerEnv)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
