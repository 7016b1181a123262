package main

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/tools"
)

func main() {
	config.Init()
	log := logger.New("Seed")

	database.Init()
	defer func() {
		if err := database.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	log.Info("Clearing db...", "uri", config.Get().Database.URI)
	n, err := database.Seed(database.DB)
	tools.PanicOnErr(err)
	log.Info("Seeding done!", "signups", n)
}
