package main

import (
	"log"

	"bookcatalog/internal/mockapi"
	"bookcatalog/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server := mockapi.NewServer(mockapi.SeedProducts())
	log.Printf("Mock storefront API listening on :%s", cfg.MockAPIPort)
	if err := server.Start(cfg.MockAPIPort); err != nil {
		log.Fatalf("Mock API stopped: %v", err)
	}
}
