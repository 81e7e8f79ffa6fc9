package main

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"bookcatalog/internal/adapter/backend"
	"bookcatalog/internal/adapter/tui"
	"bookcatalog/internal/infrastructure/session"
	"bookcatalog/internal/usecase"
	"bookcatalog/pkg/config"
	"bookcatalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer logger.Sync()

	sessionStore, err := session.NewFileStore(filepath.Join(cfg.StateDir, "session.json"))
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	client := backend.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	catalogUseCase := usecase.NewCatalogUseCase(client, client)
	resumeUseCase := usecase.NewCheckoutResumeUseCase(client, client, sessionStore, nil)

	program := tea.NewProgram(
		tui.NewModel(catalogUseCase, resumeUseCase),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		log.Fatalf("Failed to run catalog view: %v", err)
	}
}
