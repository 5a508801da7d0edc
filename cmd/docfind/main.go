package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"docfind/internal/config"
	"docfind/internal/eventbus"
	"docfind/internal/history"
	"docfind/internal/search"
	"docfind/internal/ui"
	"docfind/internal/ui/controller"
)

func main() {
	_ = godotenv.Load()

	// Set up logging
	logFile, err := os.OpenFile("docfind.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration from the default location
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client, err := search.NewClient(cfg.Endpoint, search.Credentials{
		CustomerID: cfg.CustomerID,
		CorpusID:   cfg.CorpusID,
		APIKey:     cfg.APIKey,
	}, cfg.NumResults)
	if err != nil {
		fmt.Printf("Cannot start: %v\n", err)
		os.Exit(1)
	}

	kv, err := history.NewFileKV(history.DefaultDir())
	if err != nil {
		log.Printf("History persistence unavailable: %v", err)
		kv = history.NewMemKV()
	}
	ns := history.Namespace(cfg.CustomerID, cfg.CorpusID, cfg.APIKey)
	hist := history.NewStore(ns, cfg.HistorySize, kv, bus)

	ctrl := controller.New(hist, bus)
	uiModel := ui.NewModel(cfg, bus, client, ctrl)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
