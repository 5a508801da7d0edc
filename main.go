package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

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
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	// Credentials may come from a local .env during development
	_ = godotenv.Load()

	// Set up logging; the terminal belongs to the TUI
	logFile, err := os.OpenFile("docfind.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadConfig(configSvc, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The search client validates the credential triple up front
	creds := search.Credentials{
		CustomerID: cfg.CustomerID,
		CorpusID:   cfg.CorpusID,
		APIKey:     cfg.APIKey,
	}
	client, err := search.NewClient(cfg.Endpoint, creds, cfg.NumResults)
	if err != nil {
		fmt.Printf("Cannot start: %v\n", err)
		fmt.Println("Set endpoint, customer_id, corpus_id and api_key in the config file or DOCFIND_* environment variables.")
		os.Exit(1)
	}

	// History is namespaced per credential triple so differently
	// configured instances never share entries
	kv, err := history.NewFileKV(history.DefaultDir())
	if err != nil {
		log.Printf("History persistence unavailable: %v", err)
		kv = history.NewMemKV()
	}
	ns := history.Namespace(cfg.CustomerID, cfg.CorpusID, cfg.APIKey)
	hist := history.NewStore(ns, cfg.HistorySize, kv, bus)

	// Create the query controller and UI model
	ctrl := controller.New(hist, bus)
	uiModel := ui.NewModel(cfg, bus, client, ctrl)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Forward bus events into the UI and the log
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			log.Printf("Search failed (seq %d): %v", event.Sequence, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventResultOpened, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ResultOpenedEvent); ok {
			log.Printf("Opened %s", event.URL)
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
}

// loadConfig loads from an explicit path when given, otherwise from the
// default location, with environment overrides applied either way
func loadConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	if path == "" {
		return configSvc.Load()
	}
	cfg, err := configSvc.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
