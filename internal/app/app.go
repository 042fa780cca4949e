package app

import (
	"prpcap/internal/domain"
	"prpcap/internal/relay"
	"prpcap/internal/services/epoch"
	"prpcap/internal/services/message"
	"prpcap/internal/store"
)

// App bundles the wired services.
type App struct {
	Epochs   *epoch.Manager
	Messages domain.MessageService
	Relay    domain.RelayClient
}

// New builds the app from config. Relay-backed operations are unavailable
// when cfg.RelayURL is empty.
func New(cfg Config) *App {
	fs := store.NewFileStore(cfg.Home)
	epochs := epoch.New(fs)

	var rc domain.RelayClient
	if cfg.RelayURL != "" {
		rc = relay.NewClient(cfg.RelayURL)
	}

	return &App{
		Epochs:   epochs,
		Messages: message.New(epochs, rc),
		Relay:    rc,
	}
}
