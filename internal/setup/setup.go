package setup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/giftharmony/giftharmony/internal/apiclient"
	"github.com/giftharmony/giftharmony/internal/config"
	"github.com/giftharmony/giftharmony/internal/session"
	"github.com/giftharmony/giftharmony/internal/storage/pg"
)

// Dependencies holds the long-lived objects constructed once at
// startup. The API client in particular is built exactly once and
// injected into consumers; nothing reaches for a package-level
// singleton.
type Dependencies struct {
	Config *config.Config
	DB     *sql.DB
	Tokens *session.Manager
	Client *apiclient.Client
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	store, err := tokenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token storage: %w", err)
	}

	tokens, err := session.NewManager(store)
	if err != nil {
		return nil, err
	}

	client := apiclient.New(cfg.ApiBaseURL, tokens)

	db, err := pg.Connect(cfg, pg.LightweightConnectionConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &Dependencies{
		Config: cfg,
		DB:     db,
		Tokens: tokens,
		Client: client,
	}, nil
}

func (d *Dependencies) Cleanup() error {
	return d.DB.Close()
}

// tokenStore picks the durable token location: an explicit TokenDir
// wins, otherwise the per-user config directory.
func tokenStore(cfg *config.Config) (session.Store, error) {
	dir := cfg.TokenDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(configDir, "giftharmony")
	}
	return session.NewFileStore(dir)
}
