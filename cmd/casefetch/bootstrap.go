package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/casefetch/internal/adapters/driven/api"
	"github.com/custodia-labs/casefetch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/casefetch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/casefetch/internal/adapters/driven/system"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/cli"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
	"github.com/custodia-labs/casefetch/internal/core/services"
	"github.com/custodia-labs/casefetch/internal/logger"
)

// EnvServer supplies the server base URL when --server is not given.
const EnvServer = "CASEFETCH_SERVER"

// logFileName is the TUI log file inside the configuration directory.
const logFileName = "casefetch.log"

// bootstrap wires the adapters and services for the commands.
func bootstrap(opts cli.Options) (*cli.Runtime, error) {
	var (
		store     driven.ConfigStore
		configDir string
	)
	if opts.NoConfig {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("config store: %w", err)
		}
		store = fileStore
		configDir = filepath.Dir(fileStore.Path())
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	server := opts.Server
	if server == "" {
		server = os.Getenv(EnvServer)
	}
	if server != "" {
		settings.Server.BaseURL = strings.TrimRight(strings.TrimSpace(server), "/")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("using server %s", settings.Server.BaseURL)

	client, err := api.NewClient(api.Config{
		BaseURL: settings.Server.BaseURL,
		Timeout: settings.Server.Timeout,
		RateLimit: api.RateLimitConfig{
			RequestsPerSecond: settings.Client.RequestsPerSecond,
			BurstSize:         settings.Client.Burst,
		},
	})
	if err != nil {
		return nil, err
	}

	rt := &cli.Runtime{
		Settings:        settings,
		SettingsService: settingsService,
		NewWorkflow: func(presenter driven.Presenter) (driving.Workflow, error) {
			return services.NewWorkflowController(client, client, presenter)
		},
		ResultActions: services.NewResultActionService(client.BaseURL(), system.NewOpener()),
	}
	if configDir != "" {
		rt.LogPath = filepath.Join(configDir, logFileName)
	}
	return rt, nil
}

