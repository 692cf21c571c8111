// Package app wires configuration, logging, the term catalog and the
// glossary service into the shared startup unit used by the server command.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jiten-dev/jiten/internal/catalog"
	"github.com/jiten-dev/jiten/internal/common"
	"github.com/jiten-dev/jiten/internal/interfaces"
	"github.com/jiten-dev/jiten/internal/services/glossary"
)

// App holds the loaded configuration, the catalog and the initialized
// services.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	Catalog         *catalog.Catalog
	GlossaryService interfaces.GlossaryService
	StartupTime     time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration, builds the catalog and initializes services.
// configPath may be empty, in which case the default resolution logic is
// used. A structurally invalid catalog definition makes NewApp fail: the
// process must not come up without a valid catalog.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	// Get binary directory for self-contained operation
	binDir := getBinaryDir()

	// Load configuration - check provided path, JITEN_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("JITEN_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "jiten.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/jiten.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative paths to the binary directory
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(binDir, config.Logging.FilePath)
	}
	if config.Server.StaticDir != "" && !filepath.IsAbs(config.Server.StaticDir) {
		config.Server.StaticDir = filepath.Join(binDir, config.Server.StaticDir)
	}

	// Initialize logger
	logger := common.NewLoggerFromConfig(config.Logging)

	// Build the term catalog
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load term catalog: %w", err)
	}

	glossaryService := glossary.NewService(cat, logger)

	a := &App{
		Config:          config,
		Logger:          logger,
		Catalog:         cat,
		GlossaryService: glossaryService,
		StartupTime:     startupStart,
	}

	logger.Info().
		Int("terms", cat.TermCount()).
		Int("categories", cat.CategoryCount()).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}
