package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nolimit-nexus/nexus/internal/cli"
	"github.com/nolimit-nexus/nexus/internal/config"
	"github.com/nolimit-nexus/nexus/internal/i18n"
	"github.com/nolimit-nexus/nexus/internal/session"
	"github.com/nolimit-nexus/nexus/internal/state"
	"github.com/nolimit-nexus/nexus/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.ResolveConfigPath(os.Getenv("NEXUS_CONFIG"))
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dataDir := os.Getenv("NEXUS_DATA")
	if dataDir == "" {
		dataDir = cfg.GetDataDir()
	}

	// Open the record backend.
	var records store.RecordStore
	switch cfg.Storage.Backend {
	case "file":
		records, err = store.NewFileRecordStore(filepath.Join(dataDir, "records"))
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
	case "sqlite":
		sqliteStore, err := store.NewSQLiteRecordStore(filepath.Join(dataDir, "nexus.db"))
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
		defer sqliteStore.Close()
		records = sqliteStore
	default:
		return fmt.Errorf("unknown storage backend %q (file|sqlite)", cfg.Storage.Backend)
	}

	chunks := store.NewChunkStore(records)

	// Wire repositories.
	states := state.NewAppStateRepo(chunks)
	profiles := state.NewOnboardingRepo(chunks)
	flags := state.NewFlagRepo(records)

	// Optional session logging.
	var observer session.Observer = session.NoopObserver{}
	if os.Getenv("NEXUS_DEBUG") != "" || cfg.Logging.Debug {
		observer = session.NewLogObserver(os.Stderr)
	}

	// Wire services.
	sessionSvc := session.NewService(states, profiles, observer)
	onboardingSvc := session.NewOnboardingService(profiles, observer)

	// Display language: saved flag wins, then the config default.
	lang := flags.Language()
	if lang == "" {
		lang = cfg.Locale.DefaultLanguage
	}
	dict, err := i18n.Load(lang)
	if err != nil {
		return err
	}

	app := &cli.App{
		Session:     sessionSvc,
		Onboarding:  onboardingSvc,
		States:      states,
		Profiles:    profiles,
		Flags:       flags,
		Dict:        dict,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
