package main

import (
	"flag"
	"fmt"
	"os"

	"gantt-lab/internal"
	"gantt-lab/internal/logs"
	"gantt-lab/repositories"
	"gantt-lab/search"
	"gantt-lab/services"
	"gantt-lab/storage"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so every
// defer (database and index cleanup) executes before the process exits.
func run() error {
	action := flag.String("action", "list", "list | save | compare | next | usage | reindex")
	note := flag.String("note", "", "note attached to a saved version")
	from := flag.String("from", "", "version id (compare)")
	to := flag.String("to", "", "version id (compare)")
	keyword := flag.String("keyword", "", "full-text filter applied to list")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	store := storage.NewBadgerStore(db, config.BadgerFilepath, config.StorageQuotaBytes, log)

	// 3. Search index (bluge)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing bluge index...")
		_ = writer.Close()
	}()
	index := search.NewEventIndex(writer, log)

	// 4. Repositories. The cross-checks are closures so neither repository
	// depends on the other's type.
	var eventRepo *repositories.EventRepository
	groupRepo := repositories.NewGroupRepository(store, log, func(groupID string) (bool, error) {
		events, err := eventRepo.GetByGroupID(groupID)
		return len(events) > 0, err
	})
	eventRepo = repositories.NewEventRepository(store, log, func(groupID string) (bool, error) {
		group, err := groupRepo.GetByID(groupID)
		return group != nil, err
	})
	versionRepo := repositories.NewVersionRepository(store, log)
	settingsRepo := repositories.NewSettingsRepository(store, log)

	eventService := services.NewEventService(eventRepo, index, log)
	versionService := services.NewVersionService(versionRepo, eventRepo, groupRepo, settingsRepo, log)

	switch *action {
	case "list":
		return listEvents(eventService, *keyword)
	case "save":
		version, err := versionService.Save(*note, nil)
		if err != nil {
			return err
		}
		fmt.Printf("Saved version %d (%s)\n", version.Number, version.ID)
		return nil
	case "compare":
		return compareVersions(versionService, *from, *to)
	case "next":
		next, err := versionService.NextNumber()
		if err != nil {
			return err
		}
		fmt.Printf("Next version number: %d\n", next)
		return nil
	case "usage":
		usage, err := store.Usage()
		if err != nil {
			return err
		}
		fmt.Printf("Used: %d bytes, available: %d bytes (%.1f%%)\n",
			usage.Used, usage.Available, usage.Percentage)
		return nil
	case "reindex":
		return eventService.ReindexAll()
	default:
		return fmt.Errorf("unknown action %q", *action)
	}
}
