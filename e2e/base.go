package e2e

import (
	"fmt"
	"log/slog"

	"gantt-lab/repositories"
	"gantt-lab/search"
	"gantt-lab/services"
	"gantt-lab/storage"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// BaseSuite opens a real Badger store and bluge index and wires the full
// service graph, the same way cmd does.
type BaseSuite struct {
	suite.Suite
	Config Config

	db     *badger.DB
	writer *bluge.Writer

	Store    *storage.BadgerStore
	Groups   *repositories.GroupRepository
	Settings *repositories.SettingsRepository
	Events   *services.EventService
	Versions *services.VersionService
}

func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseSuite) SetupTest() {
	log := slog.Default()

	badgerDir := s.Config.BadgerDir
	if badgerDir == "" {
		badgerDir = s.T().TempDir()
	}
	blugeDir := s.Config.BlugeDir
	if blugeDir == "" {
		blugeDir = s.T().TempDir()
	}

	var err error
	s.db, err = badger.Open(badger.DefaultOptions(badgerDir).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.Store = storage.NewBadgerStore(s.db, badgerDir, 0, log)

	s.writer, err = bluge.OpenWriter(bluge.DefaultConfig(blugeDir))
	s.Require().NoError(err)
	index := search.NewEventIndex(s.writer, log)

	var eventRepo *repositories.EventRepository
	s.Groups = repositories.NewGroupRepository(s.Store, log, func(groupID string) (bool, error) {
		events, err := eventRepo.GetByGroupID(groupID)
		return len(events) > 0, err
	})
	eventRepo = repositories.NewEventRepository(s.Store, log, func(groupID string) (bool, error) {
		group, err := s.Groups.GetByID(groupID)
		return group != nil, err
	})
	versionRepo := repositories.NewVersionRepository(s.Store, log)
	s.Settings = repositories.NewSettingsRepository(s.Store, log)

	s.Events = services.NewEventService(eventRepo, index, log)
	s.Versions = services.NewVersionService(versionRepo, eventRepo, s.Groups, s.Settings, log)
}

func (s *BaseSuite) TearDownTest() {
	if s.writer != nil {
		s.Require().NoError(s.writer.Close())
	}
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

// Step prints a colorized header so scenario phases stand out in logs.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}
