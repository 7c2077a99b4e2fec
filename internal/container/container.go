package container

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Mahitha-23/ClassPilot/internal/config"
	"github.com/Mahitha-23/ClassPilot/internal/lesson"
	"github.com/Mahitha-23/ClassPilot/internal/module"
	"github.com/Mahitha-23/ClassPilot/internal/session"
)

const defaultDebounceInterval = time.Second

type Container struct {
	LessonContainer  *lesson.LessonContainer
	ModuleContainer  *module.ModuleContainer
	SessionContainer *session.SessionContainer
}

func New() *Container {
	config.Init()

	ctx := context.Background()

	lessonContainer, err := lesson.NewLessonContainer(ctx)
	if err != nil {
		log.Fatalf("failed to create lesson container: %v", err)
	}

	store := newModuleStore(ctx)
	moduleContainer := module.NewModuleContainer(store)
	sessionContainer := session.NewSessionContainer(
		lessonContainer.Service,
		store,
		debounceInterval(),
	)

	return &Container{
		LessonContainer:  lessonContainer,
		ModuleContainer:  moduleContainer,
		SessionContainer: sessionContainer,
	}
}

func newModuleStore(ctx context.Context) module.Store {
	if os.Getenv("MODULE_STORE") != "sqlite" {
		return module.NewMemoryStore()
	}

	if err := config.Connect(ctx, os.Getenv("DATABASE_DSN")); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	store, err := module.NewGormStore(config.DB)
	if err != nil {
		log.Fatalf("failed to create module store: %v", err)
	}
	return store
}

func debounceInterval() time.Duration {
	if ms, err := strconv.Atoi(os.Getenv("DEBOUNCE_INTERVAL_MS")); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultDebounceInterval
}
