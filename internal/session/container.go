package session

import (
	"time"

	"github.com/Mahitha-23/ClassPilot/internal/lesson"
	"github.com/Mahitha-23/ClassPilot/internal/module"
)

type SessionContainer struct {
	Session *Session
	Handler *Handler
}

func NewSessionContainer(svc lesson.Service, store module.Store, debounceInterval time.Duration) *SessionContainer {
	session := New(svc, store, debounceInterval)

	return &SessionContainer{
		Session: session,
		Handler: NewHandler(session),
	}
}
