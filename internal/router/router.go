package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Mahitha-23/ClassPilot/internal/lesson"
	"github.com/Mahitha-23/ClassPilot/internal/middlewares"
	"github.com/Mahitha-23/ClassPilot/internal/module"
	"github.com/Mahitha-23/ClassPilot/internal/session"
)

type RouterConfig struct {
	LessonHandler  *lesson.Handler
	ModuleHandler  *module.Handler
	SessionHandler *session.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/modules", module.Routes(cfg.ModuleHandler))
		r.Mount("/session", session.Routes(cfg.SessionHandler))
		r.Mount("/", lesson.Routes(cfg.LessonHandler))
	})
	return r
}
