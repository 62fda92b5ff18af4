// Package httpapi exposes wizard sessions over JSON/HTTP
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/YoshitsuguKoike/propbrief/internal/app"
	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/submission"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

// Default session limits
const (
	DefaultMaxAge      = 24 * time.Hour
	DefaultIdleTimeout = 30 * time.Minute
)

// Server wires the wizard registry, the submit use case and region lookups to HTTP routes
type Server struct {
	router   *chi.Mux
	registry *Registry
	catalogs map[model.Flow]*wizard.Catalog
	submit   *submission.SubmitUseCase
	regions  wizard.RegionLookup
	logger   app.Logger
}

// NewServer creates a Server. regions may be nil, in which case locations
// are not validated and the region routes return 404.
func NewServer(registry *Registry, submit *submission.SubmitUseCase, regions wizard.RegionLookup, logger app.Logger) *Server {
	if logger == nil {
		logger = app.NopLogger{}
	}
	s := &Server{
		router:   chi.NewRouter(),
		registry: registry,
		catalogs: map[model.Flow]*wizard.Catalog{},
		submit:   submit,
		regions:  regions,
		logger:   logger,
	}
	for _, flow := range []model.Flow{model.FlowBrief, model.FlowPreference} {
		c, err := wizard.ForFlow(flow)
		if err != nil {
			panic(fmt.Sprintf("httpapi: %v", err))
		}
		if regions != nil {
			c = c.WithRegions(regions)
		}
		s.catalogs[flow] = c
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry returns the session registry
func (s *Server) Registry() *Registry {
	return s.registry
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/flows/{flow}/fields", s.handleFields)

		r.Post("/wizards", s.handleCreateWizard)
		r.Route("/wizards/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetWizard)
			r.Delete("/", s.handleCancelWizard)
			r.Post("/events", s.handleEvents)
			r.Get("/payload", s.handlePayload)
			r.Get("/disclosure", s.handleDisclosure)
			r.Post("/submit", s.handleSubmit)
		})

		r.Route("/regions", func(r chi.Router) {
			r.Get("/states", s.handleStates)
			r.Get("/states/{state}/lgas", s.handleLGAs)
			r.Get("/states/{state}/lgas/{lga}/areas", s.handleAreas)
		})
	})
}
