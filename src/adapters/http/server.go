package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/darshan-rambhia/vamsa-sub006/src/services/calendar"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/metrics"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/persons"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/relationships"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/tree"
)

// Server is the HTTP surface of the API
type Server struct {
	logger              *slog.Logger
	server              *http.Server
	mux                 *http.ServeMux
	port                int
	personService       *persons.PersonService
	relationshipService *relationships.RelationshipService
	treeService         *tree.TreeService
	calendarService     *calendar.CalendarService
	metricsService      *metrics.MetricsService
}

func NewServer(
	logger *slog.Logger,
	port int,
	personService *persons.PersonService,
	relationshipService *relationships.RelationshipService,
	treeService *tree.TreeService,
	calendarService *calendar.CalendarService,
	metricsService *metrics.MetricsService,
) *Server {
	server := &Server{
		mux:                 http.NewServeMux(),
		port:                port,
		logger:              logger,
		personService:       personService,
		relationshipService: relationshipService,
		treeService:         treeService,
		calendarService:     calendarService,
		metricsService:      metricsService,
	}

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Persons
	server.mux.HandleFunc("GET /v1/persons", server.ListPersons)
	server.mux.HandleFunc("POST /v1/persons", server.CreatePerson)
	server.mux.HandleFunc("GET /v1/persons/{id}", server.GetPerson)
	server.mux.HandleFunc("PUT /v1/persons/{id}", server.UpdatePerson)
	server.mux.HandleFunc("DELETE /v1/persons/{id}", server.DeletePerson)

	// Relationships
	server.mux.HandleFunc("GET /v1/persons/{id}/relationships", server.ListPersonRelationships)
	server.mux.HandleFunc("POST /v1/relationships", server.CreateRelationship)
	server.mux.HandleFunc("PATCH /v1/relationships/{id}", server.UpdateRelationship)
	server.mux.HandleFunc("DELETE /v1/relationships/{id}", server.DeleteRelationship)
	server.mux.HandleFunc("POST /v1/relationships/batch", server.CreateRelationshipBatch)

	// Tree
	server.mux.HandleFunc("GET /v1/persons/{id}/tree", server.GetFamilyTree)

	// Life events
	server.mux.HandleFunc("GET /v1/persons/{id}/events", server.ListLifeEvents)
	server.mux.HandleFunc("POST /v1/persons/{id}/events", server.AddLifeEvent)
	server.mux.HandleFunc("DELETE /v1/events/{id}", server.DeleteLifeEvent)

	// Calendar feeds
	server.mux.HandleFunc("GET /v1/calendar/birthdays.ics", server.BirthdayCalendar)
	server.mux.HandleFunc("GET /v1/calendar/anniversaries.ics", server.AnniversaryCalendar)
	server.mux.HandleFunc("GET /v1/calendar/upcoming.rss", server.UpcomingFeed)

	// Operational
	server.mux.HandleFunc("GET /v1/metrics", server.GetMetrics)
	server.mux.HandleFunc("GET /healthz", server.HealthCheck)

	return server
}

// Start runs the HTTP server until shutdown
func (s *Server) Start() error {
	s.logger.Info("Server started", "port", s.port)

	return s.server.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
