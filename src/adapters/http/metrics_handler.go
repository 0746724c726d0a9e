package http

import (
	"net/http"
)

func (s *Server) GetMetrics(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, s.metricsService.Snapshot())
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.metricsService.HealthCheck(r.Context()); err != nil {
		s.logger.Error("Health check failed", "error", err)
		s.respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
