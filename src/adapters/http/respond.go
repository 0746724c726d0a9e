package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) respondBadRequest(w http.ResponseWriter, message string) {
	s.respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// respondDomainError maps the domain error taxonomy onto HTTP statuses.
// Anything unrecognized is a 500 with a generic body, logged with detail.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSelfRelationship),
		errors.Is(err, domain.ErrDuplicateRelationship),
		errors.Is(err, domain.ErrInvalidRelationship):
		s.respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPersonNotFound),
		errors.Is(err, domain.ErrRelationshipNotFound),
		errors.Is(err, domain.ErrLifeEventNotFound):
		s.respondWithJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("Unexpected error handling request", "error", err)
		s.respondWithJSON(w, http.StatusInternalServerError, errorResponse{Error: domain.ErrUnavailableServer.Error()})
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func decodeBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
