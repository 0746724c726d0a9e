package http

import (
	"net/http"
	"strconv"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
)

const (
	defaultTreeDepth = 5
	maxTreeDepth     = 10
)

func (s *Server) GetFamilyTree(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	depth := defaultTreeDepth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		depth, err = strconv.Atoi(raw)
		if err != nil || depth < 1 || depth > maxTreeDepth {
			s.respondBadRequest(w, "depth must be an integer between 1 and 10")
			return
		}
	}

	direction := domain.TreeDescendants
	if raw := r.URL.Query().Get("direction"); raw != "" {
		direction = domain.TreeDirection(raw)
		if !direction.Valid() {
			s.respondBadRequest(w, "direction must be 'descendants' or 'ancestors'")
			return
		}
	}

	root, err := s.treeService.GetTreeByPersonID(r.Context(), personID, depth, direction)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, MapFamilyNodeToResponse(root))
}
