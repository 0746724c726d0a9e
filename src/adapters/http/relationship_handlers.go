package http

import (
	"fmt"
	"net/http"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

const maxBatchItems = 100

func (s *Server) CreateRelationship(w http.ResponseWriter, r *http.Request) {
	var request CreateRelationshipRequest
	if err := decodeBody(r, &request); err != nil {
		s.respondBadRequest(w, "invalid JSON body")
		return
	}

	input, err := request.ToDomain()
	if err != nil {
		s.respondBadRequest(w, err.Error())
		return
	}

	created, err := s.relationshipService.Create(r.Context(), input)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusCreated, MapRelationshipToResponse(created))
}

func (s *Server) ListPersonRelationships(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	var typeFilter *entities.RelationshipType
	if raw := r.URL.Query().Get("type"); raw != "" {
		filter := entities.RelationshipType(raw)
		typeFilter = &filter
	}

	list, err := s.relationshipService.ListForPerson(r.Context(), personID, typeFilter)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	response := make([]RelationshipDTO, 0, len(list))
	for _, rel := range list {
		response = append(response, MapRelationshipToResponse(rel))
	}

	s.respondWithJSON(w, http.StatusOK, response)
}

func (s *Server) UpdateRelationship(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid relationship id")
		return
	}

	var request PatchRelationshipRequest
	if err := decodeBody(r, &request); err != nil {
		s.respondBadRequest(w, "invalid JSON body")
		return
	}

	patch, err := request.ToDomain()
	if err != nil {
		s.respondBadRequest(w, err.Error())
		return
	}

	updated, err := s.relationshipService.Update(r.Context(), relationshipID, patch)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, MapRelationshipToResponse(updated))
}

func (s *Server) DeleteRelationship(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid relationship id")
		return
	}

	if err := s.relationshipService.Delete(r.Context(), relationshipID); err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusNoContent, nil)
}

func (s *Server) CreateRelationshipBatch(w http.ResponseWriter, r *http.Request) {
	var request BatchRelationshipRequest
	if err := decodeBody(r, &request); err != nil {
		s.respondBadRequest(w, "invalid JSON body")
		return
	}

	if len(request.Items) == 0 {
		s.respondBadRequest(w, "items must not be empty")
		return
	}

	if len(request.Items) > maxBatchItems {
		s.respondBadRequest(w, fmt.Sprintf("too many items, the limit is %d", maxBatchItems))
		return
	}

	inputs := make([]domain.NewRelationship, 0, len(request.Items))
	for index, item := range request.Items {
		input, err := item.ToDomain()
		if err != nil {
			s.respondBadRequest(w, fmt.Sprintf("item %d: %s", index, err.Error()))
			return
		}
		inputs = append(inputs, input)
	}

	results := s.relationshipService.CreateBatch(r.Context(), inputs)

	response := BatchResponseDTO{Results: make([]BatchItemDTO, 0, len(results))}
	for _, result := range results {
		item := BatchItemDTO{Index: result.Index}
		if result.Err != nil {
			item.Error = result.Err.Error()
			response.Failed++
		} else {
			dto := MapRelationshipToResponse(*result.Relationship)
			item.Relationship = &dto
			response.Created++
		}
		response.Results = append(response.Results, item)
	}

	status := http.StatusCreated
	if response.Failed > 0 {
		status = http.StatusMultiStatus
	}

	s.respondWithJSON(w, status, response)
}
