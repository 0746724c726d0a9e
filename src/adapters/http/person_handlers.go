package http

import (
	"net/http"
	"strconv"
)

func (s *Server) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var request PersonRequest
	if err := decodeBody(r, &request); err != nil {
		s.respondBadRequest(w, "invalid JSON body")
		return
	}

	person, err := request.ToEntity()
	if err != nil {
		s.respondBadRequest(w, err.Error())
		return
	}

	created, err := s.personService.Create(r.Context(), person)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusCreated, MapPersonToResponse(created))
}

func (s *Server) GetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	detail, err := s.personService.GetByID(r.Context(), personID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, MapPersonDetailToResponse(detail))
}

func (s *Server) ListPersons(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := s.personService.List(r.Context(), limit, offset)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	response := make([]PersonDTO, 0, len(list))
	for _, person := range list {
		response = append(response, MapPersonToResponse(person))
	}

	s.respondWithJSON(w, http.StatusOK, response)
}

func (s *Server) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	var request PersonRequest
	if err := decodeBody(r, &request); err != nil {
		s.respondBadRequest(w, "invalid JSON body")
		return
	}

	person, err := request.ToEntity()
	if err != nil {
		s.respondBadRequest(w, err.Error())
		return
	}
	person.ID = personID

	updated, err := s.personService.Update(r.Context(), person)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, MapPersonToResponse(updated))
}

func (s *Server) DeletePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	if err := s.personService.Delete(r.Context(), personID); err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusNoContent, nil)
}

func (s *Server) AddLifeEvent(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	var request LifeEventRequest
	if err := decodeBody(r, &request); err != nil {
		s.respondBadRequest(w, "invalid JSON body")
		return
	}

	event, err := request.ToEntity(personID)
	if err != nil {
		s.respondBadRequest(w, err.Error())
		return
	}

	created, err := s.personService.AddLifeEvent(r.Context(), event)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusCreated, MapLifeEventToResponse(created))
}

func (s *Server) ListLifeEvents(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid person id")
		return
	}

	events, err := s.personService.ListLifeEvents(r.Context(), personID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	response := make([]LifeEventDTO, 0, len(events))
	for _, event := range events {
		response = append(response, MapLifeEventToResponse(event))
	}

	s.respondWithJSON(w, http.StatusOK, response)
}

func (s *Server) DeleteLifeEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r)
	if err != nil {
		s.respondBadRequest(w, "invalid event id")
		return
	}

	if err := s.personService.DeleteLifeEvent(r.Context(), eventID); err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondWithJSON(w, http.StatusNoContent, nil)
}
