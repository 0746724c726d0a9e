package http

import (
	"net/http"
	"strconv"
	"time"
)

const (
	defaultUpcomingDays = 30
	maxUpcomingDays     = 366
)

func (s *Server) BirthdayCalendar(w http.ResponseWriter, r *http.Request) {
	body, err := s.calendarService.BirthdayCalendar(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) AnniversaryCalendar(w http.ResponseWriter, r *http.Request) {
	body, err := s.calendarService.AnniversaryCalendar(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) UpcomingFeed(w http.ResponseWriter, r *http.Request) {
	days := defaultUpcomingDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxUpcomingDays {
			s.respondBadRequest(w, "days must be an integer between 1 and 366")
			return
		}
		days = parsed
	}

	body, err := s.calendarService.UpcomingFeed(r.Context(), time.Now().UTC(), days)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
