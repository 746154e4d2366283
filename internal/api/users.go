package api

import (
	"net/http"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/models"
	"himaya-assistant/internal/users"

	"github.com/go-chi/chi/v5"
)

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := decode(r, userSchema, &reg); err != nil {
		s.errors.Handle(w, r, err)
		return
	}

	user, err := s.users.Register(r.Context(), reg)
	if err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"data":    user,
	})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    user,
	})
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := decode(r, userSchema, &update); err != nil {
		s.errors.Handle(w, r, err)
		return
	}

	user, err := s.users.Update(r.Context(), chi.URLParam(r, "phone"), update)
	if err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated",
		"data":    user,
	})
}

type eligibleSchemesResponse struct {
	Success bool `json:"success"`
	*users.EligibleSchemes
}

func (s *Server) eligibleSchemes(w http.ResponseWriter, r *http.Request) {
	res, err := s.users.EligibleSchemes(r.Context(), chi.URLParam(r, "phone"), r.URL.Query().Get("lang"))
	if err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eligibleSchemesResponse{Success: true, EligibleSchemes: res})
}

func (s *Server) notifyEligible(w http.ResponseWriter, r *http.Request) {
	if s.notifier == nil {
		s.errors.Handle(w, r, errors.NewNotificationsDisabledError())
		return
	}

	n, err := s.notifier.NotifyEligible(r.Context(), chi.URLParam(r, "phone"), r.URL.Query().Get("lang"))
	if err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Eligible schemes sent by SMS",
		"data":    n,
	})
}
