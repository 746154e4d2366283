package api

import (
	"net/http"
	"time"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": s.now().Format(time.RFC3339),
		"version":   s.config.Version,
		"service":   serviceName,
	})
}

var endpoints = map[string]map[string]string{
	"schemes": {
		"GET /api/schemes":                     "List all schemes",
		"GET /api/schemes/categories":          "List scheme categories",
		"GET /api/schemes/category/{category}": "Get schemes by category",
		"GET /api/schemes/search":              "Search schemes",
		"GET /api/schemes/{id}":                "Get scheme details",
		"POST /api/schemes/check-eligibility":  "Check eligibility for schemes",
	},
	"users": {
		"POST /api/users/register":                "Register new user",
		"GET /api/users/{phone}":                  "Get user profile",
		"PATCH /api/users/{phone}":                "Update user profile",
		"GET /api/users/{phone}/eligible-schemes": "Get eligible schemes for user",
		"POST /api/users/{phone}/notify-eligible": "Send eligible schemes by SMS",
	},
	"voice": {
		"POST /api/voice/process":          "Process voice input and get response",
		"POST /api/voice/tts":              "Convert text to speech data",
		"POST /api/voice/ivr/callback":     "Answer an IVR webhook",
		"GET /api/voice/languages":         "Get supported languages",
		"GET /api/voice/prompts/{context}": "Get IVR prompts",
	},
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        serviceName,
		"version":     s.config.Version,
		"description": "HIMAYA - Human-centred Inclusive Mobile Assistance for Yojana Access",
		"endpoints":   endpoints,
	})
}
