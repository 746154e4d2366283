package api

import (
	"net/http"
	"strconv"
	"strings"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/common/metrics"
	"himaya-assistant/internal/eligibility"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listSchemes(w http.ResponseWriter, r *http.Request) {
	views := s.catalog.List(s.queryLang(r), r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(views),
		"data":    views,
	})
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    s.catalog.Categories(),
	})
}

func (s *Server) schemesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	views := s.catalog.ByCategory(category, s.queryLang(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"count":    len(views),
		"category": category,
		"data":     views,
	})
}

func (s *Server) searchSchemes(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.errors.Handle(w, r, errors.NewInvalidInputError("Search query required", "q"))
		return
	}

	views := s.catalog.Search(q, s.queryLang(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"query":   q,
		"count":   len(views),
		"data":    views,
	})
}

func (s *Server) getScheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, ok := s.catalog.ByID(id, s.queryLang(r))
	if !ok {
		s.errors.Handle(w, r, errors.NewSchemeNotFoundError(id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    view,
	})
}

// checkEligibility evaluates an ad-hoc profile. explain=true adds the
// per-scheme decisions, including rejections.
func (s *Server) checkEligibility(w http.ResponseWriter, r *http.Request) {
	var profile eligibility.Profile
	if err := decode(r, profileSchema, &profile); err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	if profile.IsEmpty() {
		s.errors.Handle(w, r, errors.NewProfileRequiredError(eligibility.RequiredFields))
		return
	}

	lang := s.queryLang(r)
	results := s.evaluator.Evaluate(profile, lang)
	metrics.EligibilityChecks.WithLabelValues("api").Inc()
	metrics.EligibleSchemes.Observe(float64(len(results)))

	payload := map[string]interface{}{
		"success":       true,
		"profile":       profile,
		"eligibleCount": len(results),
		"data":          results,
	}
	if explain, _ := strconv.ParseBool(r.URL.Query().Get("explain")); explain {
		payload["explanations"] = s.evaluator.Explain(profile, lang)
	}
	writeJSON(w, http.StatusOK, payload)
}
