package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/common/validation"
	"himaya-assistant/internal/i18n"
)

const maxBodyBytes = 1 << 20

// Optional fields accept null, which decodes to the zero value. Negative
// ages, incomes and acreages are rejected.
const profileProperties = `
	"age":        {"type": ["integer", "null"], "minimum": 0, "maximum": 150},
	"income":     {"type": ["number", "null"], "minimum": 0},
	"occupation": {"type": ["string", "null"]},
	"gender":     {"type": ["string", "null"]},
	"bpl":        {"type": ["boolean", "null"]},
	"hasLand":    {"type": ["boolean", "null"]},
	"landAcres":  {"type": ["number", "null"], "minimum": 0},
	"category":   {"type": ["string", "null"]}`

var (
	profileSchema = validation.MustCompile("profile", `{
		"type": "object",
		"properties": {`+profileProperties+`}
	}`)

	userSchema = validation.MustCompile("user", `{
		"type": "object",
		"properties": {
			"phone":    {"type": ["string", "null"]},
			"name":     {"type": ["string", "null"]},
			"language": {"type": ["string", "null"]},
			"state":    {"type": ["string", "null"]},
			"district": {"type": ["string", "null"]},`+profileProperties+`
		}
	}`)

	voiceSchema = validation.MustCompile("voice", `{
		"type": "object",
		"properties": {
			"text":      {"type": ["string", "null"]},
			"language":  {"type": ["string", "null"]},
			"sessionId": {"type": ["string", "null"]},
			"context":   {"type": ["object", "null"]}
		}
	}`)

	ivrSchema = validation.MustCompile("ivr", `{
		"type": "object",
		"properties": {
			"callId":       {"type": ["string", "null"]},
			"event":        {"type": ["string", "null"]},
			"digits":       {"type": ["string", "null"]},
			"speechResult": {"type": ["string", "null"]},
			"language":     {"type": ["string", "null"]}
		}
	}`)
)

// decode reads the body, checks it against schema and unmarshals it into
// dst. An empty body is treated as {}.
func decode(r *http.Request, schema *validation.Schema, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.NewInvalidInputError("Unreadable request body", err.Error())
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	res, err := schema.ValidateBytes(body)
	if err != nil {
		return errors.NewInvalidInputError("Malformed JSON body", err.Error())
	}
	if !res.Valid {
		return errors.NewValidationFailedError(res.GetErrorMessages())
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.NewInvalidInputError("Malformed JSON body", err.Error())
	}
	return nil
}

// lang returns requested when it is supported, else the configured default.
func (s *Server) lang(requested string) string {
	return i18n.LanguageOr(requested, s.config.DefaultLanguage)
}

func (s *Server) queryLang(r *http.Request) string {
	return s.lang(r.URL.Query().Get("lang"))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
