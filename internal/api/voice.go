package api

import (
	"net/http"
	"strings"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/dialogue"
	"himaya-assistant/internal/i18n"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const ivrCallbackPath = "/api/voice/ivr/callback"

type voiceRequest struct {
	Text      string           `json:"text"`
	Language  string           `json:"language"`
	SessionID string           `json:"sessionId"`
	Context   dialogue.Context `json:"context"`
}

type ivrRequest struct {
	CallID       string `json:"callId"`
	Event        string `json:"event"`
	Digits       string `json:"digits"`
	SpeechResult string `json:"speechResult"`
	Language     string `json:"language"`
}

// TTS is the speech synthesis configuration handed to the client.
type TTS struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Voice    string  `json:"voice"`
	Rate     float64 `json:"rate"`
	Pitch    float64 `json:"pitch"`
}

// IVRResponse is a telephony document: say the text, then either gather
// more input or hang up.
type IVRResponse struct {
	Say    IVRSay     `json:"say"`
	Gather *IVRGather `json:"gather"`
	Hangup bool       `json:"hangup"`
}

type IVRSay struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

type IVRGather struct {
	Input         []string `json:"input"`
	Timeout       int      `json:"timeout"`
	SpeechTimeout string   `json:"speechTimeout"`
	Action        string   `json:"action"`
}

func (s *Server) languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    i18n.Supported(),
	})
}

func (s *Server) processVoice(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := decode(r, voiceSchema, &req); err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.errors.Handle(w, r, errors.NewInvalidInputError("Text input required", "text").
			WithMetadata("hint", "Send transcribed text from speech-to-text"))
		return
	}

	lang := s.lang(req.Language)
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp := s.generator.Process(r.Context(), req.Text, lang, req.Context)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"input":     req.Text,
		"language":  lang,
		"sessionId": req.SessionID,
		"response":  resp,
	})
}

func (s *Server) tts(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := decode(r, voiceSchema, &req); err != nil {
		s.errors.Handle(w, r, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.errors.Handle(w, r, errors.NewInvalidInputError("Text required", "text"))
		return
	}

	lang := s.lang(req.Language)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tts": TTS{
			Text:     req.Text,
			Language: lang,
			Voice:    i18n.VoiceFor(lang),
			Rate:     0.9,
			Pitch:    1.0,
		},
	})
}

// ivrCallback answers a telephony webhook. Speech wins over keypad digits;
// digits map straight to an intent.
func (s *Server) ivrCallback(w http.ResponseWriter, r *http.Request) {
	var req ivrRequest
	if err := decode(r, ivrSchema, &req); err != nil {
		s.errors.Handle(w, r, err)
		return
	}

	lang := s.lang(req.Language)
	conv := dialogue.Context{
		dialogue.ContextCallID: req.CallID,
		dialogue.ContextEvent:  req.Event,
	}

	var resp dialogue.Response
	switch {
	case req.SpeechResult != "":
		resp = s.generator.Process(r.Context(), req.SpeechResult, lang, conv)
	case req.Digits != "":
		resp = s.generator.ProcessDTMF(r.Context(), req.Digits, lang, conv)
	default:
		resp = s.generator.Process(r.Context(), "", lang, conv)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"callId":   req.CallID,
		"response": ivrDocument(resp, lang),
	})
}

// ivrDocument speaks in the response language when the turn switched it.
func ivrDocument(resp dialogue.Response, lang string) IVRResponse {
	sayLang := i18n.LanguageOr(resp.Language, lang)
	doc := IVRResponse{
		Say: IVRSay{
			Text:     resp.Text,
			Language: i18n.VoiceFor(sayLang),
			Voice:    i18n.IVRVoiceFor(sayLang),
		},
		Hangup: !resp.FollowUp,
	}
	if resp.FollowUp {
		doc.Gather = &IVRGather{
			Input:         []string{"speech", "dtmf"},
			Timeout:       5,
			SpeechTimeout: "auto",
			Action:        ivrCallbackPath,
		}
	}
	return doc
}

func (s *Server) prompts(w http.ResponseWriter, r *http.Request) {
	context := chi.URLParam(r, "context")
	lang := s.queryLang(r)

	p, ok := i18n.Prompts(context, lang)
	if !ok {
		s.errors.Handle(w, r, errors.NewInvalidInputError("Unknown prompt context", context))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"context":  context,
		"language": lang,
		"prompts":  p,
	})
}
