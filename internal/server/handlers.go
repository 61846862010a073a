package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"writeassist/internal/domain"
	"writeassist/internal/service"
)

// UserHeader identifies the caller for usage tracking.
const UserHeader = "X-User-ID"

type textRequest struct {
	Text string `json:"text"`
}

type summarizeRequest struct {
	Text         string `json:"text"`
	Type         string `json:"type"`
	Length       string `json:"length"`
	MaxSentences int    `json:"max_sentences"`
}

type rewriteRequest struct {
	Text         string `json:"text"`
	Tone         string `json:"tone"`
	ReadingLevel string `json:"readingLevel"`
}

type improveRequest struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

type altTextRequest struct {
	Context    string `json:"context"`
	CurrentAlt string `json:"currentAlt"`
}

// errBadJSON marks a body that could not be decoded.
var errBadJSON = errors.New("invalid JSON body")

func decode(r *http.Request, target any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return errBadJSON
	}
	if len(body) == 0 {
		return domain.ErrEmptyInput
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errBadJSON
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg, "success": false})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *domain.InputTooLargeError
	var tooShort *domain.InputTooShortError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge), errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrEmptyInput),
		errors.As(err, &tooShort),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, errBadJSON):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		msg = "Internal server error"
	}
	writeError(w, status, msg)
}

// track records the action for the caller named in the X-User-ID header.
func (s *Server) track(r *http.Request, action, text string) {
	user := r.Header.Get(UserHeader)
	if s.tracker == nil || user == "" {
		return
	}
	if err := s.tracker.TrackAction(r.Context(), user, action, service.WordCount(text)); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("action", action).Msg("track action")
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "writeassist",
		"uptime":    time.Since(s.startTime).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Status())
}

// textHandler adapts a single-text operation into a handler.
func (s *Server) textHandler(action string, op func(text string) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := decode(r, &req); err != nil {
			s.fail(w, r, err)
			return
		}
		res, err := op(req.Text)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.track(r, action, req.Text)
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	s.textHandler("analyze", func(t string) (any, error) { return s.svc.Analyze(t) })(w, r)
}

func (s *Server) grammar(w http.ResponseWriter, r *http.Request) {
	s.textHandler("grammar", func(t string) (any, error) { return s.svc.Grammar(t) })(w, r)
}

func (s *Server) readability(w http.ResponseWriter, r *http.Request) {
	s.textHandler("readability", func(t string) (any, error) { return s.svc.Readability(t) })(w, r)
}

func (s *Server) statistics(w http.ResponseWriter, r *http.Request) {
	s.textHandler("statistics", func(t string) (any, error) { return s.svc.Statistics(t) })(w, r)
}

func (s *Server) tone(w http.ResponseWriter, r *http.Request) {
	s.textHandler("tone", func(t string) (any, error) { return s.svc.Tone(t) })(w, r)
}

func (s *Server) suggestions(w http.ResponseWriter, r *http.Request) {
	s.textHandler("suggestions", func(t string) (any, error) {
		sug, err := s.svc.Suggestions(t)
		if err != nil {
			return nil, err
		}
		return map[string]any{"suggestions": sug}, nil
	})(w, r)
}

func (s *Server) simplify(w http.ResponseWriter, r *http.Request) {
	s.textHandler("simplify", func(t string) (any, error) { return s.svc.Simplify(t) })(w, r)
}

func (s *Server) proofread(w http.ResponseWriter, r *http.Request) {
	s.textHandler("proofread", func(t string) (any, error) { return s.svc.Proofread(r.Context(), t) })(w, r)
}

func (s *Server) summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Summarize(r.Context(), req.Text, service.SummarizeOptions{
		Type:         req.Type,
		Length:       req.Length,
		MaxSentences: req.MaxSentences,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.track(r, "summarize", req.Text)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) rewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Rewrite(r.Context(), req.Text, service.RewriteOptions{Style: req.Tone, ReadingLevel: req.ReadingLevel})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.track(r, "rewrite", req.Text)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) improve(w http.ResponseWriter, r *http.Request) {
	var req improveRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Improve(req.Text, req.Style)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.track(r, "improve", req.Text)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.track(r, "translate", req.Text)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) altText(w http.ResponseWriter, r *http.Request) {
	var req altTextRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res := s.svc.AltText(r.Context(), req.Context, req.CurrentAlt)
	s.track(r, "alt-text", req.Context)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) userStats(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		writeError(w, http.StatusServiceUnavailable, "analytics disabled")
		return
	}
	st, err := s.tracker.UserStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) leaderboard(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		writeError(w, http.StatusServiceUnavailable, "analytics disabled")
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	board, err := s.tracker.Leaderboard(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": board})
}
