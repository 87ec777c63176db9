package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/vilacaiz/clubhouse/internal/club"
)

// statusFor maps the club error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var (
		validation *club.ValidationError
		reference  *club.ReferenceError
		notFound   *club.NotFoundError
		conflict   *club.ConflictError
		duplicate  *club.DuplicateSeasonError
		unknown    *club.UnknownSeasonError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &reference):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound), errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &conflict), errors.As(err, &duplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "request_id", requestIDFromContext(r), "error", err)
	} else {
		log.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, format string, args ...any) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf(format, args...)})
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		badRequest(w, "invalid request body: %v", err)
		return false
	}
	return true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		badRequest(w, "invalid %s %q", name, r.PathValue(name))
		return 0, false
	}
	return id, true
}

// scope resolves the season a request works on from its "season" query
// parameter, defaulting to the active season.
func (s *Server) scope(w http.ResponseWriter, r *http.Request) (club.Scope, bool) {
	label := r.URL.Query().Get("season")
	if label == "" {
		return s.Club.Active(), true
	}
	sc, err := s.Club.Season(label)
	if err != nil {
		writeError(w, r, err)
		return club.Scope{}, false
	}
	return sc, true
}

func list(s *Server, fn func(sc club.Scope, r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		v, err := fn(sc, r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func byID(s *Server, fn func(sc club.Scope, id int) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		v, err := fn(sc, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func create[In any](s *Server, fn func(sc club.Scope, in In) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		var in In
		if !decode(w, r, &in) {
			return
		}
		v, err := fn(sc, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, v)
	}
}

func update[P any](s *Server, fn func(sc club.Scope, id int, patch P) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		var patch P
		if !decode(w, r, &patch) {
			return
		}
		v, err := fn(sc, id, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func remove(s *Server, fn func(sc club.Scope, id int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		if err := fn(sc, id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
