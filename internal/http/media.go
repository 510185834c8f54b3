package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mediashelf/mediashelf/internal/domain"
	"github.com/mediashelf/mediashelf/internal/repository"
	"github.com/mediashelf/mediashelf/internal/validate"
)

const maxRequestBody = 1 << 20 // 1 MiB

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorResponse struct {
	Error []validate.FieldError `json:"error"`
}

type mediaListResponse struct {
	Media      []domain.MediaRecord `json:"media"`
	Pagination paginationResponse   `json:"pagination"`
}

type paginationResponse struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Database    string `json:"database"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	params, err := buildMediaListParams(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.repo.Media.List(r.Context(), params)
	if err != nil {
		s.logger.Errorw("list media failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to fetch media")
		return
	}

	s.respondJSON(w, http.StatusOK, mediaListResponse{
		Media: result.Items,
		Pagination: paginationResponse{
			CurrentPage: result.CurrentPage,
			TotalPages:  result.TotalPages,
			TotalCount:  result.TotalCount,
			HasNextPage: result.HasNextPage,
		},
	})
}

func buildMediaListParams(query url.Values) (repository.MediaListParams, error) {
	params := repository.MediaListParams{Page: 1, Limit: 10}

	if val := strings.TrimSpace(query.Get("page")); val != "" {
		page, err := strconv.Atoi(val)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page value")
		}
		params.Page = page
	}
	if val := strings.TrimSpace(query.Get("limit")); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil || limit < 1 {
			return params, fmt.Errorf("invalid limit value")
		}
		params.Limit = limit
	}
	params.Search = strings.TrimSpace(query.Get("search"))
	params.Type = strings.TrimSpace(query.Get("type"))
	params.Year = strings.TrimSpace(query.Get("year"))
	return params, nil
}

func (s *Server) handleCreateMedia(w http.ResponseWriter, r *http.Request) {
	var input domain.MediaInput
	if err := decodeJSONBody(w, r, &input); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	if errs := validate.Media.Validate(input.FieldValues()); len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, fieldErrorResponse{Error: errs})
		return
	}

	record, err := s.repo.Media.Create(r.Context(), input.Trimmed())
	if err != nil {
		s.logger.Errorw("create media failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to create media")
		return
	}

	s.respondJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdateMedia(w http.ResponseWriter, r *http.Request) {
	id, err := decodeIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input domain.MediaInput
	if err := decodeJSONBody(w, r, &input); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	if errs := validate.Media.Validate(input.FieldValues()); len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, fieldErrorResponse{Error: errs})
		return
	}

	record, err := s.repo.Media.Update(r.Context(), id, input.Trimmed())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "media not found")
			return
		}
		s.logger.Errorw("update media failed", "id", id, "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to update media")
		return
	}

	s.respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := decodeIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.repo.Media.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "media not found")
			return
		}
		s.logger.Errorw("delete media failed", "id", id, "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.store.HealthCheck(r.Context()); err != nil {
		s.logger.Warnw("health check failed", "error", err)
		s.respondJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:      "ERROR",
			Message:     "Server is running but database connection failed",
			Database:    "Disconnected",
			Timestamp:   now,
			Environment: s.cfg.Env,
		})
		return
	}

	s.respondJSON(w, http.StatusOK, healthResponse{
		Status:      "OK",
		Message:     "Server is running",
		Database:    "Connected",
		Timestamp:   now,
		Environment: s.cfg.Env,
	})
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":     "Backend is working!",
		"environment": s.cfg.Env,
		"port":        s.cfg.Port,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Media Shelf API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health": "/api/health",
			"test":   "/api/test",
			"media":  "/api/media",
		},
	})
}

func decodeIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Errorw("encode response failed", "error", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		s.respondError(w, http.StatusBadRequest, "malformed JSON payload")
	case errors.As(err, &typeError):
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid value for field %s", typeError.Field))
	case errors.Is(err, io.EOF):
		s.respondError(w, http.StatusBadRequest, "request body cannot be empty")
	default:
		s.respondError(w, http.StatusBadRequest, "unable to parse request body")
	}
}
