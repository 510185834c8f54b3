package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediashelf/mediashelf/internal/domain"
	"github.com/mediashelf/mediashelf/internal/validate"
)

func newStub(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api, err := New(srv.URL+"/api", 2*time.Second, nil)
	require.NoError(t, err)
	return api, srv
}

func TestListMediaQuerySerialization(t *testing.T) {
	var gotQuery map[string][]string
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/media", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(ListResult{
			Media:      []domain.MediaRecord{},
			Pagination: Pagination{CurrentPage: 2, TotalPages: 4, TotalCount: 31, HasNextPage: true},
		})
	})

	result, err := api.ListMedia(context.Background(), 2, 10, Filters{
		Search: "nolan",
		Type:   "MOVIE",
		Year:   "2010",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"nolan"}, gotQuery["search"])
	assert.Equal(t, []string{"MOVIE"}, gotQuery["type"])
	assert.Equal(t, []string{"2010"}, gotQuery["year"])
	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, int64(31), result.Pagination.TotalCount)
	assert.True(t, result.Pagination.HasNextPage)
}

func TestListMediaOmitsAllSentinelAndEmptyFilters(t *testing.T) {
	var gotQuery map[string][]string
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(ListResult{})
	})

	_, err := api.ListMedia(context.Background(), 0, 0, Filters{Type: TypeAll})
	require.NoError(t, err)

	assert.NotContains(t, gotQuery, "type")
	assert.NotContains(t, gotQuery, "page")
	assert.NotContains(t, gotQuery, "limit")
	assert.NotContains(t, gotQuery, "search")
	assert.NotContains(t, gotQuery, "year")
}

func TestCreateMedia(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/media", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var input domain.MediaInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		require.Equal(t, "Dune", input.Title)

		now := time.Now().UTC()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.MediaRecord{
			ID:        7,
			Title:     input.Title,
			Type:      domain.MediaTypeMovie,
			Director:  input.Director,
			Budget:    input.Budget,
			Location:  input.Location,
			Duration:  input.Duration,
			YearTime:  input.YearTime,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})

	record, err := api.CreateMedia(context.Background(), domain.MediaInput{
		Title:    "Dune",
		Type:     "MOVIE",
		Director: "Denis Villeneuve",
		Budget:   "$165M",
		Location: "Jordan, Abu Dhabi",
		Duration: "155 min",
		YearTime: "2021",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, domain.MediaTypeMovie, record.Type)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestCreateMediaValidationError(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": []validate.FieldError{
				{Field: "title", Message: "Title is required"},
				{Field: "yearTime", Message: "Year/Time is required"},
			},
		})
	})

	_, err := api.CreateMedia(context.Background(), domain.MediaInput{})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "want *ValidationError, got %T", err)
	require.Len(t, vErr.Fields, 2)
	assert.Equal(t, "title", vErr.Fields[0].Field)
	assert.Contains(t, vErr.Error(), "Year/Time is required")
}

func TestGenericBadRequest(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid page value"})
	})

	_, err := api.ListMedia(context.Background(), 1, 10, Filters{})
	require.Error(t, err)

	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "generic 400 must not be a ValidationError")
	assert.Contains(t, err.Error(), "invalid page value")
}

func TestUpdateMediaNotFound(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/media/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "media not found"})
	})

	_, err := api.UpdateMedia(context.Background(), 42, domain.MediaInput{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMedia(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/media/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, api.DeleteMedia(context.Background(), 3))
}

func TestHealthDegraded(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(HealthStatus{
			Status:   "ERROR",
			Message:  "Server is running but database connection failed",
			Database: "Disconnected",
		})
	})

	status, err := api.Health(context.Background())
	require.NoError(t, err, "degraded health is a payload, not an error")
	assert.Equal(t, "ERROR", status.Status)
	assert.Equal(t, "Disconnected", status.Database)
}

func TestUnexpectedStatus(t *testing.T) {
	api, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to fetch media"})
	})

	_, err := api.ListMedia(context.Background(), 1, 10, Filters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
