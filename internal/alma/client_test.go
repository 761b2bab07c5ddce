package alma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(Options{
		BaseURL:  srv.URL,
		APIKey:   "secret",
		Library:  "MAIN",
		CircDesk: "DESK",
		Timeout:  2 * time.Second,
	}, nil)
}

func TestCreateLoan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/almaws/v1/users/jdoe/loans", r.URL.Path)
		assert.Equal(t, "39999000123", r.URL.Query().Get("item_barcode"))
		assert.Equal(t, "apikey secret", r.Header.Get("Authorization"))

		var body createLoanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "DESK", body.CircDesk.Value)
		assert.Equal(t, "MAIN", body.Library.Value)

		_ = json.NewEncoder(w).Encode(map[string]string{"loan_id": "7331"})
	})

	id, err := c.CreateLoan(context.Background(), "jdoe", "39999000123")
	require.NoError(t, err)
	assert.Equal(t, "7331", id)
}

func TestCreateLoan_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorsExist":true,"errorList":{"error":[{"errorCode":"401153","errorMessage":"Item cannot be loaned"}]}}`))
	})

	_, err := c.CreateLoan(context.Background(), "jdoe", "x")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "401153", apiErr.Code)
	assert.Equal(t, "Item cannot be loaned", apiErr.Message)
}

func TestCreateLoan_EmptyLoanID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.CreateLoan(context.Background(), "jdoe", "x")
	assert.Error(t, err)
}

func TestReturnLoan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/almaws/v1/bibs/991/holdings/ALL/items/231", r.URL.Path)
		assert.Equal(t, "scan", r.URL.Query().Get("op"))
		assert.Equal(t, "DESK", r.URL.Query().Get("circ_desk"))
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, c.ReturnLoan(context.Background(), "991", "231"))
}

func TestIsAvailable_OverlapIsHalfOpen(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/almaws/v1/bibs/bib123/booking-availability", r.URL.Path)
		assert.Equal(t, base.Format(time.RFC3339), r.URL.Query().Get("from"))

		_ = json.NewEncoder(w).Encode(bookingAvailability{Periods: []bookingPeriod{
			{FromTime: base.Add(24 * time.Hour), ToTime: base.Add(25 * time.Hour)},
		}})
	})

	intervals := []recurrence.Interval{
		{Start: base, End: base.Add(time.Hour)},
		{Start: base.Add(24 * time.Hour), End: base.Add(25 * time.Hour)},
		{Start: base.Add(25 * time.Hour), End: base.Add(26 * time.Hour)},
	}

	got, err := c.IsAvailable(context.Background(), "bib123", intervals)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestIsAvailable_NoIntervals(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	got, err := c.IsAvailable(context.Background(), "bib", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestIsAvailable_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	_, err := c.IsAvailable(context.Background(), "bib", []recurrence.Interval{{Start: base, End: base.Add(time.Hour)}})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
}

func TestIsAvailable_UsesRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"booking_availability":[]}`))
	})
	c.UseRedisCache(rdb, time.Minute)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	intervals := []recurrence.Interval{{Start: base, End: base.Add(time.Hour)}}

	for i := 0; i < 3; i++ {
		got, err := c.IsAvailable(context.Background(), "bib", intervals)
		require.NoError(t, err)
		assert.Equal(t, []bool{true}, got)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
