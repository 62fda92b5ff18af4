package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/propbrief/internal/app/config"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
)

func testSubmission() payload.Submission {
	p := payload.NewSaleBrief(
		payload.Location{State: "Lagos", LocalGovernment: "Ikeja", Area: "Alausa"},
		25000000,
		payload.PropertyDetails{Category: model.CategoryLand},
		[]string{"C of O"}, "", payload.Contact{FullName: "Ada Obi"}, model.RoleOwner,
	)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	return payload.NewSubmission(p, "", "I agree", now, bytes.NewReader(make([]byte, 16)))
}

func TestHTTPSubmitterSuccess(t *testing.T) {
	var got map[string]any
	var idem string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		idem = r.Header.Get("Idempotency-Key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"brief-991"}`))
	}))
	defer srv.Close()

	sub := testSubmission()
	receipt, err := NewHTTPSubmitter(srv.Client(), srv.URL, time.Second).Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, sub.Reference, receipt.Reference)
	assert.Equal(t, "brief-991", receipt.RemoteID)
	assert.Equal(t, srv.URL, receipt.Destination)
	assert.Equal(t, sub.Reference, idem)
	assert.Equal(t, "sale-brief", got["variant"])
	assert.Equal(t, "I agree", got["disclosure"])
	inner, ok := got["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(25000000), inner["price"])
}

func TestHTTPSubmitterRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("x", 2000), http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewHTTPSubmitter(srv.Client(), srv.URL, time.Second).Submit(context.Background(), testSubmission())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Len(t, statusErr.Body, maxErrorBody)
}

func TestHTTPSubmitterTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPSubmitter(srv.Client(), srv.URL, 50*time.Millisecond).Submit(context.Background(), testSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPSubmitterPlainTextReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("accepted"))
	}))
	defer srv.Close()

	receipt, err := NewHTTPSubmitter(srv.Client(), srv.URL, 0).Submit(context.Background(), testSubmission())
	require.NoError(t, err)
	assert.Empty(t, receipt.RemoteID)
}

func TestOutboxSubmitter(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewOutboxSubmitter(fs, "/spool")
	sub := testSubmission()

	receipt, err := s.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "/spool/"+sub.Reference+".json", receipt.Destination)

	data, err := afero.ReadFile(fs, receipt.Destination)
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, sub.Reference, stored["reference"])

	_, err = s.Submit(context.Background(), sub)
	assert.Error(t, err, "duplicate reference")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Submit(ctx, sub)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Submit(context.Background(), payload.Submission{})
	assert.Error(t, err)
}

func TestNewPicksSubmitter(t *testing.T) {
	fs := afero.NewMemMapFs()

	outbox := config.NewAppConfig("/h", "", 15, "outbox", "", "", ":8080", "warn", "default", "")
	_, ok := New(outbox, fs).(*OutboxSubmitter)
	assert.True(t, ok)

	remote := config.NewAppConfig("/h", "https://api.example.com", 15, "outbox", "", "", ":8080", "warn", "json", "/h/setting.json")
	_, ok = New(remote, fs).(*HTTPSubmitter)
	assert.True(t, ok)
}
