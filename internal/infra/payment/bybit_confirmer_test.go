package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newConfirmer(t *testing.T, baseURL string) *bybitConfirmer {
	t.Helper()

	cfg := &config.Config{
		Payment: &config.PaymentConfig{
			BaseURL:   baseURL,
			APIKey:    "test-key",
			APISecret: "test-secret",
			Timeout:   time.Second,
		},
	}

	confirmer := NewBybitConfirmer(cfg, discardLogger())
	require.NotNil(t, confirmer)

	return confirmer.(*bybitConfirmer)
}

func TestNewBybitConfirmerNilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewBybitConfirmer(&config.Config{}, discardLogger()))
	assert.Nil(t, NewBybitConfirmer(&config.Config{Payment: &config.PaymentConfig{BaseURL: "http://x"}}, discardLogger()))
}

func TestConfirmMatchesSuccessfulRecord(t *testing.T) {
	order := &entity.Order{ID: uuid.New()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fundRecordsPath, r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.NotEmpty(t, r.URL.Query().Get("sign"))
		assert.NotEmpty(t, r.URL.Query().Get("timestamp"))

		w.Write([]byte(`{"result":{"data":[
			{"note":"unrelated","status":"success"},
			{"note":"` + order.ID.String() + `","status":"success"}
		]}}`))
	}))
	defer server.Close()

	confirmer := newConfirmer(t, server.URL)

	confirmed, err := confirmer.Confirm(context.Background(), order)
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestConfirmIgnoresNonSuccessfulRecord(t *testing.T) {
	order := &entity.Order{ID: uuid.New()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"data":[{"note":"` + order.ID.String() + `","status":"pending"}]}}`))
	}))
	defer server.Close()

	confirmer := newConfirmer(t, server.URL)

	confirmed, err := confirmer.Confirm(context.Background(), order)
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestConfirmNoMatchingRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"data":[]}}`))
	}))
	defer server.Close()

	confirmer := newConfirmer(t, server.URL)

	confirmed, err := confirmer.Confirm(context.Background(), &entity.Order{ID: uuid.New()})
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestConfirmErrorOnHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	confirmer := newConfirmer(t, server.URL)

	confirmed, err := confirmer.Confirm(context.Background(), &entity.Order{ID: uuid.New()})
	require.Error(t, err)
	assert.False(t, confirmed)
}

func TestConfirmErrorOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	confirmer := newConfirmer(t, server.URL)

	confirmed, err := confirmer.Confirm(context.Background(), &entity.Order{ID: uuid.New()})
	require.Error(t, err)
	assert.False(t, confirmed)
}

func TestConfirmRequiresOrderID(t *testing.T) {
	confirmer := newConfirmer(t, "http://unused")

	_, err := confirmer.Confirm(context.Background(), nil)
	assert.Error(t, err)

	_, err = confirmer.Confirm(context.Background(), &entity.Order{})
	assert.Error(t, err)
}

func TestSignIsDeterministic(t *testing.T) {
	confirmer := newConfirmer(t, "http://unused")

	params := map[string]string{"b": "2", "a": "1"}
	first := confirmer.sign(params)
	second := confirmer.sign(params)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}
