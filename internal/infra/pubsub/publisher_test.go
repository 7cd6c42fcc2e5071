package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hafood/config"
	"hafood/internal/domain/constants"
	"hafood/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestEvent() *service.CartEvent {
	return &service.CartEvent{
		RequestID:  "req-123",
		EventID:    "evt-1",
		SessionID:  "session-1",
		Action:     "ADD_ITEM",
		ProductSKU: "A1",
		TotalItems: 2,
		TotalPrice: decimal.NewFromInt(200000),
		OccurredAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishCartEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, createTestLogger())
	err := publisher.PublishCartEvent(context.Background(), createTestEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "ADD_ITEM", received.Message.Attributes["action"])
	assert.Equal(t, "session-1", received.Message.Attributes["session_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.CartEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "A1", event.ProductSKU)
	assert.True(t, decimal.NewFromInt(200000).Equal(event.TotalPrice))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, createTestLogger())
	err := publisher.PublishCartEvent(context.Background(), createTestEvent())

	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "cart-events"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: createTestLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestLocalHTTPPublisher_RejectionCarriesWorkerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("malformed cart event\n"))
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, createTestLogger())
	err := publisher.PublishCartEvent(context.Background(), createTestEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "malformed cart event")
}

func TestEncodePushMessage(t *testing.T) {
	body, err := encodePushMessage(createTestEvent())
	require.NoError(t, err)

	var msg PushMessage
	require.NoError(t, json.Unmarshal(body, &msg))

	assert.Equal(t, localSubscription, msg.Subscription)
	assert.Equal(t, "2026-03-01T09:30:00Z", msg.Message.PublishTime)
	assert.Equal(t, "req-123", msg.Message.Attributes["request_id"])
}
