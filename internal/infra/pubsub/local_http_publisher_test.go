package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/constants"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *service.PharmacyDutyEvent {
	return &service.PharmacyDutyEvent{
		RequestID:  "req-123",
		ActorID:    "user-1",
		EventID:    "evt-1",
		PharmacyID: "6650f1c2a1b2c3d4e5f60718",
		Name:       "Pharmacie Atlas",
		City:       "Casablanca",
		Latitude:   33.5731,
		Longitude:  -7.5898,
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := newTestEvent()

	require.NoError(t, publisher.PublishPharmacyDutyEvent(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.EventTypePharmacyOnDuty, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, event.PharmacyID, received.Message.Attributes[constants.AttrPharmacyID])
	assert.Equal(t, "req-123", received.Message.Attributes[constants.AttrRequestID])
	assert.Equal(t, "user-1", received.Message.Attributes[constants.AttrActorID])
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.PharmacyDutyEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishPharmacyDutyEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestLocalHTTPPublisher_UnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishPharmacyDutyEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "failed to reach push endpoint")
}

func TestEventAttributes_AnonymousUntracedEvent(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""
	event.ActorID = ""

	attributes := eventAttributes(event)

	assert.Equal(t, map[string]string{
		constants.AttrEventType:  constants.EventTypePharmacyOnDuty,
		constants.AttrPharmacyID: event.PharmacyID,
	}, attributes)
}
