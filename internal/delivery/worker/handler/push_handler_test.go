package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, worker *config.WorkerConfig) (*PushHandler, *mockUC.MockOrderEventUsecase) {
	eventUC := mockUC.NewMockOrderEventUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       &config.Config{Worker: worker},
		Logger:       slog.New(slog.DiscardHandler),
		OrderEventUC: eventUC,
	})

	return h, eventUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1234"
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event *entity.OrderEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push/order-events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func placedEvent() *entity.OrderEvent {
	return &entity.OrderEvent{
		Type:        entity.OrderEventPlaced,
		OrderID:     uuid.New(),
		UserID:      uuid.New(),
		UniqueCode:  "ORD01J9Z3K9QF4M2V7T6N5R4P3Q2B",
		Status:      entity.OrderStatusPending,
		TotalAmount: "250.00",
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := placedEvent()

	t.Run("delivers the event with the published request id", func(t *testing.T) {
		h, eventUC := newPushHandler(t, nil)
		eventUC.EXPECT().
			HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *entity.OrderEvent) bool {
				return got.OrderID == event.OrderID && got.Type == entity.OrderEventPlaced
			})).
			RunAndReturn(func(ctx context.Context, _ *entity.OrderEvent) error {
				assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := doPush(h, pushBody(t, encodedEvent(t, event), map[string]string{"request_id": "req-42"}), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed payloads are acknowledged", func(t *testing.T) {
		h, _ := newPushHandler(t, nil)

		for name, body := range map[string]string{
			"not json":       "{",
			"not base64":     pushBody(t, "%%%", nil),
			"not an event":   pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil),
			"missing fields": pushBody(t, base64.StdEncoding.EncodeToString([]byte(`{"type":"order.placed"}`)), nil),
		} {
			assert.Equal(t, http.StatusNoContent, doPush(h, body, nil).Code, name)
		}
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, eventUC := newPushHandler(t, nil)
		eventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))

		rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("client side failure is dropped", func(t *testing.T) {
		h, eventUC := newPushHandler(t, nil)
		eventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(domainerrors.ErrOrderNotFound)

		rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestPushHandler_PushAuth(t *testing.T) {
	event := placedEvent()
	worker := &config.WorkerConfig{PushAuth: true, PushAudience: "https://worker.example.com/push/order-events"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newPushHandler(t, worker)

		rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for the configured audience", func(t *testing.T) {
		h, eventUC := newPushHandler(t, worker)
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, worker.PushAudience, audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		eventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil)

		rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newPushHandler(t, worker)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
