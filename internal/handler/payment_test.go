package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkeasy/parkeasy-api/internal/model"
	"github.com/parkeasy/parkeasy-api/internal/repository"
)

type paymentStoreMock struct {
	createFn  func(ctx context.Context, userID, sessionID uint64, amount float64, method string, now time.Time) (model.Payment, error)
	historyFn func(ctx context.Context, userID uint64, limit int) ([]repository.PaymentDetail, error)
}

func (m *paymentStoreMock) Create(ctx context.Context, userID, sessionID uint64, amount float64, method string, now time.Time) (model.Payment, error) {
	return m.createFn(ctx, userID, sessionID, amount, method, now)
}

func (m *paymentStoreMock) HistoryByUser(ctx context.Context, userID uint64, limit int) ([]repository.PaymentDetail, error) {
	return m.historyFn(ctx, userID, limit)
}

func TestPaymentCreate(t *testing.T) {
	store := &paymentStoreMock{
		createFn: func(_ context.Context, userID, sessionID uint64, amount float64, method string, now time.Time) (model.Payment, error) {
			assert.Equal(t, uint64(3), userID)
			assert.Equal(t, uint64(7), sessionID)
			assert.Equal(t, 0.83, amount)
			assert.Equal(t, "card", method)
			return model.Payment{
				ID: 1, UserID: userID, SessionID: sessionID, Amount: amount,
				PaymentMethod: method, PaymentDate: now, Status: "completed",
			}, nil
		},
	}
	h := NewPaymentHandler(store)

	c, rec := newJSONCtx(http.MethodPost, "/payments",
		`{"session_id":7,"amount":0.83,"payment_method":"card"}`, 3)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestPaymentCreateValidation(t *testing.T) {
	h := NewPaymentHandler(&paymentStoreMock{})

	for name, body := range map[string]string{
		"missing session": `{"amount":1,"payment_method":"card"}`,
		"zero amount":     `{"session_id":7,"amount":0,"payment_method":"card"}`,
		"missing method":  `{"session_id":7,"amount":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := newJSONCtx(http.MethodPost, "/payments", body, 3)
			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"validation"`)
		})
	}
}

func TestPaymentCreateSessionNotFound(t *testing.T) {
	store := &paymentStoreMock{
		createFn: func(context.Context, uint64, uint64, float64, string, time.Time) (model.Payment, error) {
			return model.Payment{}, repository.ErrSessionNotFound
		},
	}
	h := NewPaymentHandler(store)

	c, rec := newJSONCtx(http.MethodPost, "/payments",
		`{"session_id":99,"amount":1,"payment_method":"card"}`, 3)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"session_not_found"`)
}

func TestPaymentHistory(t *testing.T) {
	end := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	store := &paymentStoreMock{
		historyFn: func(_ context.Context, userID uint64, limit int) ([]repository.PaymentDetail, error) {
			assert.Equal(t, uint64(3), userID)
			assert.Equal(t, 20, limit)
			return []repository.PaymentDetail{{
				Payment: model.Payment{
					ID: 1, UserID: 3, SessionID: 7, Amount: 0.83,
					PaymentMethod: "card", PaymentDate: end, Status: "completed",
				},
				StartTime:   end.Add(-20 * time.Minute),
				EndTime:     &end,
				SpaceNumber: "A-02",
			}}, nil
		},
	}
	h := NewPaymentHandler(store)

	c, rec := newJSONCtx(http.MethodGet, "/payments/history", "", 3)
	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"space_number":"A-02"`)
}
