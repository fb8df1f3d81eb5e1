package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsync/pkg/models"
)

func TestListBillsNormalizesBothResponseShapes(t *testing.T) {
	// One bill with flat denormalized names, one with populated references.
	payload := `[
		{"_id":"b1","memberId":"m1","memberName":"Asha Rao","gymId":"g1","gymName":"FitSync Central","plan":"Basic","amount":1500,"dueDate":"2026-09-30","status":"Pending"},
		{"_id":"b2","memberId":{"_id":"m2","name":"Ravi Kumar"},"gymId":{"_id":"g2","gymName":"FitSync North"},"plan":"Premium","amount":2500,"dueDate":"2026-09-15T00:00:00.000Z","status":"Paid"}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/billing", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	bills, err := client.ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 2)

	assert.Equal(t, "Asha Rao", bills[0].MemberName)
	assert.Equal(t, "m1", bills[0].Member.ID)

	// The populated shape collapses to the same flat form.
	assert.Equal(t, "Ravi Kumar", bills[1].MemberName)
	assert.Equal(t, "m2", bills[1].Member.ID)
	assert.Equal(t, "FitSync North", bills[1].GymName)
	assert.Equal(t, "2026-09-15", bills[1].DueDate.String())
}

func TestCreateBillSendsIdempotencyKeyAndContentType(t *testing.T) {
	var gotKey, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(IdempotencyHeader)
		gotContentType = r.Header.Get("Content-Type")

		var input models.BillInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Bill{ID: "b1", MemberName: input.MemberName, Amount: input.Amount, Status: models.BillStatusPending})
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	bill, err := client.CreateBill(context.Background(), models.BillInput{
		MemberID: "m1", MemberName: "Asha Rao", GymID: "g1", Plan: models.PlanBasic, Amount: 1500,
	}, "key-123")
	require.NoError(t, err)

	assert.Equal(t, "b1", bill.ID)
	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, "application/json", gotContentType)
}

func TestAPIErrorMapping(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		body      string
		sentinel  error
		wantInMsg string
	}{
		{"not found", 404, `{"message":"Bill not found"}`, ErrNotFound, "Bill not found"},
		{"validation", 400, `{"message":"gymId is required"}`, ErrValidation, "gymId is required"},
		{"unprocessable", 422, `{"message":"invalid plan"}`, ErrValidation, "invalid plan"},
		{"unauthorized", 401, `{"message":"token expired"}`, ErrUnauthorized, "token expired"},
		{"server error without body", 500, ``, nil, "500"},
		{"error field fallback", 400, `{"error":"bad input"}`, ErrValidation, "bad input"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := New(server.URL + "/api")
			_, err := client.ListBills(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.Error(), tc.wantInMsg)

			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
			assert.NotErrorIs(t, err, ErrConnectivity, "an HTTP response is not a connectivity failure")
		})
	}
}

func TestConnectivityErrorCarriesGuidance(t *testing.T) {
	// A server that is already closed refuses connections immediately.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(url + "/api")
	_, err := client.ListBills(context.Background())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrConnectivity)
	assert.NotErrorIs(t, err, ErrNotFound)

	var connErr *ConnectivityError
	require.ErrorAs(t, err, &connErr)
	assert.Contains(t, connErr.Error(), "backend server is running",
		"connectivity failures must tell the operator to start the backend")
}

func TestCanceledContextIsNotConnectivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListBills(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrConnectivity))
}

func TestGenerateInvoiceUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/billing/generate-invoice/b1", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"invoice":{"invoiceNumber":"INV-001","memberName":"Asha Rao","amount":2500,"plan":"Premium","status":"Pending"}}`))
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	invoice, err := client.GenerateInvoice(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "INV-001", invoice.InvoiceNumber)
	assert.Equal(t, int64(2500), invoice.Amount)
}

func TestSendReminderDefaultsMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	message, err := client.SendReminder(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Reminder sent successfully", message)
}

func TestTrainerFilterQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Weight Training", r.URL.Query().Get("specialization"))
		assert.Equal(t, "asha", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	_, err := client.ListTrainers(context.Background(), TrainerFilter{
		Specialization: "Weight Training",
		Search:         "asha",
	})
	require.NoError(t, err)
}

func TestHealth(t *testing.T) {
	t.Run("backend up", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"mongodbReady":true}`))
		}))
		defer server.Close()

		status := New(server.URL + "/api").Health(context.Background())
		assert.True(t, status.Connected)
		assert.True(t, status.DatabaseReady)
	})

	t.Run("backend down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		status := New(url + "/api").Health(context.Background())
		assert.False(t, status.Connected)
		assert.Contains(t, status.Message, "not responding")
	})
}

func TestAuthTokenHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL+"/api", WithToken("tok-1"))
	_, err := client.ListGyms(context.Background())
	require.NoError(t, err)
}
