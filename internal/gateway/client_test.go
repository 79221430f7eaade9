package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Submission-Id"))

		// The wire format is a flat JSON object keyed by field id.
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Estates Renewal", body["initiativeName"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"receiptId": "WF-1042"})
	}))
	defer srv.Close()

	client := NewWorkflowClient(testConfig(srv.URL), NoopObserver{})
	ack, err := client.Submit(context.Background(), testutil.NewTestSnapshot(nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, ack.StatusCode)
	assert.Equal(t, "WF-1042", ack.ReceiptID)
}

func TestSubmit_AcceptsAnyTwoHundred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewWorkflowClient(testConfig(srv.URL), NoopObserver{})
	ack, err := client.Submit(context.Background(), testutil.NewTestSnapshot(nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, ack.StatusCode)
	// No receipt in the body: the client-side submission id stands in.
	assert.NotEmpty(t, ack.ReceiptID)
}

func TestSubmit_EmptyPayloadBlockedBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewWorkflowClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Submit(context.Background(), domain.FullSnapshot{})

	assert.ErrorIs(t, err, ErrEmptyPayload)
	assert.Zero(t, calls.Load())
}

func TestSubmit_EndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow disabled", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWorkflowClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Submit(context.Background(), testutil.NewTestSnapshot(nil))

	assert.ErrorIs(t, err, ErrEndpoint)
	assert.Contains(t, err.Error(), "502")
}

func TestSubmit_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	client := NewWorkflowClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Submit(context.Background(), testutil.NewTestSnapshot(nil))

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestSubmit_ObserverSeesOutcomes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	var sb strings.Builder
	client := NewWorkflowClient(testConfig(srv.URL), NewLogObserver(&sb))
	_, err := client.Submit(context.Background(), testutil.NewTestSnapshot(nil))
	require.Error(t, err)

	assert.Contains(t, sb.String(), "status=err:endpoint")
	assert.Contains(t, sb.String(), "http=403")
}
