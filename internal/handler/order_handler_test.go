package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdesk/internal/store"
	"orderdesk/internal/transport"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	st := store.New(t.TempDir())
	if err := st.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return transport.NewRouter(st)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const validOrderBody = `{
	"customer": {"fullName": "A", "phone": "1"},
	"address": {"houseNo": "12B", "street": "MG Road", "city": "Pune", "state": "MH", "pincode": "411001"},
	"items": [{"sku": "x", "qty": 2}],
	"totalAmount": 40
}`

func TestCreateOrderEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"success", validOrderBody, http.StatusCreated},
		{"invalid_json", `{not json}`, http.StatusBadRequest},
		{"missing_customer", `{"address": {"city": "Pune"}, "items": []}`, http.StatusBadRequest},
		{"missing_items", `{"customer": {"fullName": "A"}, "address": {"city": "Pune"}}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			rec := doRequest(t, srv, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var o store.Order
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
				assert.Equal(t, int64(1001), o.ID)
				assert.Equal(t, "Pending", o.Status)
				assert.Equal(t, "COD", o.PaymentMethod)
			}
		})
	}
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/orders", validOrderBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created store.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(t, srv, http.MethodGet, "/api/orders/1001", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodPatch, "/api/orders/1001", `{"status": "Shipped"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated store.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, created.Notes, updated.Notes)

	rec = doRequest(t, srv, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var orders []store.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	rec = doRequest(t, srv, http.MethodDelete, "/api/orders/1001", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/orders/1001", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderEndpoints_BadID(t *testing.T) {
	srv := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		rec := doRequest(t, srv, method, "/api/orders/abc", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, method)
	}
}

func TestOrderEndpoints_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/orders/4242", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodPatch, "/api/orders/4242", `{"status": "Shipped"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/api/orders/4242", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
