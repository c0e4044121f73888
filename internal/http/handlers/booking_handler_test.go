package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Harshdalal22/ssktrucker/internal/http/handlers"
	"github.com/Harshdalal22/ssktrucker/internal/modules/booking"
)

// buildTestRouter wires a minimal Gin engine with the booking handler over an
// in-memory store.
func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := booking.NewService(booking.NewMemStore())
	h := handlers.NewBookingHandler(svc)
	r := gin.New()
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.List)
	r.GET("/api/bookings/:id", h.Get)
	r.GET("/api/customers/:id/active-booking", h.ActiveForCustomer)
	r.POST("/api/bookings/:id/bids", h.SubmitBid)
	r.POST("/api/bookings/:id/accept", h.AcceptBid)
	r.POST("/api/bookings/:id/start", h.Start)
	r.POST("/api/bookings/:id/complete", h.Complete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func createBookingJSON() map[string]any {
	return map[string]any{
		"customer_id":     "cust-1",
		"pickup_location": "Nagpur",
		"drop_location":   "Pune",
		"truck_type":      "mini",
		"material_type":   "Steel Coils",
		"weight_kg":       900.0,
		"budget":          15000,
		"distance_km":     120.0,
		"date":            "2026-09-02",
	}
}

func mustCreateBookingHTTP(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/bookings", createBookingJSON())
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: got %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("create booking: missing id in %v", body)
	}
	return id
}

func submitBidJSON() map[string]any {
	return map[string]any{
		"driver_id":   "drv-1",
		"driver_name": "Ramesh",
		"amount":      14000,
		"rating":      4.6,
		"eta_minutes": 45,
		"vehicle_no":  "MH31AB1234",
	}
}

func TestCreateBookingHTTP(t *testing.T) {
	r := buildTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/bookings", createBookingJSON())
	if w.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != string(booking.StatusBidding) {
		t.Fatalf("got status %v, want %s", body["status"], booking.StatusBidding)
	}
	if body["truck_type_label"] != booking.TruckTypeLabels[booking.TruckMini] {
		t.Fatalf("got label %v", body["truck_type_label"])
	}
}

func TestCreateBookingRejectsBadPayload(t *testing.T) {
	r := buildTestRouter()

	payload := createBookingJSON()
	payload["truck_type"] = "hovercraft"
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", payload); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown truck type: got %d, want 400", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed json: got %d, want 400", w.Code)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	r := buildTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/bookings/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

func TestBidAndAcceptHTTP(t *testing.T) {
	r := buildTestRouter()
	id := mustCreateBookingHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/bids", submitBidJSON())
	if w.Code != http.StatusCreated {
		t.Fatalf("submit bid: got %d, body %s", w.Code, w.Body.String())
	}
	bidID, _ := decodeBody(t, w)["id"].(string)
	if bidID == "" {
		t.Fatal("submit bid: missing bid id")
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", map[string]any{"bid_id": bidID})
	if w.Code != http.StatusOK {
		t.Fatalf("accept: got %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != string(booking.StatusAccepted) {
		t.Fatalf("got status %v, want %s", body["status"], booking.StatusAccepted)
	}
	if body["accepted_bid_id"] != bidID {
		t.Fatalf("got accepted_bid_id %v, want %s", body["accepted_bid_id"], bidID)
	}
}

func TestAcceptUnknownBidHTTP(t *testing.T) {
	r := buildTestRouter()
	id := mustCreateBookingHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", map[string]any{"bid_id": "ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404, body %s", w.Code, w.Body.String())
	}
}

func TestSecondAcceptIsConflictHTTP(t *testing.T) {
	r := buildTestRouter()
	id := mustCreateBookingHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/bids", submitBidJSON())
	bidID, _ := decodeBody(t, w)["id"].(string)

	second := submitBidJSON()
	second["driver_id"] = "drv-2"
	w = doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/bids", second)
	otherBidID, _ := decodeBody(t, w)["id"].(string)

	if w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", map[string]any{"bid_id": bidID}); w.Code != http.StatusOK {
		t.Fatalf("first accept: got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", map[string]any{"bid_id": otherBidID}); w.Code != http.StatusConflict {
		t.Fatalf("second accept: got %d, want 409, body %s", w.Code, w.Body.String())
	}
}

func TestBidOnClosedBookingHTTP(t *testing.T) {
	r := buildTestRouter()
	id := mustCreateBookingHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/bids", submitBidJSON())
	bidID, _ := decodeBody(t, w)["id"].(string)
	doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", map[string]any{"bid_id": bidID})

	late := submitBidJSON()
	late["driver_id"] = "drv-late"
	if w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/bids", late); w.Code != http.StatusConflict {
		t.Fatalf("late bid: got %d, want 409, body %s", w.Code, w.Body.String())
	}
}

func TestFullLifecycleHTTP(t *testing.T) {
	r := buildTestRouter()
	id := mustCreateBookingHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/bids", submitBidJSON())
	bidID, _ := decodeBody(t, w)["id"].(string)
	doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", map[string]any{"bid_id": bidID})

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/bookings/%s/start?driver_id=drv-1", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start: got %d, body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/bookings/%s/complete?driver_id=drv-1", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete: got %d, body %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["status"]; got != string(booking.StatusCompleted) {
		t.Fatalf("got status %v, want %s", got, booking.StatusCompleted)
	}

	// Completing again must be rejected as an invalid transition.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/bookings/%s/complete?driver_id=drv-1", id), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("double complete: got %d, want 409", w.Code)
	}
}

func TestActiveBookingForCustomerHTTP(t *testing.T) {
	r := buildTestRouter()
	id := mustCreateBookingHTTP(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/customers/cust-1/active-booking", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, body %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["id"]; got != id {
		t.Fatalf("got id %v, want %s", got, id)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/customers/stranger/active-booking", nil); w.Code != http.StatusNotFound {
		t.Fatalf("stranger: got %d, want 404", w.Code)
	}
}
