package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
)

type fakeChatter struct {
	reply   string
	err     error
	panics  bool
	history []contractx.Turn
}

func (f *fakeChatter) Chat(ctx context.Context, history []contractx.Turn) (string, error) {
	if f.panics {
		panic("model client exploded")
	}
	f.history = history
	return f.reply, f.err
}

type fakeLedger struct {
	orders   []storex.Order
	requests []storex.ServiceRequest
	err      error
}

func (f *fakeLedger) ListOrders(context.Context) ([]storex.Order, error) {
	return f.orders, f.err
}

func (f *fakeLedger) ListServiceRequests(context.Context) ([]storex.ServiceRequest, error) {
	return f.requests, f.err
}

func newTestServer(t *testing.T, chat *fakeChatter, ledger *fakeLedger) http.Handler {
	t.Helper()
	s, err := New(Config{}, chat, ledger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChatOK(t *testing.T) {
	t.Parallel()

	chat := &fakeChatter{reply: "Check-in time is 2:00 PM."}
	h := newTestServer(t, chat, &fakeLedger{})

	rec := do(h, http.MethodPost, "/chat", `{"history":[{"role":"assistant","content":"Hi"},{"role":"user","content":"When is check-in?"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out["response"] != "Check-in time is 2:00 PM." {
		t.Fatalf("unexpected body: %v", out)
	}
	if len(chat.history) != 2 || chat.history[1].Role != "user" || chat.history[1].Content != "When is check-in?" {
		t.Fatalf("history not passed through: %+v", chat.history)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatal("expected request id header")
	}
}

func TestChatInternalErrorIs500(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeChatter{err: errors.New("graph failed")}, &fakeLedger{})

	rec := do(h, http.MethodPost, "/chat", `{"history":[{"role":"user","content":"hi"}]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out["detail"] != "graph failed" {
		t.Fatalf("unexpected detail: %v", out)
	}
}

func TestChatPanicIs500(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeChatter{panics: true}, &fakeLedger{})

	rec := do(h, http.MethodPost, "/chat", `{"history":[]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Fatalf("expected detail body, got %s", rec.Body.String())
	}
}

func TestChatBadBody(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeChatter{}, &fakeLedger{})

	rec := do(h, http.MethodPost, "/chat", `{"history":"nope"`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestListOrders(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	ledger := &fakeLedger{orders: []storex.Order{{
		ID:          1,
		RoomNumber:  "305",
		Items:       []storex.OrderLine{{Name: "Masala Dosa", Quantity: 2, Price: 120}},
		TotalAmount: 240,
		Status:      storex.OrderPending,
		CreatedAt:   created,
	}}}
	h := newTestServer(t, &fakeChatter{}, ledger)

	rec := do(h, http.MethodGet, "/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("unexpected orders: %v", out)
	}
	o := out[0]
	if o["room_number"] != "305" || o["total_amount"] != 240.0 || o["status"] != "Pending" {
		t.Fatalf("unexpected order: %v", o)
	}
	items, _ := o["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("unexpected items: %v", o["items"])
	}
	line, _ := items[0].(map[string]any)
	if line["name"] != "Masala Dosa" || line["quantity"] != 2.0 || line["price"] != 120.0 {
		t.Fatalf("unexpected line: %v", line)
	}
	if o["created_at"] != "2025-01-02T03:04:05Z" {
		t.Fatalf("unexpected created_at: %v", o["created_at"])
	}
}

func TestListRequests(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedger{requests: []storex.ServiceRequest{{
		ID: 4, RoomNumber: "305", RequestType: "Cleaning", Status: storex.RequestPending,
	}}}
	h := newTestServer(t, &fakeChatter{}, ledger)

	rec := do(h, http.MethodGet, "/requests", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 1 || out[0]["request_type"] != "Cleaning" || out[0]["status"] != "Pending" {
		t.Fatalf("unexpected requests: %v", out)
	}
}

func TestListEmptyIsArray(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeChatter{}, &fakeLedger{orders: []storex.Order{}, requests: []storex.ServiceRequest{}})
	for _, path := range []string{"/orders", "/requests"} {
		rec := do(h, http.MethodGet, path, "")
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("%s: expected empty array, got %s", path, rec.Body.String())
		}
	}
}

func TestListStoreError(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeChatter{}, &fakeLedger{err: errors.New("db down")})
	rec := do(h, http.MethodGet, "/orders", "")
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "db down") {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeChatter{}, &fakeLedger{})
	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get(echo.HeaderAccessControlAllowOrigin) != "*" {
		t.Fatalf("unexpected allow origin: %q", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	}
}
