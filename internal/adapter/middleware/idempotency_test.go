package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newGuardedEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl))
	e.POST("/api/loan-providers", handler)
	e.GET("/api/loan-providers", handler)
	return e
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func sendReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createdHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"id": strings.Repeat("c", 32)})
}

func guardHeaders(reqID string) map[string]string {
	return map[string]string{
		"X-Request-Id": reqID,
		"X-Request-At": time.Now().UTC().Format(time.RFC3339),
		"X-User-Id":    "admin",
	}
}

func TestIdempotency_GETBypassesGuard(t *testing.T) {
	rdb := newTestRedis(t)
	e := newGuardedEcho(rdb, time.Minute, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	rec := sendReq(t, e, http.MethodGet, "/api/loan-providers", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestIdempotency_NoRequestIDPassesThrough(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	e := newGuardedEcho(rdb, time.Minute, func(c echo.Context) error {
		calls++
		return createdHandler(c)
	})

	// Without X-Request-Id the guard stays out of the way entirely: no
	// X-Request-At demanded, every retry reaches the handler.
	for i := 0; i < 2; i++ {
		rec := sendReq(t, e, http.MethodPost, "/api/loan-providers",
			jsonBody(t, map[string]string{"name": "Acme"}), nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("attempt %d status = %d, want 201", i, rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler calls = %d, want 2", calls)
	}
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	rdb := newTestRedis(t)
	e := newGuardedEcho(rdb, time.Minute, createdHandler)
	body := func() io.Reader { return jsonBody(t, map[string]string{"name": "Acme"}) }

	// malformed X-Request-Id
	h := guardHeaders("NOT-AN-ID")
	if rec := sendReq(t, e, http.MethodPost, "/api/loan-providers", body(), h); rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: status = %d, want 400", rec.Code)
	}

	// missing X-Request-At when the id is present
	h = map[string]string{"X-Request-Id": strings.Repeat("a", 32)}
	if rec := sendReq(t, e, http.MethodPost, "/api/loan-providers", body(), h); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing request-at: status = %d, want 400", rec.Code)
	}

	// X-Request-At outside the allowed skew
	h = guardHeaders(strings.Repeat("a", 32))
	h["X-Request-At"] = time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339)
	if rec := sendReq(t, e, http.MethodPost, "/api/loan-providers", body(), h); rec.Code != http.StatusBadRequest {
		t.Fatalf("skewed request-at: status = %d, want 400", rec.Code)
	}
}

func TestIdempotency_ReplayRecordedResponse(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	e := newGuardedEcho(rdb, time.Minute, func(c echo.Context) error {
		calls++
		return createdHandler(c)
	})

	h := guardHeaders(strings.Repeat("a", 32))
	payload := map[string]string{"name": "Acme"}

	rec1 := sendReq(t, e, http.MethodPost, "/api/loan-providers", jsonBody(t, payload), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request status = %d, body = %s", rec1.Code, rec1.Body.String())
	}

	rec2 := sendReq(t, e, http.MethodPost, "/api/loan-providers", jsonBody(t, payload), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("retry status = %d, body = %s", rec2.Code, rec2.Body.String())
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("retry body differs: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1 (retry must be replayed, not re-run)", calls)
	}
}

func TestIdempotency_ReusedIDDifferentBodyConflicts(t *testing.T) {
	rdb := newTestRedis(t)
	e := newGuardedEcho(rdb, time.Minute, createdHandler)

	h := guardHeaders(strings.Repeat("a", 32))
	rec := sendReq(t, e, http.MethodPost, "/api/loan-providers",
		jsonBody(t, map[string]string{"name": "Acme"}), h)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = sendReq(t, e, http.MethodPost, "/api/loan-providers",
		jsonBody(t, map[string]string{"name": "Globex"}), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("reused id with new body: status = %d, want 409", rec.Code)
	}
}

func TestIdempotency_InProgressConflicts(t *testing.T) {
	rdb := newTestRedis(t)
	e := newGuardedEcho(rdb, time.Minute, createdHandler)

	reqID := strings.Repeat("a", 32)
	body := []byte(`{"name":"Acme"}`)

	// a provisional lock from a still-running first attempt
	key := buildKey(http.MethodPost, "/api/loan-providers", "admin", reqID)
	entry := idempEntry{
		InProgress:  true,
		BodySHA256:  bodyHash(body),
		RequestID:   reqID,
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   time.Now().UTC(),
	}
	if ok, err := provisionalSet(context.Background(), rdb, key, entry); err != nil || !ok {
		t.Fatalf("seed provisional: ok=%v err=%v", ok, err)
	}

	rec := sendReq(t, e, http.MethodPost, "/api/loan-providers",
		bytes.NewReader(body), guardHeaders(reqID))
	if rec.Code != http.StatusConflict {
		t.Fatalf("in-progress retry: status = %d, want 409", rec.Code)
	}
}

func TestIdempotency_StoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	e := newGuardedEcho(rdb, time.Minute, createdHandler)

	rec := sendReq(t, e, http.MethodPost, "/api/loan-providers",
		jsonBody(t, map[string]string{"name": "Acme"}), guardHeaders(strings.Repeat("a", 32)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
