package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petpal/internal/adapters/storage/memory"
	"petpal/internal/platform/logger"
	"petpal/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := router.NewRouter(router.Options{
		Store:  memory.NewStore(),
		Logger: logger.New(logger.Options{Level: logger.Error}),
	})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AuthAndScoping(t *testing.T) {
	ts := newTestServer(t)

	// 1) Sin sesión, todo lo protegido es 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
	}

	// 2) Registrarse implica login
	userA := register(t, ts.URL, "Ana", "ana@x.com", "secret")
	{
		st, body := doReq(t, ts.URL, "GET", "/auth/me", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me after register, got %d body=%s", st, string(body))
		}
	}

	// 3) Ana crea una mascota y la ve listada
	petID := createPet(t, ts.URL, map[string]any{
		"name": "Rex", "type": "dog", "breed": "mixed", "age": 3, "weight": 18.5,
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d", st)
		}
		var pets []struct {
			ID     string `json:"id"`
			UserID string `json:"user_id"`
		}
		mustUnmarshal(t, body, &pets)
		if len(pets) != 1 || pets[0].ID != petID || pets[0].UserID != userA {
			t.Fatalf("unexpected pets for Ana: %s", string(body))
		}
	}

	// Los ids derivan del timestamp en ms: separar las altas de usuarios
	time.Sleep(2 * time.Millisecond)

	// 4) Registrar a Bruno cambia la sesión (registro implica login)
	register(t, ts.URL, "Bruno", "bruno@x.com", "secret")
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets as Bruno, got %d", st)
		}
		var pets []any
		mustUnmarshal(t, body, &pets)
		if len(pets) != 0 {
			t.Fatalf("Bruno must not see Ana's pets: %s", string(body))
		}
	}

	// 5) Update sin chequeo de dueño: Bruno puede parchear la mascota de Ana
	// (comportamiento heredado, ver DESIGN.md)
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, map[string]any{"notes": "edited by B"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 cross-user patch (inherited behavior), got %d body=%s", st, string(body))
		}
	}

	// 6) Logout y login de vuelta como Ana
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/logout", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", map[string]any{"email": "ana@x.com", "password": "secret"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
	}

	// 7) El patch de Bruno quedó persistido en la mascota de Ana
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var pets []struct {
			Notes string `json:"notes"`
		}
		mustUnmarshal(t, body, &pets)
		if len(pets) != 1 || pets[0].Notes != "edited by B" {
			t.Fatalf("expected persisted cross-user patch, got %s", string(body))
		}
	}
}

func TestHTTP_LoginFailures(t *testing.T) {
	ts := newTestServer(t)

	register(t, ts.URL, "Ana", "ana@x.com", "secret")

	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", map[string]any{"email": "ana@x.com", "password": "wrong"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 wrong password, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", map[string]any{"name": "Otra", "email": "ana@x.com", "password": "x"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate email, got %d", st)
		}
	}
}

func TestHTTP_SchedulesSortedAscending(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts.URL, "Ana", "ana@x.com", "secret")

	for _, payload := range []map[string]any{
		{"type": "walk", "title": "second", "date": "2024-01-02", "time": "08:00"},
		{"type": "feeding", "title": "first", "date": "2024-01-01", "time": "09:00"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/schedules", payload)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create schedule, got %d body=%s", st, string(body))
		}
		time.Sleep(2 * time.Millisecond)
	}

	st, body := doReq(t, ts.URL, "GET", "/schedules", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list schedules, got %d", st)
	}
	var items []struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		DateDisplay string `json:"date_display"`
		TimeDisplay string `json:"time_display"`
	}
	mustUnmarshal(t, body, &items)
	if len(items) != 2 || items[0].Title != "first" || items[1].Title != "second" {
		t.Fatalf("expected chronological order, got %s", string(body))
	}
	if items[0].DateDisplay != "Jan 1, 2024" || items[0].TimeDisplay != "9:00 AM" {
		t.Fatalf("unexpected display formatting: %+v", items[0])
	}
}

func TestHTTP_HealthRecordsSortedDescendingAndDeleteIdempotent(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts.URL, "Ana", "ana@x.com", "secret")

	var lastID string
	for _, payload := range []map[string]any{
		{"type": "vaccination", "title": "old", "date": "2023-01-01"},
		{"type": "checkup", "title": "new", "date": "2024-01-01", "next_date": "2025-01-01"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/health-records", payload)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create record, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		mustUnmarshal(t, body, &resp)
		lastID = resp.ID
		time.Sleep(2 * time.Millisecond)
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/health-records", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list records, got %d", st)
		}
		var items []struct {
			Title    string  `json:"title"`
			NextDate *string `json:"next_date"`
		}
		mustUnmarshal(t, body, &items)
		if len(items) != 2 || items[0].Title != "new" || items[1].Title != "old" {
			t.Fatalf("expected most recent first, got %s", string(body))
		}
		if items[0].NextDate == nil || *items[0].NextDate != "2025-01-01" {
			t.Fatalf("expected next_date on newest record, got %s", string(body))
		}
	}

	// Limpiar next_date con null explícito
	{
		st, body := doReqRaw(t, ts.URL, "PATCH", "/health-records/"+lastID, []byte(`{"next_date": null}`))
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var resp struct {
			NextDate *string `json:"next_date"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.NextDate != nil {
			t.Fatalf("expected cleared next_date, got %s", string(body))
		}
	}

	// Delete dos veces: ambos 204
	for i := 0; i < 2; i++ {
		st, _ := doReq(t, ts.URL, "DELETE", "/health-records/"+lastID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("delete attempt %d: expected 204, got %d", i+1, st)
		}
	}
}

func register(t *testing.T, baseURL, name, email, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/register", map[string]any{
		"name": name, "email": email, "password": password,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("register: missing id body=%s", string(body))
	}
	return resp.ID
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var raw []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		raw = b
	}
	return doReqRaw(t, baseURL, method, path, raw)
}

func doReqRaw(t *testing.T, baseURL, method, path string, raw []byte) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if raw != nil {
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if raw != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}

func mustUnmarshal(t *testing.T, raw []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("unmarshal %q: %v", string(raw), err)
	}
}
