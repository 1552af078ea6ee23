package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap/zaptest"

	"github.com/SachinthaLakshan/evite-new-edition/api"
	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/session"
	"github.com/SachinthaLakshan/evite-new-edition/socialcard"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

type testEnv struct {
	srv   *httptest.Server
	mgr   *session.Manager
	store store.Store
}

// newTestServer serves the API over a file store seeded with event "ev1"
// and its attendee "at1".
func newTestServer(t *testing.T) *testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	st, err := store.OpenFile(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	ctx := context.Background()
	if _, err := st.PutEvent(ctx, store.Event{ID: "ev1", Title: "Ann & Ben", Date: "2024-06-15", Location: "Rose Garden"}); err != nil {
		t.Fatalf("PutEvent: %v", err)
	}
	if _, err := st.PutAttendee(ctx, store.Attendee{ID: "at1", EventID: "ev1", Name: "Carol"}); err != nil {
		t.Fatalf("PutAttendee: %v", err)
	}

	mgr := session.NewManager(nil, st, log)
	cards := socialcard.NewGenerator(st, nil, log)
	staticFS := fstest.MapFS{
		"index.html": {Data: []byte("<html></html>")},
	}
	srv := httptest.NewServer(api.RegisterRoutes(mgr, st, cards, nil, log, staticFS))
	t.Cleanup(func() {
		srv.Close()
		mgr.Shutdown()
	})
	return &testEnv{srv: srv, mgr: mgr, store: st}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected %d, got %d: %s", want, resp.StatusCode, b)
	}
}

func (e *testEnv) createSession(t *testing.T, eventID string) session.Info {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/sessions", `{"event_id":"`+eventID+`"}`)
	expectStatus(t, resp, http.StatusCreated)
	var info session.Info
	decode(t, resp, &info)
	return info
}

func TestHealthz(t *testing.T) {
	env := newTestServer(t)
	expectStatus(t, env.do(t, http.MethodGet, "/healthz", ""), http.StatusOK)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestServer(t)
	env.createSession(t, "ev1")

	resp := env.do(t, http.MethodGet, "/metrics", "")
	expectStatus(t, resp, http.StatusOK)
	b, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(b), "invitation_editor_sessions_active") {
		t.Fatal("expected the sessions gauge in /metrics")
	}
}

func TestIndexPage(t *testing.T) {
	env := newTestServer(t)
	resp := env.do(t, http.MethodGet, "/", "")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestListTemplates(t *testing.T) {
	env := newTestServer(t)
	resp := env.do(t, http.MethodGet, "/api/templates", "")
	expectStatus(t, resp, http.StatusOK)

	var defs []catalog.Definition
	decode(t, resp, &defs)
	want := []catalog.TemplateID{catalog.Classic, catalog.Modern, catalog.Floral, catalog.Minimal}
	if len(defs) != len(want) {
		t.Fatalf("expected %d templates, got %d", len(want), len(defs))
	}
	for i, id := range want {
		if defs[i].ID != id {
			t.Fatalf("template %d: expected %q, got %q", i, id, defs[i].ID)
		}
	}
}

func TestListFontsAndPositions(t *testing.T) {
	env := newTestServer(t)

	var fonts []string
	decode(t, env.do(t, http.MethodGet, "/api/fonts", ""), &fonts)
	if len(fonts) == 0 || fonts[0] != "Playfair Display" {
		t.Fatalf("unexpected fonts %v", fonts)
	}

	var positions []catalog.GuestNamePositionOption
	decode(t, env.do(t, http.MethodGet, "/api/guest-name-positions", ""), &positions)
	if len(positions) != 4 || positions[0].Value != catalog.GuestTop {
		t.Fatalf("unexpected positions %v", positions)
	}
}

func TestCreateSession(t *testing.T) {
	env := newTestServer(t)
	info := env.createSession(t, "ev1")
	if info.ID == "" || info.EventID != "ev1" {
		t.Fatalf("unexpected session %+v", info)
	}
	if info.TemplateID != catalog.Classic {
		t.Fatalf("expected bootstrap template, got %q", info.TemplateID)
	}

	var list []session.Info
	decode(t, env.do(t, http.MethodGet, "/api/sessions", ""), &list)
	if len(list) != 1 || list[0].ID != info.ID {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestCreateSessionErrors(t *testing.T) {
	env := newTestServer(t)

	expectStatus(t, env.do(t, http.MethodPost, "/api/sessions", `{}`), http.StatusBadRequest)
	expectStatus(t, env.do(t, http.MethodPost, "/api/sessions", `not json`), http.StatusBadRequest)
	expectStatus(t, env.do(t, http.MethodPost, "/api/sessions", `{"event_id":"nope"}`), http.StatusNotFound)

	env.createSession(t, "ev1")
	expectStatus(t, env.do(t, http.MethodPost, "/api/sessions", `{"event_id":"ev1"}`), http.StatusConflict)
}

func TestCloseSession(t *testing.T) {
	env := newTestServer(t)
	info := env.createSession(t, "ev1")

	expectStatus(t, env.do(t, http.MethodDelete, "/api/sessions/"+info.ID, ""), http.StatusNoContent)
	expectStatus(t, env.do(t, http.MethodDelete, "/api/sessions/"+info.ID, ""), http.StatusNotFound)

	// The event is free again.
	env.createSession(t, "ev1")
}

func TestApplyUpdateAndPersistOnClose(t *testing.T) {
	env := newTestServer(t)
	info := env.createSession(t, "ev1")

	resp := env.do(t, http.MethodPost, "/api/sessions/"+info.ID+"/updates", `{"op":"set_template","template_id":"modern"}`)
	expectStatus(t, resp, http.StatusOK)
	var cfg invitation.Config
	decode(t, resp, &cfg)
	if cfg.TemplateID != catalog.Modern || cfg.Styling.FontFamily != "Montserrat" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	var got invitation.Config
	decode(t, env.do(t, http.MethodGet, "/api/sessions/"+info.ID+"/config", ""), &got)
	if got.TemplateID != catalog.Modern {
		t.Fatalf("expected modern, got %q", got.TemplateID)
	}

	expectStatus(t, env.do(t, http.MethodDelete, "/api/sessions/"+info.ID, ""), http.StatusNoContent)
	ev, err := env.store.GetEvent(context.Background(), "ev1")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if ev.Invitation == nil || ev.Invitation.TemplateID != catalog.Modern {
		t.Fatalf("expected saved modern invitation, got %+v", ev.Invitation)
	}
}

func TestApplyUpdateRejectsUnknownOp(t *testing.T) {
	env := newTestServer(t)
	info := env.createSession(t, "ev1")

	expectStatus(t, env.do(t, http.MethodPost, "/api/sessions/"+info.ID+"/updates", `{"op":"explode"}`), http.StatusBadRequest)
	expectStatus(t, env.do(t, http.MethodPost, "/api/sessions/missing/updates", `{"op":"reset_positions"}`), http.StatusNotFound)
}

func TestSessionPreview(t *testing.T) {
	env := newTestServer(t)
	info := env.createSession(t, "ev1")

	resp := env.do(t, http.MethodGet, "/api/sessions/"+info.ID+"/preview.svg?guest=Carol", "")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("unexpected content type %q", ct)
	}
	b, _ := io.ReadAll(resp.Body)
	svg := string(b)
	if !strings.Contains(svg, `class="badges"`) {
		t.Fatal("expected editor badges in preview")
	}
	if !strings.Contains(svg, "Dear Carol,") {
		t.Fatal("expected guest salutation in preview")
	}
	if strings.Count(svg, `class="badge"`) != 4 {
		t.Fatalf("expected 4 badges, got %d", strings.Count(svg, `class="badge"`))
	}

	expectStatus(t, env.do(t, http.MethodGet, "/api/sessions/missing/preview.svg", ""), http.StatusNotFound)
}

func TestSessionPreviewGuestQueryIsReadOnly(t *testing.T) {
	env := newTestServer(t)
	info := env.createSession(t, "ev1")

	expectStatus(t, env.do(t, http.MethodGet, "/api/sessions/"+info.ID+"/preview.svg?guest=Carol", ""), http.StatusOK)

	s, ok := env.mgr.Get(info.ID)
	if !ok {
		t.Fatal("session missing")
	}
	if got := s.GuestName(); got != "" {
		t.Fatalf("preview changed session guest to %q", got)
	}

	resp := env.do(t, http.MethodGet, "/api/sessions/"+info.ID+"/preview.svg", "")
	expectStatus(t, resp, http.StatusOK)
	b, _ := io.ReadAll(resp.Body)
	svg := string(b)
	if strings.Contains(svg, "Dear Carol,") {
		t.Fatal("guest from an earlier preview leaked into the next one")
	}
	if strings.Count(svg, `class="badge"`) != 3 {
		t.Fatalf("expected 3 badges, got %d", strings.Count(svg, `class="badge"`))
	}

	s.SetGuestName("Dana")
	resp = env.do(t, http.MethodGet, "/api/sessions/"+info.ID+"/preview.svg?guest=", "")
	expectStatus(t, resp, http.StatusOK)
	b, _ = io.ReadAll(resp.Body)
	if strings.Contains(string(b), "Dear Dana,") {
		t.Fatal("blank guest query should preview without a guest")
	}
	if got := s.GuestName(); got != "Dana" {
		t.Fatalf("expected session guest Dana, got %q", got)
	}
}
