package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"nutq/internal/board"
	"nutq/internal/catalog"
	"nutq/internal/kv"
)

// newTestSession builds an initialized board session over an in-memory
// store, seeded with the built-in starter catalog.
func newTestSession(t *testing.T, opts ...board.Option) *board.Session {
	t.Helper()
	s := board.New(catalog.NewRepository(kv.NewMemoryStore()), opts...)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return s
}

// newTestRouter mounts the board and admin handlers on the same paths the
// real router uses, minus the auth middleware.
func newTestRouter(t *testing.T, opts ...board.Option) (*chi.Mux, *board.Session) {
	t.Helper()
	session := newTestSession(t, opts...)
	b := NewBoard(session)
	a := NewAdmin(session, nil)

	r := chi.NewRouter()
	r.Get("/api/board", b.Get)
	r.Post("/api/board/cards/{id}/select", b.SelectCard)
	r.Post("/api/board/sentence/speak", b.Speak)
	r.Delete("/api/board/sentence/last", b.RemoveLastWord)
	r.Delete("/api/board/sentence", b.ClearSentence)
	r.Put("/api/board/category", b.SetCategory)

	r.Get("/admin/cards", a.ListCards)
	r.Post("/admin/cards", a.CreateCard)
	r.Put("/admin/cards/{id}", a.UpdateCard)
	r.Delete("/admin/cards/{id}", a.DeleteCard)
	r.Get("/admin/categories", a.ListCategories)
	r.Post("/admin/categories", a.CreateCategory)
	r.Put("/admin/categories/{id}", a.UpdateCategory)
	r.Delete("/admin/categories/{id}", a.DeleteCategory)
	r.Put("/admin/settings", a.UpdateSettings)
	r.Post("/admin/recordings/start", a.StartRecording)
	r.Post("/admin/recordings/stop", a.StopRecording)
	r.Post("/admin/media", a.MediaUpload)

	return r, session
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into out when it is non-nil.
func doJSON(t *testing.T, h http.Handler, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w
}
