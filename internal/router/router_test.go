package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterMethodAndPathValue(t *testing.T) {
	r := New()

	var gotID string
	r.Get("/api/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotID = req.PathValue("id")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc-123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotID != "abc-123" {
		t.Errorf("path value = %q, want %q", gotID, "abc-123")
	}

	// Same path, unregistered method.
	req = httptest.NewRequest(http.MethodPost, "/api/products/abc-123", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouterMiddlewareOrder(t *testing.T) {
	var order []string

	outer := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "outer-before")
			next.ServeHTTP(w, r)
			order = append(order, "outer-after")
		})
	}

	inner := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "inner-before")
			next.ServeHTTP(w, r)
			order = append(order, "inner-after")
		})
	}

	r := New(outer)
	r.Get("/test", func(w http.ResponseWriter, req *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}, inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	expected := []string{"outer-before", "inner-before", "handler", "inner-after", "outer-after"}
	if len(order) != len(expected) {
		t.Fatalf("got %d entries, want %d", len(order), len(expected))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("position %d = %s, want %s", i, order[i], v)
		}
	}
}

func TestRouterGroup(t *testing.T) {
	var globalHit, groupHit bool

	global := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			globalHit = true
			next.ServeHTTP(w, r)
		})
	}
	scoped := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			groupHit = true
			next.ServeHTTP(w, r)
		})
	}

	r := New(global)
	admin := r.Group(scoped)
	admin.Post("/admin/products/{id}/save", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Route registered on the group is reachable via the parent mux.
	req := httptest.NewRequest(http.MethodPost, "/admin/products/p1/save", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !globalHit {
		t.Error("global middleware was not called")
	}
	if !groupHit {
		t.Error("group middleware was not called")
	}
}
