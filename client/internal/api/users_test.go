package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
	"github.com/poh0/bird-wrapper/client/internal/types"
)

func TestGetProfile_Success(t *testing.T) {
	t.Parallel()
	loc := types.NewLocation(60.1699, 24.9384)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != ProfilePath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer T" {
			t.Errorf("unexpected Authorization: %q", got)
		}
		var hdr types.Location
		if err := json.Unmarshal([]byte(r.Header.Get("Location")), &hdr); err != nil || hdr != loc {
			t.Errorf("unexpected Location header %q (err=%v)", r.Header.Get("Location"), err)
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"rider@example.com"}`))
	}))
	defer srv.Close()

	raw, err := GetProfile(context.Background(), newTestClient(srv.URL), "T", loc)
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if string(raw) != `{"id":"u1","email":"rider@example.com"}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestGetProfile_NoToken(t *testing.T) {
	t.Parallel()
	if _, err := GetProfile(context.Background(), newFailingClient(), "", types.DefaultLocation); !clienterrors.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestGetProfile_NonOK(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	_, err := GetProfile(context.Background(), newTestClient(srv.URL), "stale", types.DefaultLocation)
	if !clienterrors.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestGetProfile_HTTPDoError(t *testing.T) {
	t.Parallel()
	if _, err := GetProfile(context.Background(), newFailingClient(), "T", types.DefaultLocation); !clienterrors.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
