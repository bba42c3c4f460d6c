package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-planner/internal/adapter"
	"fitness-planner/internal/adapter/remote"
	"fitness-planner/internal/domain"
)

// newTestServer serves a minimal in-memory rendition of the API surface.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	users := map[string]domain.User{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			list := []domain.User{}
			for _, u := range users {
				list = append(list, u)
			}
			json.NewEncoder(w).Encode(map[string]any{"users": list})
		case http.MethodPost:
			var u domain.User
			json.NewDecoder(r.Body).Decode(&u)
			u.ID = "server-assigned"
			users[u.ID] = u
			json.NewEncoder(w).Encode(u)
		case http.MethodPut:
			var u domain.User
			json.NewDecoder(r.Body).Decode(&u)
			if u.ID == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "missing id"})
				return
			}
			if _, ok := users[u.ID]; !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "user not found"})
				return
			}
			users[u.ID] = u
			json.NewEncoder(w).Encode(u)
		case http.MethodDelete:
			id := r.URL.Query().Get("id")
			if id == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if _, ok := users[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			delete(users, id)
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}
	})
	mux.HandleFunc("/api/media", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"media": []domain.Media{}})
		case http.MethodPost:
			var m domain.Media
			json.NewDecoder(r.Body).Decode(&m)
			m.ID = "media-assigned"
			json.NewEncoder(w).Encode(m)
		case http.MethodDelete:
			// Already-deleted ids still succeed on this endpoint.
			json.NewEncoder(w).Encode(map[string]string{"message": "media deleted"})
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_CreateUserUsesServerAssignedID(t *testing.T) {
	server := newTestServer(t)
	client := remote.New(server.URL)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, domain.User{Name: "Alice"})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if created.ID != "server-assigned" {
		t.Errorf("expected server-assigned id, got %q", created.ID)
	}

	users, err := client.ListUsers(ctx)
	if err != nil {
		t.Fatalf("listing users: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected one user, got %d", len(users))
	}
}

func TestClient_UpdateUserErrorMapping(t *testing.T) {
	server := newTestServer(t)
	client := remote.New(server.URL)
	ctx := context.Background()

	_, err := client.UpdateUser(ctx, domain.User{Name: "no id"})
	if !errors.Is(err, adapter.ErrInvalid) {
		t.Errorf("expected ErrInvalid for 400, got %v", err)
	}

	_, err = client.UpdateUser(ctx, domain.User{ID: "ghost", Name: "gone"})
	if !errors.Is(err, adapter.ErrNotFound) {
		t.Errorf("expected ErrNotFound for 404, got %v", err)
	}
}

func TestClient_DeleteUserErrorMapping(t *testing.T) {
	server := newTestServer(t)
	client := remote.New(server.URL)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, domain.User{Name: "Bob"})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if err := client.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := client.DeleteUser(ctx, created.ID); !errors.Is(err, adapter.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestClient_DeleteMediaToleratesUnknownID(t *testing.T) {
	server := newTestServer(t)
	client := remote.New(server.URL)

	if err := client.DeleteMedia(context.Background(), "never-existed"); err != nil {
		t.Errorf("expected no-op delete to succeed, got %v", err)
	}
}

func TestClient_ServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "database unreachable"})
	}))
	t.Cleanup(server.Close)
	client := remote.New(server.URL)

	_, err := client.ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, adapter.ErrNotFound) || errors.Is(err, adapter.ErrInvalid) {
		t.Errorf("expected a transport error, got %v", err)
	}
}
