package accesspolicy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestAssignPostsPolicyRequest(t *testing.T) {
	is := is.New(t)

	var received struct {
		Action   string `json:"action"`
		Resource string `json:"resource"`
		Service  string `json:"service"`
		UserID   string `json:"userID"`
		AppCode  string `json:"appCode"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodPost)
		is.Equal(r.URL.Path, "/api/v0/policies/assign")
		is.NoErr(json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	ok, err := c.Assign(context.Background(), "control", "net1-dev1", "home-entity-mgmt", "alice", "app")
	is.NoErr(err)
	is.True(ok)
	is.Equal(received.Action, "control")
	is.Equal(received.Resource, "net1-dev1")
	is.Equal(received.UserID, "alice")
}

func TestUnassignUsesUnassignEndpoint(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/policies/unassign")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	ok, err := c.Unassign(context.Background(), "control", "net1-dev1", "home-entity-mgmt", "bob", "app")
	is.NoErr(err)
	is.True(ok)
}

func TestNonOKStatusIsAnError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Assign(context.Background(), "control", "net1-dev1", "home-entity-mgmt", "alice", "app")
	is.True(err != nil)
}
