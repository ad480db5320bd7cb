package automation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestDeleteDeviceReturnsDetachedAutomations(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodDelete)
		is.Equal(r.URL.Path, "/api/v0/automations/devices/dev-001")
		w.Write([]byte(`{"automationIDs": ["auto-1", "auto-2"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	ids, err := c.DeleteDevice(context.Background(), "dev-001")
	is.NoErr(err)
	is.Equal(len(ids), 2)
}

func TestDeleteDeviceFailureIsAnError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.DeleteDevice(context.Background(), "dev-001")
	is.True(err != nil)
}
