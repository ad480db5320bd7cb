package deviceregistry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestVerify(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/types/0x45/verify")
		is.Equal(r.URL.Query().Get("appCode"), "app")
		w.Write([]byte(`{"registered": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	registered, err := c.Verify(context.Background(), "app", "0x45")
	is.NoErr(err)
	is.True(registered)
}

func TestGetReturnsDescriptor(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/devices/dev-001")
		w.Write([]byte(`{"typeCode": "0x45", "familyName": "hc", "active": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	desc, err := c.Get(context.Background(), "dev-001")
	is.NoErr(err)
	is.Equal(desc.TypeCode, "0x45")
	is.True(desc.Active)
}

func TestGetUnknownDevice(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Get(context.Background(), "dev-unknown")
	is.True(errors.Is(err, ErrDeviceNotFound))
}

func TestPairingToken(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/devices/dev-001/token")
		w.Write([]byte(`{"token": "pair-123"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	token, err := c.PairingToken(context.Background(), "dev-001")
	is.NoErr(err)
	is.Equal(token, "pair-123")
}
