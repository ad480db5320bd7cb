package deviceregistry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("home-entity-mgmt/device-registry-client")

var ErrTypeNotFound = errors.New("device type not found")
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRegistry is the external device type and identity service. Create
// uses it to verify that a device type is registered for an app, that the
// declared type matches the physical device, and that the pairing token is
// valid.
//
//go:generate moq -rm -out deviceregistry_mock.go . DeviceRegistry
type DeviceRegistry interface {
	Verify(ctx context.Context, appCode, typeCode string) (bool, error)
	Info(ctx context.Context, typeCode string) (types.TypeDescriptor, error)
	Get(ctx context.Context, deviceID string) (types.TypeDescriptor, error)
	PairingToken(ctx context.Context, deviceID string) (string, error)
}

type registryClient struct {
	url        string
	httpClient http.Client
}

func New(registryURL string) DeviceRegistry {
	return &registryClient{
		url: registryURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *registryClient) Verify(ctx context.Context, appCode, typeCode string) (bool, error) {
	var result struct {
		Registered bool `json:"registered"`
	}

	u := fmt.Sprintf("%s/api/v0/types/%s/verify?appCode=%s", c.url, url.PathEscape(typeCode), url.QueryEscape(appCode))

	err := c.get(ctx, "verify-device-type", u, &result)
	if err != nil {
		return false, err
	}

	return result.Registered, nil
}

func (c *registryClient) Info(ctx context.Context, typeCode string) (types.TypeDescriptor, error) {
	var result types.TypeDescriptor

	u := fmt.Sprintf("%s/api/v0/types/%s", c.url, url.PathEscape(typeCode))

	err := c.get(ctx, "get-device-type", u, &result)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return types.TypeDescriptor{}, ErrTypeNotFound
		}
		return types.TypeDescriptor{}, err
	}

	return result, nil
}

func (c *registryClient) Get(ctx context.Context, deviceID string) (types.TypeDescriptor, error) {
	var result types.TypeDescriptor

	u := fmt.Sprintf("%s/api/v0/devices/%s", c.url, url.PathEscape(deviceID))

	err := c.get(ctx, "get-registered-device", u, &result)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return types.TypeDescriptor{}, ErrDeviceNotFound
		}
		return types.TypeDescriptor{}, err
	}

	return result, nil
}

func (c *registryClient) PairingToken(ctx context.Context, deviceID string) (string, error) {
	var result struct {
		Token string `json:"token"`
	}

	u := fmt.Sprintf("%s/api/v0/devices/%s/token", c.url, url.PathEscape(deviceID))

	err := c.get(ctx, "get-pairing-token", u, &result)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return "", ErrDeviceNotFound
		}
		return "", err
	}

	return result.Token, nil
}

var errNotFound = errors.New("not found")

func (c *registryClient) get(ctx context.Context, spanName, url string, result any) error {
	var err error
	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to call device registry: %w", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = errNotFound
		return err
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("device registry returned status %d", resp.StatusCode)
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return err
	}

	err = json.Unmarshal(body, result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return err
	}

	return nil
}
