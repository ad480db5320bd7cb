package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2/clientcredentials"
)

var tracer = otel.Tracer("home-entity-mgmt-client")

// Client talks to the home entity management api on behalf of other services.
type Client interface {
	CreateHome(ctx context.Context, appCode string, home types.Home) error
	CreateEntity(ctx context.Context, appCode string, device types.Device) error
	GetEntity(ctx context.Context, appCode, deviceID string) (types.Device, error)
	ShareEntities(ctx context.Context, appCode string, request types.ShareRequest) ([]types.ShareResult, error)
	UnshareEntities(ctx context.Context, appCode string, request types.ShareRequest) ([]types.ShareResult, error)
	DeleteEntity(ctx context.Context, appCode, deviceID string) error
	Close(ctx context.Context)
}

type mgmtClient struct {
	url        string
	httpClient *http.Client
	cancel     context.CancelFunc
}

func New(ctx context.Context, serviceURL, tokenURL, clientID, clientSecret string) (Client, error) {
	ctx, cancel := context.WithCancel(ctx)

	oauthConfig := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	token, err := oauthConfig.Token(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to get client credentials from %s: %w", tokenURL, err)
	}

	if !token.Valid() {
		cancel()
		return nil, fmt.Errorf("an invalid token was returned from %s", tokenURL)
	}

	httpClient := oauthConfig.Client(ctx)
	httpClient.Transport = otelhttp.NewTransport(httpClient.Transport)

	return &mgmtClient{
		url:        serviceURL,
		httpClient: httpClient,
		cancel:     cancel,
	}, nil
}

func (c *mgmtClient) Close(ctx context.Context) {
	c.cancel()
}

func (c *mgmtClient) CreateHome(ctx context.Context, appCode string, home types.Home) error {
	_, err := c.do(ctx, "create-home", http.MethodPost, "/api/v0/homes?appCode="+appCode, home, http.StatusCreated)
	return err
}

func (c *mgmtClient) CreateEntity(ctx context.Context, appCode string, device types.Device) error {
	_, err := c.do(ctx, "create-entity", http.MethodPost, "/api/v0/entities?appCode="+appCode, device, http.StatusCreated)
	return err
}

func (c *mgmtClient) GetEntity(ctx context.Context, appCode, deviceID string) (types.Device, error) {
	body, err := c.do(ctx, "get-entity", http.MethodGet, "/api/v0/entities/"+deviceID+"?appCode="+appCode, nil, http.StatusOK)
	if err != nil {
		return types.Device{}, err
	}

	response := struct {
		Data types.Device `json:"data"`
	}{}

	err = json.Unmarshal(body, &response)
	if err != nil {
		return types.Device{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return response.Data, nil
}

func (c *mgmtClient) ShareEntities(ctx context.Context, appCode string, request types.ShareRequest) ([]types.ShareResult, error) {
	return c.share(ctx, "share-entities", "/api/v0/entities/share?appCode="+appCode, request)
}

func (c *mgmtClient) UnshareEntities(ctx context.Context, appCode string, request types.ShareRequest) ([]types.ShareResult, error) {
	return c.share(ctx, "unshare-entities", "/api/v0/entities/unshare?appCode="+appCode, request)
}

func (c *mgmtClient) share(ctx context.Context, spanName, path string, request types.ShareRequest) ([]types.ShareResult, error) {
	body, err := c.do(ctx, spanName, http.MethodPost, path, request, http.StatusOK)
	if err != nil {
		return nil, err
	}

	response := struct {
		Data []types.ShareResult `json:"data"`
	}{}

	err = json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return response.Data, nil
}

func (c *mgmtClient) DeleteEntity(ctx context.Context, appCode, deviceID string) error {
	_, err := c.do(ctx, "delete-entity", http.MethodDelete, "/api/v0/entities/"+deviceID+"?appCode="+appCode, nil, http.StatusNoContent)
	return err
}

func (c *mgmtClient) do(ctx context.Context, spanName, method, path string, requestBody any, expectedStatus int) ([]byte, error) {
	var err error
	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var reader io.Reader
	if requestBody != nil {
		var b []byte
		b, err = json.Marshal(requestBody)
		if err != nil {
			err = fmt.Errorf("failed to marshal request body: %w", err)
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to call home entity management: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		err = fmt.Errorf("request failed with status %d", resp.StatusCode)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	return body, nil
}
