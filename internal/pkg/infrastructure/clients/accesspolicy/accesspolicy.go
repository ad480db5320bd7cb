package accesspolicy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("home-entity-mgmt/access-policy-client")

// AccessPolicy is the external policy store that grants and revokes a user's
// access to a device resource. Calls are made after the structural change has
// been committed and are best effort: a failed grant or revoke is logged by
// the caller, never rolled back.
//
//go:generate moq -rm -out accesspolicy_mock.go . AccessPolicy
type AccessPolicy interface {
	Assign(ctx context.Context, action, resource, service, userID, appCode string) (bool, error)
	Unassign(ctx context.Context, action, resource, service, userID, appCode string) (bool, error)
}

type policyClient struct {
	url        string
	httpClient http.Client
}

func New(policyURL string) AccessPolicy {
	return &policyClient{
		url: policyURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type policyRequest struct {
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Service  string `json:"service"`
	UserID   string `json:"userID"`
	AppCode  string `json:"appCode"`
}

func (c *policyClient) Assign(ctx context.Context, action, resource, service, userID, appCode string) (bool, error) {
	return c.post(ctx, "assign-access", c.url+"/api/v0/policies/assign", policyRequest{
		Action:   action,
		Resource: resource,
		Service:  service,
		UserID:   userID,
		AppCode:  appCode,
	})
}

func (c *policyClient) Unassign(ctx context.Context, action, resource, service, userID, appCode string) (bool, error) {
	return c.post(ctx, "unassign-access", c.url+"/api/v0/policies/unassign", policyRequest{
		Action:   action,
		Resource: resource,
		Service:  service,
		UserID:   userID,
		AppCode:  appCode,
	})
}

func (c *policyClient) post(ctx context.Context, spanName, url string, request policyRequest) (bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	b, err := json.Marshal(request)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to call access policy service: %w", err)
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("access policy service returned status %d", resp.StatusCode)
		return false, err
	}

	var result struct {
		OK bool `json:"ok"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		err = fmt.Errorf("failed to decode response body: %w", err)
		return false, err
	}

	return result.OK, nil
}
