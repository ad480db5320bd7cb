package automation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("home-entity-mgmt/automation-client")

// Automation is the external automation service. DeleteDevice detaches every
// automation referencing the device and returns their ids. A failure here is
// a hard precondition failure for device deletion: the caller must roll the
// whole delete back.
//
//go:generate moq -rm -out automation_mock.go . Automation
type Automation interface {
	DeleteDevice(ctx context.Context, deviceID string) ([]string, error)
}

type automationClient struct {
	url        string
	httpClient http.Client
}

func New(automationURL string) Automation {
	return &automationClient{
		url: automationURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *automationClient) DeleteDevice(ctx context.Context, deviceID string) ([]string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "detach-device-automations")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	u := fmt.Sprintf("%s/api/v0/automations/devices/%s", c.url, url.PathEscape(deviceID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to call automation service: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("automation service returned status %d", resp.StatusCode)
		return nil, err
	}

	var result struct {
		AutomationIDs []string `json:"automationIDs"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		err = fmt.Errorf("failed to decode response body: %w", err)
		return nil, err
	}

	return result.AutomationIDs, nil
}
