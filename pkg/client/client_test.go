package client

import (
	"context"
	"testing"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

const tokenResponse string = `{"access_token":"testtoken","expires_in":300,"refresh_expires_in":0,"token_type":"Bearer","not-before-policy":0,"scope":"email profile"}`

func newMockOAuth(is *is.I) test.MockService {
	return test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/token"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(tokenResponse)),
		),
	)
}

func TestNewFetchesToken(t *testing.T) {
	is := is.New(t)

	mockOAuth := newMockOAuth(is)
	defer mockOAuth.Close()

	ctx := context.Background()

	c, err := New(ctx, mockOAuth.URL(), mockOAuth.URL()+"/token", "", "")
	is.NoErr(err)

	c.Close(ctx)
}

func TestCreateEntity(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/entities"),
			expects.RequestMethod("POST"),
			expects.RequestHeaderContains("Content-Type", "application/json"),
			expects.RequestBodyContaining(`"deviceID":"net1-dev1"`, `"homeID":"home-1"`),
		),
		test.Returns(
			response.Code(201),
		),
	)
	defer mockedService.Close()

	mockOAuth := newMockOAuth(is)
	defer mockOAuth.Close()

	ctx := context.Background()

	c, err := New(ctx, mockedService.URL(), mockOAuth.URL()+"/token", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	err = c.CreateEntity(ctx, "app", types.Device{
		DeviceID: "net1-dev1",
		HomeID:   "home-1",
		TypeCode: "0x45",
	})
	is.NoErr(err)
}

func TestShareEntitiesReturnsResults(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/entities/share"),
			expects.RequestMethod("POST"),
			expects.RequestBodyContaining(`"memberID":"bob"`),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"data":[{"deviceID":"net1-dev1","shared":true}]}`)),
		),
	)
	defer mockedService.Close()

	mockOAuth := newMockOAuth(is)
	defer mockOAuth.Close()

	ctx := context.Background()

	c, err := New(ctx, mockedService.URL(), mockOAuth.URL()+"/token", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	results, err := c.ShareEntities(ctx, "app", types.ShareRequest{
		HomeID:    "home-1",
		MemberID:  "bob",
		DeviceIDs: []string{"net1-dev1"},
	})
	is.NoErr(err)
	is.Equal(len(results), 1)
	is.True(results[0].Shared)
}

func TestGetEntityFailsOnNotFound(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.Code(404),
		),
	)
	defer mockedService.Close()

	mockOAuth := newMockOAuth(is)
	defer mockOAuth.Close()

	ctx := context.Background()

	c, err := New(ctx, mockedService.URL(), mockOAuth.URL()+"/token", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	_, err = c.GetEntity(ctx, "app", "net1-missing")
	is.True(err != nil)
}
