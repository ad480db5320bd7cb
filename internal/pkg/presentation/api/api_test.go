package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/home-entity-mgmt/internal/pkg/application/entities"
	"github.com/diwise/home-entity-mgmt/internal/pkg/application/homes"
	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/internal/pkg/presentation/api/auth"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func newAuthenticatedRequest(method, target, body string, routeParams map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	ctx := auth.WithUser(r.Context(), "alice")
	ctx = auth.WithAllowedAppCodes(ctx, []string{"app"})

	if len(routeParams) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range routeParams {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return r.WithContext(ctx)
}

func TestCreateEntityOverridesUserAndAppCodeFromRequestContext(t *testing.T) {
	is := is.New(t)

	var created types.Device
	svc := &entities.EntityManagementMock{
		CreateFunc: func(ctx context.Context, device types.Device) error {
			created = device
			return nil
		},
	}

	body := `{"deviceID":"net1-dev1","homeID":"home-1","userID":"mallory","appCode":"other"}`
	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/entities?appCode=app", body, nil)
	w := httptest.NewRecorder()

	createEntityHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusCreated)
	is.Equal(created.UserID, "alice")
	is.Equal(created.AppCode, "app")
}

func TestRequestWithUnlistedAppCodeIsForbidden(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{}

	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/entities?appCode=forbidden", `{}`, nil)
	w := httptest.NewRecorder()

	createEntityHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusForbidden)
	is.Equal(len(svc.CreateCalls()), 0)
}

func TestCreateEntityConflictMapsTo409(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		CreateFunc: func(ctx context.Context, device types.Device) error {
			return entities.ErrDeviceAlreadyExists
		},
	}

	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/entities?appCode=app", `{"deviceID":"net1-dev1"}`, nil)
	w := httptest.NewRecorder()

	createEntityHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusConflict)
}

func TestQueryEntitiesTurnsParamsIntoConditions(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		QueryFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			return types.Collection[types.Device]{
				Data:       []types.Device{{DeviceID: "net1-dev1"}},
				Count:      1,
				Offset:     5,
				Limit:      10,
				TotalCount: 17,
			}, nil
		},
	}

	r := newAuthenticatedRequest(http.MethodGet, "/api/v0/entities?appCode=app&homeID=home-1&controller=true&limit=10&offset=5", "", nil)
	w := httptest.NewRecorder()

	queryEntitiesHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusOK)

	conditions := svc.QueryCalls()[0].Conditions
	c := &storage.Condition{}
	for _, condition := range conditions {
		c = condition(c)
	}

	is.Equal(c.UserID, "alice")
	is.Equal(c.AppCode, "app")
	is.Equal(c.HomeID, "home-1")
	is.True(c.Controller != nil && *c.Controller)
	is.Equal(c.Limit(), 10)
	is.Equal(c.Offset(), 5)

	response := struct {
		Meta struct {
			TotalRecords uint64 `json:"totalRecords"`
			Count        uint64 `json:"count"`
		} `json:"meta"`
	}{}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.Equal(response.Meta.TotalRecords, uint64(17))
	is.Equal(response.Meta.Count, uint64(1))
}

func TestQueryEntitiesRejectsBadLimit(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{}

	r := newAuthenticatedRequest(http.MethodGet, "/api/v0/entities?appCode=app&limit=nan", "", nil)
	w := httptest.NewRecorder()

	queryEntitiesHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(len(svc.QueryCalls()), 0)
}

func TestGetUnknownEntityReturns404(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		GetByDeviceIDFunc: func(ctx context.Context, deviceID, userID, appCode string) (types.Device, error) {
			return types.Device{}, entities.ErrDeviceNotFound
		},
	}

	r := newAuthenticatedRequest(http.MethodGet, "/api/v0/entities/net1-missing?appCode=app", "", map[string]string{"deviceID": "net1-missing"})
	w := httptest.NewRecorder()

	getEntityHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusNotFound)
}

func TestShareReturnsPerDeviceResults(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		ShareFunc: func(ctx context.Context, request types.ShareRequest) ([]types.ShareResult, error) {
			return []types.ShareResult{
				{DeviceID: request.DeviceIDs[0], Shared: true},
				{DeviceID: request.DeviceIDs[1], Shared: false, Error: "device not found"},
			}, nil
		},
	}

	body := `{"homeID":"home-1","memberID":"bob","deviceIDs":["net1-dev1","net1-dev2"]}`
	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/entities/share?appCode=app", body, nil)
	w := httptest.NewRecorder()

	shareEntitiesHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusOK)

	request := svc.ShareCalls()[0].Request
	is.Equal(request.UserID, "alice")
	is.Equal(request.AppCode, "app")

	response := struct {
		Data []types.ShareResult `json:"data"`
	}{}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.Equal(len(response.Data), 2)
	is.True(response.Data[0].Shared)
	is.Equal(response.Data[1].Error, "device not found")
}

func TestShareByNonOwnerIsForbidden(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		ShareFunc: func(ctx context.Context, request types.ShareRequest) ([]types.ShareResult, error) {
			return nil, entities.ErrNotHomeOwner
		},
	}

	body := `{"homeID":"home-1","memberID":"bob","deviceIDs":["net1-dev1"]}`
	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/entities/share?appCode=app", body, nil)
	w := httptest.NewRecorder()

	shareEntitiesHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusForbidden)
}

func TestMoveEntityPassesRouteParamAndBody(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		MoveToAreaFunc: func(ctx context.Context, deviceID, userID, appCode, areaID string) error {
			return nil
		},
	}

	r := newAuthenticatedRequest(http.MethodPatch, "/api/v0/entities/net1-dev1?appCode=app", `{"areaID":"kitchen"}`, map[string]string{"deviceID": "net1-dev1"})
	w := httptest.NewRecorder()

	moveEntityHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusOK)

	call := svc.MoveToAreaCalls()[0]
	is.Equal(call.DeviceID, "net1-dev1")
	is.Equal(call.UserID, "alice")
	is.Equal(call.AreaID, "kitchen")
}

func TestDeleteEntityReturnsNoContent(t *testing.T) {
	is := is.New(t)

	svc := &entities.EntityManagementMock{
		DeleteFunc: func(ctx context.Context, deviceID, userID, appCode string) error {
			return nil
		},
	}

	r := newAuthenticatedRequest(http.MethodDelete, "/api/v0/entities/net1-dev1?appCode=app", "", map[string]string{"deviceID": "net1-dev1"})
	w := httptest.NewRecorder()

	deleteEntityHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusNoContent)
	is.Equal(svc.DeleteCalls()[0].DeviceID, "net1-dev1")
}

func TestCreateHomeForcesCallerAsUser(t *testing.T) {
	is := is.New(t)

	var created types.Home
	svc := &homes.HomeManagementMock{
		CreateHomeFunc: func(ctx context.Context, home types.Home) error {
			created = home
			return nil
		},
	}

	body := `{"homeID":"home-1","name":"Seaside","userID":"mallory"}`
	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/homes?appCode=app", body, nil)
	w := httptest.NewRecorder()

	createHomeHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusCreated)
	is.Equal(created.UserID, "alice")
	is.Equal(created.Name, "Seaside")
}

func TestAddMemberRequiresMemberID(t *testing.T) {
	is := is.New(t)

	svc := &homes.HomeManagementMock{}

	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/homes/home-1/members?appCode=app", `{}`, map[string]string{"homeID": "home-1"})
	w := httptest.NewRecorder()

	addMemberHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(len(svc.AddMemberCalls()), 0)
}

func TestCreateAreaBuildsAreaFromRouteAndBody(t *testing.T) {
	is := is.New(t)

	svc := &homes.HomeManagementMock{
		CreateAreaFunc: func(ctx context.Context, area types.Area) error {
			return nil
		},
	}

	body := `{"areaID":"kitchen","name":"Kitchen","position":2}`
	r := newAuthenticatedRequest(http.MethodPost, "/api/v0/homes/home-1/areas?appCode=app", body, map[string]string{"homeID": "home-1"})
	w := httptest.NewRecorder()

	createAreaHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusCreated)

	area := svc.CreateAreaCalls()[0].Area
	is.Equal(area.AreaID, "kitchen")
	is.Equal(area.HomeID, "home-1")
	is.Equal(area.UserID, "alice")
	is.Equal(area.Position, 2)
}

func TestRenameHomeRejectsEmptyName(t *testing.T) {
	is := is.New(t)

	svc := &homes.HomeManagementMock{}

	r := newAuthenticatedRequest(http.MethodPatch, "/api/v0/homes/home-1?appCode=app", `{"name":""}`, map[string]string{"homeID": "home-1"})
	w := httptest.NewRecorder()

	renameHomeHandler(slog.Default(), svc)(w, r)

	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(len(svc.RenameHomeCalls()), 0)
}

type statsProviderMock struct {
	home types.HomeStatistics
	area types.AreaStatistics
	err  error
}

func (m *statsProviderMock) GetHomeStatistics(ctx context.Context, homeID, userID, appCode string) (types.HomeStatistics, error) {
	return m.home, m.err
}

func (m *statsProviderMock) GetAreaStatistics(ctx context.Context, areaID, userID, appCode string) (types.AreaStatistics, error) {
	return m.area, m.err
}

func TestHomeStatisticsAreReturnedAsJSON(t *testing.T) {
	is := is.New(t)

	stats := &statsProviderMock{
		home: types.HomeStatistics{HomeID: "home-1", UserID: "alice", AppCode: "app", Entities: 4, Controllers: 1},
	}

	r := newAuthenticatedRequest(http.MethodGet, "/api/v0/homes/home-1/statistics?appCode=app", "", map[string]string{"homeID": "home-1"})
	w := httptest.NewRecorder()

	homeStatisticsHandler(slog.Default(), stats)(w, r)

	is.Equal(w.Code, http.StatusOK)

	response := struct {
		Data types.HomeStatistics `json:"data"`
	}{}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.Equal(response.Data.Entities, int64(4))
	is.Equal(response.Data.Controllers, int64(1))
}

func TestMissingStatisticsReturn404(t *testing.T) {
	is := is.New(t)

	stats := &statsProviderMock{err: storage.ErrNoRows}

	r := newAuthenticatedRequest(http.MethodGet, "/api/v0/areas/kitchen/statistics?appCode=app", "", map[string]string{"areaID": "kitchen"})
	w := httptest.NewRecorder()

	areaStatisticsHandler(slog.Default(), stats)(w, r)

	is.Equal(w.Code, http.StatusNotFound)
}

func TestHealthEndpointIsUnauthenticated(t *testing.T) {
	is := is.New(t)

	router, err := RegisterHandlers(context.Background(), chi.NewRouter(), strings.NewReader(regoPolicy), &entities.EntityManagementMock{}, &homes.HomeManagementMock{}, &statsProviderMock{})
	is.NoErr(err)

	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	is.NoErr(err)
	defer resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestApiRejectsRequestsWithoutToken(t *testing.T) {
	is := is.New(t)

	router, err := RegisterHandlers(context.Background(), chi.NewRouter(), strings.NewReader(regoPolicy), &entities.EntityManagementMock{}, &homes.HomeManagementMock{}, &statsProviderMock{})
	is.NoErr(err)

	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v0/homes?appCode=app")
	is.NoErr(err)
	defer resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

const regoPolicy = `
package example.authz

default allow := false

allow := response if {
	input.token == "sometoken"
	response := {
		"userID": "alice",
		"appCodes": ["app"],
	}
}
`
