package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/diwise/home-entity-mgmt/internal/pkg/application/entities"
	"github.com/diwise/home-entity-mgmt/internal/pkg/application/homes"
	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/internal/pkg/presentation/api/auth"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("home-entity-mgmt/api")

// StatisticsProvider exposes the stored aggregate counters. The postgres
// storage satisfies this directly.
type StatisticsProvider interface {
	GetHomeStatistics(ctx context.Context, homeID, userID, appCode string) (types.HomeStatistics, error)
	GetAreaStatistics(ctx context.Context, areaID, userID, appCode string) (types.AreaStatistics, error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, entitySvc entities.EntityManagement, homeSvc homes.HomeManagement, stats StatisticsProvider) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/entities", func(r chi.Router) {
				r.Get("/", queryEntitiesHandler(log, entitySvc))
				r.Post("/", createEntityHandler(log, entitySvc))
				r.Post("/share", shareEntitiesHandler(log, entitySvc))
				r.Post("/unshare", unshareEntitiesHandler(log, entitySvc))
				r.Get("/{deviceID}", getEntityHandler(log, entitySvc))
				r.Patch("/{deviceID}", moveEntityHandler(log, entitySvc))
				r.Delete("/{deviceID}", deleteEntityHandler(log, entitySvc))
			})

			r.Route("/homes", func(r chi.Router) {
				r.Get("/", queryHomesHandler(log, homeSvc))
				r.Post("/", createHomeHandler(log, homeSvc))
				r.Get("/{homeID}", getHomeHandler(log, homeSvc))
				r.Patch("/{homeID}", renameHomeHandler(log, homeSvc))
				r.Delete("/{homeID}", deleteHomeHandler(log, homeSvc))
				r.Post("/{homeID}/members", addMemberHandler(log, homeSvc))
				r.Post("/{homeID}/areas", createAreaHandler(log, homeSvc))
				r.Get("/{homeID}/areas", queryAreasHandler(log, homeSvc))
				r.Get("/{homeID}/statistics", homeStatisticsHandler(log, stats))
			})

			r.Route("/areas", func(r chi.Router) {
				r.Patch("/{areaID}", renameAreaHandler(log, homeSvc))
				r.Get("/{areaID}/statistics", areaStatisticsHandler(log, stats))
			})
		})
	})

	return router, nil
}

// appCodeFromRequest resolves the app code the request acts on and checks it
// against the codes the token is allowed to use.
func appCodeFromRequest(r *http.Request) (string, bool) {
	appCode := r.URL.Query().Get("appCode")
	if appCode == "" {
		appCode = r.Header.Get("X-App-Code")
	}
	if appCode == "" {
		return "", false
	}

	return appCode, slices.Contains(auth.GetAllowedAppCodesFromContext(r.Context()), appCode)
}

func statusFromError(err error) int {
	notFound := []error{
		entities.ErrDeviceNotFound, entities.ErrHomeNotFound, entities.ErrAreaNotFound,
		entities.ErrParentNotFound, entities.ErrMemberNotFound,
		homes.ErrHomeNotFound, homes.ErrAreaNotFound,
		storage.ErrNoRows,
	}
	conflict := []error{
		entities.ErrDeviceAlreadyExists, entities.ErrDeviceAlreadyShared,
		homes.ErrHomeAlreadyExists, homes.ErrMemberAlreadyAdded, homes.ErrAreaAlreadyExists,
	}
	forbidden := []error{
		entities.ErrNotHomeOwner, homes.ErrNotHomeOwner,
	}
	badRequest := []error{
		entities.ErrTypeNotRegistered, entities.ErrTypeMismatch, entities.ErrPairingTokenMismatch,
		entities.ErrDeviceInactive, entities.ErrBadDeviceID, entities.ErrCouldNotBeDeleted,
	}

	contains := func(errs []error) bool {
		for _, e := range errs {
			if errors.Is(err, e) {
				return true
			}
		}
		return false
	}

	switch {
	case contains(notFound):
		return http.StatusNotFound
	case contains(conflict):
		return http.StatusConflict
	case contains(forbidden):
		return http.StatusForbidden
	case contains(badRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func createEntityHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var d types.Device
		err = json.Unmarshal(body, &d)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		d.UserID = auth.GetUserFromContext(ctx)
		d.AppCode = appCode

		err = svc.Create(ctx, d)
		if err != nil {
			requestLogger.Error("unable to create entity", "device_id", d.DeviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
	}
}

func queryEntitiesHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-entities")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		conditions := []storage.ConditionFunc{
			storage.WithUserID(auth.GetUserFromContext(ctx)),
			storage.WithAppCode(appCode),
		}

		q := r.URL.Query()

		if homeID := q.Get("homeID"); homeID != "" {
			conditions = append(conditions, storage.WithHomeID(homeID))
		}
		if areaID := q.Get("areaID"); areaID != "" {
			conditions = append(conditions, storage.WithAreaID(areaID))
		}
		if parentID := q.Get("parentID"); q.Has("parentID") {
			conditions = append(conditions, storage.WithParentID(parentID))
		}
		if controller := q.Get("controller"); controller != "" {
			isController, err := strconv.ParseBool(controller)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithController(isController))
		}
		if sortBy := q.Get("sortBy"); sortBy != "" {
			conditions = append(conditions, storage.WithSortBy(sortBy))
		}
		if q.Get("sortOrder") == "desc" {
			conditions = append(conditions, storage.WithSortDesc(true))
		}
		if limit := q.Get("limit"); limit != "" {
			n, err := strconv.Atoi(limit)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithLimit(n))
		}
		if offset := q.Get("offset"); offset != "" {
			n, err := strconv.Atoi(offset)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithOffset(n))
		}

		result, err := svc.Query(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query entities", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(NewApiResponse(result).Byte())
	}
}

func getEntityHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		deviceID := chi.URLParam(r, "deviceID")

		device, err := svc.GetByDeviceID(ctx, deviceID, auth.GetUserFromContext(ctx), appCode)
		if err != nil {
			if !errors.Is(err, entities.ErrDeviceNotFound) {
				requestLogger.Error("unable to fetch entity", "device_id", deviceID, "err", err.Error())
			}
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: device})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func moveEntityHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "move-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		deviceID := chi.URLParam(r, "deviceID")

		var req moveEntityRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.MoveToArea(ctx, deviceID, auth.GetUserFromContext(ctx), appCode, req.AreaID)
		if err != nil {
			requestLogger.Error("unable to move entity", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func deleteEntityHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		deviceID := chi.URLParam(r, "deviceID")

		err = svc.Delete(ctx, deviceID, auth.GetUserFromContext(ctx), appCode)
		if err != nil {
			requestLogger.Error("unable to delete entity", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func shareEntitiesHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return shareHandler(log, "share-entities", func(ctx context.Context, req types.ShareRequest) ([]types.ShareResult, error) {
		return svc.Share(ctx, req)
	})
}

func unshareEntitiesHandler(log *slog.Logger, svc entities.EntityManagement) http.HandlerFunc {
	return shareHandler(log, "unshare-entities", func(ctx context.Context, req types.ShareRequest) ([]types.ShareResult, error) {
		return svc.Unshare(ctx, req)
	})
}

func shareHandler(log *slog.Logger, spanName string, fn func(ctx context.Context, req types.ShareRequest) ([]types.ShareResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), spanName)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var req types.ShareRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		req.UserID = auth.GetUserFromContext(ctx)
		req.AppCode = appCode

		results, err := fn(ctx, req)
		if err != nil {
			requestLogger.Error("unable to process share request", "home_id", req.HomeID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: results})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func createHomeHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-home")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var h types.Home
		err = json.NewDecoder(r.Body).Decode(&h)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		h.UserID = auth.GetUserFromContext(ctx)
		h.AppCode = appCode

		err = svc.CreateHome(ctx, h)
		if err != nil {
			requestLogger.Error("unable to create home", "home_id", h.HomeID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func getHomeHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-home")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		homeID := chi.URLParam(r, "homeID")

		home, err := svc.GetHome(ctx, homeID, auth.GetUserFromContext(ctx), appCode)
		if err != nil {
			if !errors.Is(err, homes.ErrHomeNotFound) {
				requestLogger.Error("unable to fetch home", "home_id", homeID, "err", err.Error())
			}
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: home})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func queryHomesHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-homes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		result, err := svc.QueryHomes(ctx,
			storage.WithUserID(auth.GetUserFromContext(ctx)),
			storage.WithAppCode(appCode))
		if err != nil {
			requestLogger.Error("unable to query homes", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(NewApiResponse(result).Byte())
	}
}

func renameHomeHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "rename-home")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		homeID := chi.URLParam(r, "homeID")

		var req renameRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.RenameHome(ctx, homeID, auth.GetUserFromContext(ctx), appCode, req.Name)
		if err != nil {
			requestLogger.Error("unable to rename home", "home_id", homeID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func deleteHomeHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-home")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		homeID := chi.URLParam(r, "homeID")

		err = svc.DeleteHome(ctx, homeID, auth.GetUserFromContext(ctx), appCode)
		if err != nil {
			requestLogger.Error("unable to delete home", "home_id", homeID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func addMemberHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "add-member")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		homeID := chi.URLParam(r, "homeID")

		var req addMemberRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.MemberID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.AddMember(ctx, homeID, appCode, auth.GetUserFromContext(ctx), req.MemberID)
		if err != nil {
			requestLogger.Error("unable to add member", "home_id", homeID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func createAreaHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-area")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		homeID := chi.URLParam(r, "homeID")

		var req createAreaRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		area := types.Area{
			AreaID:   req.AreaID,
			HomeID:   homeID,
			UserID:   auth.GetUserFromContext(ctx),
			AppCode:  appCode,
			Name:     req.Name,
			Position: req.Position,
		}

		err = svc.CreateArea(ctx, area)
		if err != nil {
			requestLogger.Error("unable to create area", "area_id", area.AreaID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func queryAreasHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-areas")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		result, err := svc.QueryAreas(ctx,
			storage.WithHomeID(chi.URLParam(r, "homeID")),
			storage.WithUserID(auth.GetUserFromContext(ctx)),
			storage.WithAppCode(appCode))
		if err != nil {
			requestLogger.Error("unable to query areas", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(NewApiResponse(result).Byte())
	}
}

func renameAreaHandler(log *slog.Logger, svc homes.HomeManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "rename-area")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		areaID := chi.URLParam(r, "areaID")

		var req renameRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.RenameArea(ctx, areaID, auth.GetUserFromContext(ctx), appCode, req.Name)
		if err != nil {
			requestLogger.Error("unable to rename area", "area_id", areaID, "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func homeStatisticsHandler(log *slog.Logger, stats StatisticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "home-statistics")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		homeID := chi.URLParam(r, "homeID")

		s, err := stats.GetHomeStatistics(ctx, homeID, auth.GetUserFromContext(ctx), appCode)
		if err != nil {
			if !errors.Is(err, storage.ErrNoRows) {
				requestLogger.Error("unable to fetch home statistics", "home_id", homeID, "err", err.Error())
			}
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: s})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func areaStatisticsHandler(log *slog.Logger, stats StatisticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "area-statistics")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		appCode, ok := appCodeFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		areaID := chi.URLParam(r, "areaID")

		s, err := stats.GetAreaStatistics(ctx, areaID, auth.GetUserFromContext(ctx), appCode)
		if err != nil {
			if !errors.Is(err, storage.ErrNoRows) {
				requestLogger.Error("unable to fetch area statistics", "area_id", areaID, "err", err.Error())
			}
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: s})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}
