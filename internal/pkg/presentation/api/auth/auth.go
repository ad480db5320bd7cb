package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type userContextKey struct{ name string }

var userCtxKey = &userContextKey{"user-id"}

type appCodesContextKey struct{ name string }

var appCodesCtxKey = &appCodesContextKey{"allowed-app-codes"}

var tracer = otel.Tracer("home-entity-mgmt/authz")

// NewAuthenticator returns a middleware that validates the bearer token with
// the provided rego policy and stores the resolved user id and allowed app
// codes in the request context.
func NewAuthenticator(ctx context.Context, logger *slog.Logger, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, err
	}

	query, err := rego.New(
		rego.Query("x = data.example.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token": token[7:],
				"path":  strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/"),
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// If authz fails we will get back a single bool. Check for that first.
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// If authz succeeds we should expect a result object here
			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			userID, ok := result["userID"].(string)
			if !ok || userID == "" {
				err = errors.New("bad response from authz policy engine")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			appCodes := []string{}
			if anyCodes, ok := result["appCodes"].([]any); ok {
				for _, c := range anyCodes {
					if code, ok := c.(string); ok {
						appCodes = append(appCodes, code)
					}
				}
			}

			ctx := WithUser(r.Context(), userID)
			ctx = WithAllowedAppCodes(ctx, appCodes)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}, nil
}

func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userCtxKey, userID)
}

func GetUserFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userCtxKey).(string)
	return userID
}

func WithAllowedAppCodes(ctx context.Context, appCodes []string) context.Context {
	return context.WithValue(ctx, appCodesCtxKey, appCodes)
}

func GetAllowedAppCodesFromContext(ctx context.Context) []string {
	appCodes, _ := ctx.Value(appCodesCtxKey).([]string)
	return appCodes
}
