package middleware

import (
	"net/http"

	"github.com/vranjes/workoutsink/internal/telemetry/tracing"
	"github.com/vranjes/workoutsink/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// AuthMiddlewareHandler guards the mutating endpoints with a shared secret
// sent by the phone automation client in the X-API-Key header. When no
// secret is configured the check is disabled and everything is open -
// deliberate, the service then runs in a trusted environment.
type AuthMiddlewareHandler struct {
	apiSecret      string
	protectedPaths map[string]map[string]bool // path -> methods
}

func NewAuthMiddlewareHandler(apiSecret string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		apiSecret: apiSecret,
		protectedPaths: map[string]map[string]bool{
			"/ingest/workout": {http.MethodPost: true},
			"/data/workouts":  {http.MethodDelete: true},
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsProtected(path, method string) bool {
	methods, ok := h.protectedPaths[path]
	return ok && methods[method]
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.apiSecret == "" || !h.pathIsProtected(r.URL.Path, r.Method) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				log.Tracef("[missing api key] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-api-key")
				return
			}

			if apiKey != h.apiSecret {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Errorf("unauthorized %s %s request detected from %s", r.Method, r.URL.Path, reqIp)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-api-key")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
