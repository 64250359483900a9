package middleware

import (
	"net/http"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const AdminTokenHeader = "X-GYMCOACH-ADMIN-TOKEN"

// AdminAuth lets a request through only if its admin token matches the bcrypt hash.
// With an empty hash every request is rejected.
func AdminAuth(adminTokenHash string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.adminAuth")
			defer span.End()

			if r.Method == http.MethodOptions {
				span.SetStatus(codes.Ok, "options-ok")
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(AdminTokenHeader)
			if token == "" {
				log.Tracef("[missing token] [admin auth] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-admin-token")
				return
			}

			if adminTokenHash == "" || !pkg.CheckPasswordHash(token, adminTokenHash) {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Warnf("[invalid token] [admin auth] unauthorized => %s from %s", r.URL.Path, reqIp)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-admin-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
