package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

type contextKeyDevice struct{}

// ContextKeyDevice is exported for tests that build contexts directly.
var ContextKeyDevice = contextKeyDevice{}

// GetDevice retrieves the device summary from the context.
func GetDevice(ctx context.Context) string {
	if device, ok := ctx.Value(ContextKeyDevice).(string); ok {
		return device
	}
	return ""
}

// WithDevice injects a device summary into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, ContextKeyDevice, device)
}

// Device parses the User-Agent header into a compact summary
// ("Chrome 120 / Android") available to downstream audit events.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.UserAgent()
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		ua := useragent.New(raw)
		name, version := ua.Browser()
		parts := make([]string, 0, 2)
		if name != "" {
			if idx := strings.IndexByte(version, '.'); idx > 0 {
				version = version[:idx]
			}
			parts = append(parts, strings.TrimSpace(name+" "+version))
		}
		if os := ua.OSInfo().Name; os != "" {
			parts = append(parts, os)
		}
		summary := strings.Join(parts, " / ")
		if summary == "" {
			summary = raw
		}
		ctx := WithDevice(r.Context(), summary)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
