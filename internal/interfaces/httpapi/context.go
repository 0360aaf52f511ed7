package httpapi

import "context"

type contextKey string

const adminCallerContextKey contextKey = "admin_caller"

// adminCaller identifies who passed the admin token check.
type adminCaller struct {
	IP      string
	Country string
}

func withAdminCaller(ctx context.Context, c adminCaller) context.Context {
	return context.WithValue(ctx, adminCallerContextKey, c)
}

func adminCallerFromContext(ctx context.Context) (adminCaller, bool) {
	c, ok := ctx.Value(adminCallerContextKey).(adminCaller)
	return c, ok
}
