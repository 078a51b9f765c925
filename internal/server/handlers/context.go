package handlers

import "context"

type contextKey string

// SubjectKey is the request context key under which the auth middleware
// stores the authenticated username.
const SubjectKey contextKey = "subject"

// SubjectFromContext returns the authenticated username, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok && subject != ""
}
