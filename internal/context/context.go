package context

import (
	"context"
	"net/http"
)

type contextKey string

const (
	ownerIDContextKey = contextKey("ownerID")
)

// ContextSetOwnerID stores the id of the authenticated record owner.
func ContextSetOwnerID(r *http.Request, ownerID string) *http.Request {
	ctx := context.WithValue(r.Context(), ownerIDContextKey, ownerID)
	return r.WithContext(ctx)
}

func ContextGetOwnerID(r *http.Request) string {
	ownerID, ok := r.Context().Value(ownerIDContextKey).(string)
	if !ok {
		return ""
	}

	return ownerID
}
