package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/models"
)

const defaultTimeout = 3 * time.Second

// ChangeNotifier is told about every successful record write.
type ChangeNotifier interface {
	RecordsChanged(ctx context.Context, ownerID string, entities []models.EntityType)
}

// requestLang picks the response language from the lang query parameter or,
// failing that, the Accept-Language header.
func requestLang(r *http.Request) locale.Lang {
	return locale.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func notify(ctx context.Context, n ChangeNotifier, ownerID string, entities ...models.EntityType) {
	if n != nil {
		n.RecordsChanged(ctx, ownerID, entities)
	}
}
