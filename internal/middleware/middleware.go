package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cradoe/biodata/internal/config"
	"github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/response"

	"github.com/google/uuid"
	"github.com/pascaldekloe/jwt"
	"github.com/tomasen/realip"
)

type Middleware struct {
	errHandler *errHandler.ErrorHandler
	logger     *slog.Logger
	config     *config.Config
	now        func() time.Time
}

func New(errHandler *errHandler.ErrorHandler, logger *slog.Logger, config *config.Config) *Middleware {
	return &Middleware{
		errHandler: errHandler,
		logger:     logger,
		config:     config,
		now:        time.Now,
	}
}

func (mid *Middleware) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				mid.errHandler.ServerError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (mid *Middleware) LogAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := mid.now()
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount, "duration", mid.now().Sub(start))

		mid.logger.Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

// Authenticate resolves the record owner from a bearer token. The token's
// subject is the owner id; issuer and audience are checked when configured.
// Requests without a token pass through anonymously.
func (mid *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")

		if authorizationHeader != "" {
			headerParts := strings.Split(authorizationHeader, " ")

			if len(headerParts) != 2 || headerParts[0] != "Bearer" {
				mid.errHandler.InvalidAuthenticationToken(w, r)
				return
			}

			token := headerParts[1]

			claims, err := jwt.HMACCheck([]byte(token), []byte(mid.config.Jwt.SecretKey))
			if err != nil {
				mid.errHandler.InvalidAuthenticationToken(w, r)
				return
			}

			if !claims.Valid(mid.now()) {
				mid.errHandler.InvalidAuthenticationToken(w, r)
				return
			}

			if mid.config.Jwt.Issuer != "" && claims.Issuer != mid.config.Jwt.Issuer {
				mid.errHandler.InvalidAuthenticationToken(w, r)
				return
			}

			if mid.config.Jwt.Audience != "" && !claims.AcceptAudience(mid.config.Jwt.Audience) {
				mid.errHandler.InvalidAuthenticationToken(w, r)
				return
			}

			// owner ids are the primary keys of the record tables
			if _, err := uuid.Parse(claims.Subject); err != nil {
				mid.errHandler.InvalidAuthenticationToken(w, r)
				return
			}

			r = context.ContextSetOwnerID(r, claims.Subject)
		}

		next.ServeHTTP(w, r)
	})
}

func (mid *Middleware) RequireAuthenticatedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if context.ContextGetOwnerID(r) == "" {
			mid.errHandler.AuthenticationRequired(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
