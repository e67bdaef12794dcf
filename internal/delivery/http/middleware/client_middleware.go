package middleware

import (
	"context"
	"net/http"

	"medicare-plus/pkg/jwt"
	"medicare-plus/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ClientIDKey contextKey = "client_id"

	// ClientTokenHeader carries the client token for callers without cookies
	ClientTokenHeader = "X-Client-Token"
)

// ClientMiddleware binds every request to a client storage context. Requests
// without a valid token are given a new context, the same way a browser gets
// fresh local storage.
type ClientMiddleware struct {
	jwtService *jwt.JWTService
	cookieName string
	secure     bool
	log        *logrus.Logger
}

func NewClientMiddleware(jwtService *jwt.JWTService, cookieName string, secure bool, log *logrus.Logger) *ClientMiddleware {
	return &ClientMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
		secure:     secure,
		log:        log,
	}
}

func (m *ClientMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(ClientTokenHeader)
		if tokenString == "" {
			if cookie, err := r.Cookie(m.cookieName); err == nil {
				tokenString = cookie.Value
			}
		}

		if tokenString != "" {
			claims, err := m.jwtService.ValidateToken(tokenString)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), claims.ClientID)))
				return
			}
			m.log.Debugf("Replacing invalid client token: %v", err)
		}

		token, clientID, err := m.jwtService.GenerateClientToken()
		if err != nil {
			m.log.Warnf("Failed to issue client token: %+v", err)
			response.InternalServerError(w, "Failed to create client context")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.jwtService.GetTokenExpiry().Seconds()),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(ClientTokenHeader, token)

		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), clientID)))
	})
}

// WithClientID stores the client id in ctx
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ClientIDKey, clientID)
}

// GetClientIDFromContext extracts client ID from context
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDKey).(string)
	return clientID, ok && clientID != ""
}
