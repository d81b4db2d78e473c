package utils

import (
	"log"
	"strings"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

const authClaimsKey = "auth.claims"

// Security gates requests behind the shared app id and, per route, a bearer
// token with an allowed role. Failure paths always answer with an error
// envelope; a handler chain only continues on success.
type Security struct {
	AppID  string
	Tokens *TokenService
}

func NewSecurity(appID string, tokens *TokenService) *Security {
	return &Security{AppID: appID, Tokens: tokens}
}

func (s *Security) CheckAppID(ctx iris.Context) {
	appID := ctx.GetHeader("app-id")
	if appID == "" {
		Error(ctx, "App not provided")
		return
	}
	if appID != s.AppID {
		Error(ctx, "Invalid App ID")
		return
	}
	ctx.Next()
}

// CheckTokenWithRoles requires a valid token whose role is in the allow-list.
// An empty allow-list rejects every caller; a route misconfigured without
// roles grants nothing.
func (s *Security) CheckTokenWithRoles(roles ...string) iris.Handler {
	return func(ctx iris.Context) {
		raw := bearerToken(ctx)
		if raw == "" {
			Error(ctx, "Token not provided")
			return
		}

		claims, err := s.Tokens.Verify(raw)
		if err != nil {
			Error(ctx, "Invalid Token")
			return
		}

		if !slices.Contains(roles, claims.Role) {
			Error(ctx, "Access to this field is not allowed.")
			return
		}

		ctx.Values().Set(authClaimsKey, claims)
		ctx.Next()
	}
}

// CheckToken attaches the caller identity when a valid token is present and
// proceeds anonymously otherwise. Used where authentication changes the
// response shape but is not mandatory.
func (s *Security) CheckToken(ctx iris.Context) {
	if raw := bearerToken(ctx); raw != "" {
		if claims, err := s.Tokens.Verify(raw); err == nil {
			ctx.Values().Set(authClaimsKey, claims)
		}
	}
	ctx.Next()
}

// Authenticated returns the caller identity attached by the token middleware.
func Authenticated(ctx iris.Context) (*AccessToken, bool) {
	claims, ok := ctx.Values().Get(authClaimsKey).(*AccessToken)
	return claims, ok
}

func bearerToken(ctx iris.Context) string {
	token := ctx.GetHeader("x-access-token")
	if token == "" {
		token = ctx.GetHeader("Authorization")
	}
	return strings.TrimPrefix(token, "Bearer ")
}

// Recover converts handler panics into the generic internal error envelope.
// The panic value is only logged in development.
func Recover(dev bool) iris.Handler {
	return func(ctx iris.Context) {
		defer func() {
			if r := recover(); r != nil {
				if dev {
					log.Println("recovered from panic:", r)
				}
				InternalServerError(ctx)
				ctx.StopExecution()
			}
		}()
		ctx.Next()
	}
}
