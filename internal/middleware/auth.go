package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/pkg/authenticator"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/router"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type AuthVerifier struct {
	tokenEngine authenticator.TokenEngine[model.AccessToken]
	optional    bool
}

func NewAuthVerifier(tokenEngine authenticator.TokenEngine[model.AccessToken]) *AuthVerifier {
	return &AuthVerifier{tokenEngine: tokenEngine}
}

// WithOptional lets requests without a token through as anonymous.
func (a *AuthVerifier) WithOptional() *AuthVerifier {
	a.optional = true
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := extractBearer(xcontext.HTTPRequest(ctx))
		if token == "" {
			if a.optional {
				return nil, nil
			}

			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := a.tokenEngine.Verify(token)
		if err != nil {
			if a.optional {
				return nil, nil
			}

			return nil, errorx.New(errorx.TokenExpired, "Your session is expired")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func extractBearer(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
