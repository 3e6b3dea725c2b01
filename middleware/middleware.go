package middleware

import (
	"context"
	"net/http"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/auth"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/globals"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/utils"

	"github.com/julienschmidt/httprouter"
)

// Auth gates owner-scoped routes on the session cookie.
type Auth struct {
	tokens *auth.TokenService
}

func NewAuth(tokens *auth.TokenService) *Auth {
	return &Auth{tokens: tokens}
}

// Authenticate verifies the session cookie and stores the subject email
// in the request context.
func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		cookie, err := r.Cookie(globals.CookieName)
		if err != nil || cookie.Value == "" {
			utils.Unauthorized(w)
			return
		}

		claims, err := a.tokens.Verify(cookie.Value)
		if err != nil {
			utils.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// OwnerOnly authenticates and additionally requires the verified email
// to equal the named path parameter.
func (a *Auth) OwnerOnly(param string, next httprouter.Handle) httprouter.Handle {
	return a.Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if utils.GetEmailFromRequest(r) != ps.ByName(param) {
			utils.Unauthorized(w)
			return
		}
		next(w, r, ps)
	})
}
