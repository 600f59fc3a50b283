package mux

import (
	"context"
	"net/http"

	"blackjack-server/internal/session"
	"blackjack-server/pkg/blackjack"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxSessionKey ctxKey = iota

// sessionCookie identifies the caller's game session
const sessionCookie = "blackjack-session"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	game    *blackjack.Game
	store   session.Store
}

// NewMux returns a new HTTP mux
func NewMux(version string, game *blackjack.Game, store session.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		game:    game,
		store:   store,
	}

	this.Router.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	// every game endpoint is scoped to a session cookie
	{
		r := this.Router.PathPrefix("/api/game").Subrouter()
		r.Use(this.sessionMiddleware)

		r.Methods(http.MethodGet).Path("/state").Handler(this.getState())
		r.Methods(http.MethodPost).Path("/bet").Handler(this.postBet())
		r.Methods(http.MethodPost).Path("/insurance").Handler(this.postInsurance())
		r.Methods(http.MethodPost).Path("/hit").Handler(this.postHandAction(this.game.Hit))
		r.Methods(http.MethodPost).Path("/stand").Handler(this.postHandAction(this.game.Stand))
		r.Methods(http.MethodPost).Path("/double").Handler(this.postHandAction(this.game.DoubleDown))
		r.Methods(http.MethodPost).Path("/split").Handler(this.postHandAction(this.game.Split))
	}

	return this
}

// sessionMiddleware ensures the request carries a session cookie, minting a
// new session on first contact
func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id = session.NewID()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func sessionID(r *http.Request) string {
	return r.Context().Value(ctxSessionKey).(string)
}
