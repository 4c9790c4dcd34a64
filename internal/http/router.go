package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"training-polls/internal/domain/poll"
	"training-polls/internal/domain/session"
	"training-polls/internal/domain/vote"
	jwtpkg "training-polls/internal/platform/jwt"
	"training-polls/internal/repository/kv"
	"training-polls/internal/worker"
)

// Pinger reports backend health for the readiness endpoint. Embedded store
// backends have nothing to ping and pass nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	sessions *session.Manager
	polls    *poll.Service
	votes    *vote.Service
	prefs    *kv.PrefsRepo
	jwtMgr   *jwtpkg.Manager
	voteCh   chan<- worker.VoteEvent
	pinger   Pinger
}

func NewRouter(
	sessions *session.Manager,
	polls *poll.Service,
	votes *vote.Service,
	prefs *kv.PrefsRepo,
	jwtMgr *jwtpkg.Manager,
	voteCh chan<- worker.VoteEvent,
	pinger Pinger,
) http.Handler {
	h := &Handler{
		sessions: sessions,
		polls:    polls,
		votes:    votes,
		prefs:    prefs,
		jwtMgr:   jwtMgr,
		voteCh:   voteCh,
		pinger:   pinger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.handleLogin)

		r.Get("/theme", h.handleGetTheme)
		r.Put("/theme", h.handleSetTheme)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(jwtMgr))

			r.Post("/auth/logout", h.handleLogout)
			r.Get("/auth/session", h.handleSession)

			r.Get("/polls", h.handleListPolls)
			r.Get("/polls/{id}", h.handleGetPoll)
			r.Get("/polls/{id}/results", h.handlePollResults)
			r.With(RateLimitVotes(rate.Every(time.Minute/10), 3)).Post("/polls/{id}/vote", h.handleCastVote)
			r.Get("/votes/history", h.handleVoteHistory)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(session.RoleAdmin))
				r.Post("/polls", h.handleCreatePoll)
			})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		// embedded backend, nothing to probe
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "store_unavailable",
			"message": "store not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
