package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "training-polls/docs"
	"training-polls/internal/config"
	"training-polls/internal/domain/poll"
	"training-polls/internal/domain/session"
	"training-polls/internal/domain/vote"
	api "training-polls/internal/http"
	"training-polls/internal/metrics"
	jwtpkg "training-polls/internal/platform/jwt"
	"training-polls/internal/repository/kv"
	"training-polls/internal/store"
	"training-polls/internal/worker"
)

// @title           Training Polls API
// @version         1.0
// @description     Training-session polling with demo auth and yes/no votes
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, pinger, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store open error: %v", err)
	}
	defer st.Close()

	creds, err := session.NewStaticCredentials(cfg.Accounts)
	if err != nil {
		log.Fatalf("credential table error: %v", err)
	}

	sessionMgr := session.NewManager(creds, kv.NewSessionRepo(st))
	pollSvc := poll.NewService(kv.NewPollRepo(st))
	voteSvc := vote.NewService(kv.NewVoteRepo(st), pollSvc)
	prefs := kv.NewPrefsRepo(st)

	if cfg.SeedDemo {
		if err := pollSvc.EnsureSeeded(ctx); err != nil {
			log.Fatalf("demo seed error: %v", err)
		}
	}

	jwtMgr := jwtpkg.NewManager(cfg.JWTSecret, "")

	metrics.Register()

	voteCh := make(chan worker.VoteEvent, 100)
	statsWorker := worker.NewStatsWorker(voteCh)

	router := api.NewRouter(sessionMgr, pollSvc, voteSvc, prefs, jwtMgr, voteCh, pinger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go statsWorker.Run(ctx)

	go func() {
		log.Printf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}

	log.Println("server stopped")
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, api.Pinger, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pg, err := store.OpenPostgres(ctx, cfg.DB_DSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg, nil
	case config.BackendMemory:
		return store.NewMemory(), nil, nil
	default:
		b, err := store.OpenBolt(cfg.BoltPath)
		return b, nil, err
	}
}
