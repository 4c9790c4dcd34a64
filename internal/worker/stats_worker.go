package worker

import (
	"context"
	"log/slog"

	"training-polls/internal/metrics"
)

// VoteEvent is emitted after a vote is accepted. Delivery is best-effort:
// the sender drops the event when the buffer is full.
type VoteEvent struct {
	PollID    string
	UserEmail string
	Answer    string
}

// StatsWorker consumes vote events off the hot path, logging them and
// feeding the vote counters.
type StatsWorker struct {
	ch  <-chan VoteEvent
	log *slog.Logger
}

func NewStatsWorker(ch <-chan VoteEvent) *StatsWorker {
	return &StatsWorker{ch: ch, log: slog.Default()}
}

func (w *StatsWorker) Run(ctx context.Context) {
	w.log.Info("stats worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info("stats worker stopped")
			return
		case ev := <-w.ch:
			metrics.IncVoteCast(ev.Answer)
			w.log.Info("vote recorded", "poll", ev.PollID, "answer", ev.Answer)
		}
	}
}
