package poll

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type memoryPollRepo struct {
	mu    sync.Mutex
	polls []Poll
}

func (r *memoryPollRepo) List(ctx context.Context) ([]Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Poll, len(r.polls))
	copy(out, r.polls)
	return out, nil
}

func (r *memoryPollRepo) Replace(ctx context.Context, polls []Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls = make([]Poll, len(polls))
	copy(r.polls, polls)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
}

func TestEnsureSeededRunsOnce(t *testing.T) {
	repo := &memoryPollRepo{}
	svc := NewService(repo)
	svc.now = fixedNow
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	polls, _ := repo.List(ctx)
	if len(polls) != 3 {
		t.Fatalf("expected 3 demo polls, got %d", len(polls))
	}

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, _ := repo.List(ctx)
	if len(again) != 3 {
		t.Fatalf("reseed must not add polls, got %d", len(again))
	}
	if again[0].ID != polls[0].ID {
		t.Fatalf("reseed must not replace polls")
	}
}

func TestDemoPollShape(t *testing.T) {
	repo := &memoryPollRepo{}
	svc := NewService(repo)
	svc.now = fixedNow
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	polls, _ := repo.List(ctx)

	// week 1: training 2025-01-13, deadline two days before
	if polls[0].TrainingDate != "2025-01-13" {
		t.Fatalf("unexpected training date %s", polls[0].TrainingDate)
	}
	if polls[0].Deadline != "2025-01-11" {
		t.Fatalf("unexpected deadline %s", polls[0].Deadline)
	}
	if polls[0].TrainingTime != "10:00" || polls[2].TrainingTime != "16:00" {
		t.Fatalf("unexpected time rotation %s %s", polls[0].TrainingTime, polls[2].TrainingTime)
	}
	if polls[0].Location != "Main Gym" || polls[1].Location != "Court 1" || polls[2].Location != "Outdoor Court" {
		t.Fatalf("unexpected location rotation")
	}
	if polls[0].Status != StatusActive {
		t.Fatalf("future deadline must seed as active")
	}
	if polls[0].CreatedBy != "admin@tsv.com" {
		t.Fatalf("unexpected creator %s", polls[0].CreatedBy)
	}

	seen := map[string]bool{}
	for _, p := range polls {
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("ids must be unique and non-empty")
		}
		seen[p.ID] = true
	}
}

func TestListActiveBoundaryInclusive(t *testing.T) {
	repo := &memoryPollRepo{polls: []Poll{
		{ID: "p1", Title: "closes today", Deadline: "2025-01-10"},
		{ID: "p2", Title: "closed yesterday", Deadline: "2025-01-09"},
		{ID: "p3", Title: "closes later", Deadline: "2025-02-01"},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	asOf := time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC)
	active, err := svc.ListActive(ctx, asOf)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 || active[0].ID != "p1" || active[1].ID != "p3" {
		t.Fatalf("deadline == asOf must be included, order preserved; got %+v", active)
	}

	nextDay, err := svc.ListActive(ctx, asOf.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(nextDay) != 1 || nextDay[0].ID != "p3" {
		t.Fatalf("passed deadline must be excluded; got %+v", nextDay)
	}
}

func TestFindByID(t *testing.T) {
	repo := &memoryPollRepo{polls: []Poll{{ID: "p1", Title: "one"}}}
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.FindByID(ctx, "p1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.Title != "one" {
		t.Fatalf("unexpected poll %+v", p)
	}

	if _, err := svc.FindByID(ctx, "missing"); !errors.Is(err, ErrPollNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := &memoryPollRepo{}
	svc := NewService(repo)
	svc.now = fixedNow
	ctx := context.Background()

	base := CreateInput{
		Title:        "Extra Session",
		TrainingDate: "2025-02-01",
		TrainingTime: "18:00",
		Deadline:     "2025-01-30",
		CreatedBy:    "admin@tsv.com",
	}

	cases := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr error
	}{
		{"missing title", func(in *CreateInput) { in.Title = "" }, ErrTitleRequired},
		{"bad training date", func(in *CreateInput) { in.TrainingDate = "01.02.2025" }, ErrInvalidDate},
		{"bad deadline", func(in *CreateInput) { in.Deadline = "soon" }, ErrInvalidDate},
		{"bad time", func(in *CreateInput) { in.TrainingTime = "6pm" }, ErrInvalidTime},
		{"deadline after training", func(in *CreateInput) { in.Deadline = "2025-02-02" }, ErrDeadlineTooLate},
	}

	for _, tc := range cases {
		in := base
		tc.mutate(&in)
		if _, err := svc.Create(ctx, in); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	polls, _ := repo.List(ctx)
	if len(polls) != 0 {
		t.Fatalf("rejected creates must not write, got %d polls", len(polls))
	}
}

func TestCreateAppends(t *testing.T) {
	repo := &memoryPollRepo{}
	svc := NewService(repo)
	svc.now = fixedNow
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{
		Title:        "Extra Session",
		Description:  "Conditioning focus",
		TrainingDate: "2025-02-01",
		TrainingTime: "18:00",
		Deadline:     "2025-01-30",
		Location:     "Court 1",
		CreatedBy:    "admin@tsv.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected id assigned")
	}
	if p.Status != StatusActive {
		t.Fatalf("future deadline must derive active, got %s", p.Status)
	}

	got, err := svc.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("find created: %v", err)
	}
	if got.Title != "Extra Session" || got.CreatedBy != "admin@tsv.com" {
		t.Fatalf("unexpected poll %+v", got)
	}

	// past deadline derives expired
	exp, err := svc.Create(ctx, CreateInput{
		Title:        "Past Session",
		TrainingDate: "2025-01-02",
		TrainingTime: "10:00",
		Deadline:     "2024-12-31",
		CreatedBy:    "admin@tsv.com",
	})
	if err != nil {
		t.Fatalf("create past: %v", err)
	}
	if exp.Status != StatusExpired {
		t.Fatalf("past deadline must derive expired, got %s", exp.Status)
	}
}
