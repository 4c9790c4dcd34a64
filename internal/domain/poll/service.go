package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const demoCreator = "admin@tsv.com"

var (
	ErrTitleRequired   = errors.New("title required")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrDeadlineTooLate = errors.New("deadline must not be after the training date")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// EnsureSeeded writes the fixed demo polls when the collection is empty.
// A non-empty collection is never reseeded, so calling this on every startup
// is safe.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(polls) > 0 {
		return nil
	}
	return s.repo.Replace(ctx, demoPolls(s.now()))
}

// demoPolls builds three sessions on the next three weeks, each with a
// deadline two days before the training date, rotating through fixed times
// and locations.
func demoPolls(now time.Time) []Poll {
	times := []string{"10:00", "14:00", "16:00"}
	locations := []string{"Main Gym", "Court 1", "Outdoor Court"}

	polls := make([]Poll, 0, 3)
	for i := 1; i <= 3; i++ {
		trainingDate := now.AddDate(0, 0, 7*i)
		deadline := trainingDate.AddDate(0, 0, -2)

		polls = append(polls, Poll{
			ID:    uuid.NewString(),
			Title: fmt.Sprintf("Week %d Basketball Training Session", i),
			Description: "Join us for an intensive basketball training session. " +
				"We will focus on fundamental skills, team coordination, and match preparation.",
			TrainingDate: trainingDate.Format(DateLayout),
			TrainingTime: times[i-1],
			Deadline:     deadline.Format(DateLayout),
			Location:     locations[i-1],
			Status:       deriveStatus(deadline.Format(DateLayout), now),
			CreatedBy:    demoCreator,
			CreatedAt:    now.Add(-time.Duration(i) * 24 * time.Hour).UTC(),
		})
	}
	return polls
}

func deriveStatus(deadline string, now time.Time) string {
	if deadline >= now.Format(DateLayout) {
		return StatusActive
	}
	return StatusExpired
}

// ListActive returns the polls whose deadline has not passed as of the given
// date, boundary inclusive, preserving collection order.
func (s *Service) ListActive(ctx context.Context, asOf time.Time) ([]Poll, error) {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	day := asOf.Format(DateLayout)
	active := make([]Poll, 0, len(polls))
	for _, p := range polls {
		if p.Deadline >= day {
			active = append(active, p)
		}
	}
	return active, nil
}

// List returns the full collection in order, for the admin surface.
func (s *Service) List(ctx context.Context) ([]Poll, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id string) (*Poll, error) {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range polls {
		if polls[i].ID == id {
			p := polls[i]
			return &p, nil
		}
	}
	return nil, ErrPollNotFound
}

type CreateInput struct {
	Title        string
	Description  string
	TrainingDate string
	TrainingTime string
	Deadline     string
	Location     string
	CreatedBy    string
}

// Create appends a new poll. Validation happens before any write, so a
// rejected create leaves the collection untouched.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Poll, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if _, err := time.Parse(DateLayout, in.TrainingDate); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, in.Deadline); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(timeLayout, in.TrainingTime); err != nil {
		return nil, ErrInvalidTime
	}
	if in.Deadline > in.TrainingDate {
		return nil, ErrDeadlineTooLate
	}

	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := Poll{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		TrainingDate: in.TrainingDate,
		TrainingTime: in.TrainingTime,
		Deadline:     in.Deadline,
		Location:     in.Location,
		Status:       deriveStatus(in.Deadline, now),
		CreatedBy:    in.CreatedBy,
		CreatedAt:    now.UTC(),
	}

	if err := s.repo.Replace(ctx, append(polls, p)); err != nil {
		return nil, err
	}
	return &p, nil
}
