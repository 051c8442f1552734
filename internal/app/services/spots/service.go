package spots

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/spotrequest"
)

type Service struct {
	Requests spotrequest.Repository
	Logger   *slog.Logger
}

type SubmitParams struct {
	LocationText  string
	City          string
	State         string
	StartDate     string
	EndDate       string
	HookupsNeeded string
	BudgetMax     *int64
	RVDetails     string
	Note          string
}

func (s *Service) Submit(ctx context.Context, params SubmitParams) (spotrequest.SpotRequest, error) {
	if s.Requests == nil {
		return spotrequest.SpotRequest{}, errors.New("spots: repository required")
	}
	rec, err := spotrequest.New(spotrequest.CreateParams{
		ID:            uuid.NewString(),
		LocationText:  params.LocationText,
		City:          params.City,
		State:         params.State,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		HookupsNeeded: domainlisting.Hookups(params.HookupsNeeded),
		BudgetMax:     params.BudgetMax,
		RVDetails:     params.RVDetails,
		Note:          params.Note,
		Now:           time.Now(),
	})
	if err != nil {
		return spotrequest.SpotRequest{}, err
	}
	if err := s.Requests.Save(ctx, rec); err != nil {
		return spotrequest.SpotRequest{}, err
	}
	if s.Logger != nil {
		s.Logger.Info("spot request submitted", "request_id", rec.ID, "state", rec.State)
	}
	return rec, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]spotrequest.SpotRequest, error) {
	if s.Requests == nil {
		return nil, errors.New("spots: repository required")
	}
	return s.Requests.RecentOpen(ctx, limit)
}
