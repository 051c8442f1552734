// Package spotrequest models "wanted" posts: travelers describing the spot
// they are looking for so hosts can reach out.
package spotrequest

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

var ErrLocationRequired = errors.New("spotrequest: location is required")

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// SpotRequest is a traveler's open call for a spot. StartDate/EndDate are
// optional YYYY-MM-DD keys; BudgetMax is nil when the traveler gave none.
type SpotRequest struct {
	ID            string
	LocationText  string
	City          string
	State         string
	StartDate     string
	EndDate       string
	HookupsNeeded listing.Hookups
	BudgetMax     *int64
	RVDetails     string
	Note          string
	Status        Status
	CreatedAt     time.Time
}

type CreateParams struct {
	ID            string
	LocationText  string
	City          string
	State         string
	StartDate     string
	EndDate       string
	HookupsNeeded listing.Hookups
	BudgetMax     *int64
	RVDetails     string
	Note          string
	Now           time.Time
}

func New(params CreateParams) (SpotRequest, error) {
	location := strings.TrimSpace(params.LocationText)
	city := strings.TrimSpace(params.City)
	if location == "" && city == "" {
		return SpotRequest{}, ErrLocationRequired
	}
	start, err := normalizeDay(params.StartDate)
	if err != nil {
		return SpotRequest{}, err
	}
	end, err := normalizeDay(params.EndDate)
	if err != nil {
		return SpotRequest{}, err
	}
	state := strings.ToUpper(strings.TrimSpace(params.State))
	if len(state) > 2 {
		state = state[:2]
	}
	budget := params.BudgetMax
	if budget != nil && *budget <= 0 {
		budget = nil
	}
	return SpotRequest{
		ID:            params.ID,
		LocationText:  location,
		City:          city,
		State:         state,
		StartDate:     start,
		EndDate:       end,
		HookupsNeeded: listing.SafeHookups(string(params.HookupsNeeded)),
		BudgetMax:     budget,
		RVDetails:     strings.TrimSpace(params.RVDetails),
		Note:          strings.TrimSpace(params.Note),
		Status:        StatusOpen,
		CreatedAt:     params.Now.UTC(),
	}, nil
}

func normalizeDay(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := dates.ParseKey(raw)
	if err != nil {
		return "", err
	}
	return dates.Key(parsed), nil
}

type Repository interface {
	Save(ctx context.Context, rec SpotRequest) error
	// RecentOpen lists open requests newest first, capped at limit.
	RecentOpen(ctx context.Context, limit int) ([]SpotRequest, error)
}
