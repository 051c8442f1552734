package dto

import (
	"github.com/Beto956/rvnb/internal/domain/spotrequest"
)

// SpotRequestResponse is the wire shape of a traveler's open call.
type SpotRequestResponse struct {
	ID            string `json:"id"`
	LocationText  string `json:"location_text,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	HookupsNeeded string `json:"hookups_needed"`
	BudgetMax     *int64 `json:"budget_max,omitempty"`
	RVDetails     string `json:"rv_details,omitempty"`
	Note          string `json:"note,omitempty"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

func MapSpotRequest(rec spotrequest.SpotRequest) SpotRequestResponse {
	return SpotRequestResponse{
		ID:            rec.ID,
		LocationText:  rec.LocationText,
		City:          rec.City,
		State:         rec.State,
		StartDate:     rec.StartDate,
		EndDate:       rec.EndDate,
		HookupsNeeded: string(rec.HookupsNeeded),
		BudgetMax:     rec.BudgetMax,
		RVDetails:     rec.RVDetails,
		Note:          rec.Note,
		Status:        string(rec.Status),
		CreatedAt:     rec.CreatedAt.UnixMilli(),
	}
}

func MapSpotRequests(items []spotrequest.SpotRequest) []SpotRequestResponse {
	out := make([]SpotRequestResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, MapSpotRequest(rec))
	}
	return out
}
