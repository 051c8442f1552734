package leads

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Beto956/rvnb/internal/domain/lead"
)

type Service struct {
	Leads  lead.Repository
	Logger *slog.Logger
}

type InterestParams struct {
	Email        string
	InterestType string
	Source       string
	Page         string
}

func (s *Service) CaptureInterest(ctx context.Context, params InterestParams) (lead.Interest, error) {
	if s.Leads == nil {
		return lead.Interest{}, errors.New("leads: repository required")
	}
	rec, err := lead.NewInterest(uuid.NewString(), params.Email, params.InterestType,
		params.Source, params.Page, time.Now())
	if err != nil {
		return lead.Interest{}, err
	}
	if err := s.Leads.SaveInterest(ctx, rec); err != nil {
		return lead.Interest{}, err
	}
	if s.Logger != nil {
		s.Logger.Info("interest captured", "interest_type", rec.InterestType, "source", rec.Source)
	}
	return rec, nil
}

type ProviderParams struct {
	Name        string
	Email       string
	Company     string
	ServiceArea string
	Notes       string
	Source      string
	Page        string
}

func (s *Service) CaptureProvider(ctx context.Context, params ProviderParams) (lead.Provider, error) {
	if s.Leads == nil {
		return lead.Provider{}, errors.New("leads: repository required")
	}
	rec, err := lead.NewProvider(uuid.NewString(), params.Name, params.Email, params.Company,
		params.ServiceArea, params.Notes, params.Source, params.Page, time.Now())
	if err != nil {
		return lead.Provider{}, err
	}
	if err := s.Leads.SaveProvider(ctx, rec); err != nil {
		return lead.Provider{}, err
	}
	if s.Logger != nil {
		s.Logger.Info("provider lead captured", "service_area", rec.ServiceArea)
	}
	return rec, nil
}
