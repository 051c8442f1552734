// Package lead holds the early-access capture records collected by the
// ecosystem pages: traveler/host interest signups and service-provider leads.
package lead

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidEmail = errors.New("lead: invalid email address")
	ErrNameRequired = errors.New("lead: name is required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the same lightweight check the signup forms use.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Interest is an early-access signup from an ecosystem page.
type Interest struct {
	ID           string
	Email        string
	InterestType string
	Source       string
	Page         string
	CreatedAt    time.Time
}

func NewInterest(id, email, interestType, source, page string, now time.Time) (Interest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidEmail(email) {
		return Interest{}, ErrInvalidEmail
	}
	return Interest{
		ID:           id,
		Email:        email,
		InterestType: strings.TrimSpace(interestType),
		Source:       source,
		Page:         page,
		CreatedAt:    now.UTC(),
	}, nil
}

// Provider is a prospective service partner lead.
type Provider struct {
	ID          string
	Name        string
	Email       string
	Company     string
	ServiceArea string
	Notes       string
	Source      string
	Page        string
	CreatedAt   time.Time
}

func NewProvider(id, name, email, company, serviceArea, notes, source, page string, now time.Time) (Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Provider{}, ErrNameRequired
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidEmail(email) {
		return Provider{}, ErrInvalidEmail
	}
	return Provider{
		ID:          id,
		Name:        name,
		Email:       email,
		Company:     strings.TrimSpace(company),
		ServiceArea: strings.TrimSpace(serviceArea),
		Notes:       strings.TrimSpace(notes),
		Source:      source,
		Page:        page,
		CreatedAt:   now.UTC(),
	}, nil
}

type Repository interface {
	SaveInterest(ctx context.Context, rec Interest) error
	SaveProvider(ctx context.Context, rec Provider) error
}
