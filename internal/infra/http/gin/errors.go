package ginserver

import (
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	authsvc "github.com/Beto956/rvnb/internal/app/services/auth"
	bookingssvc "github.com/Beto956/rvnb/internal/app/services/bookings"
	calendarsvc "github.com/Beto956/rvnb/internal/app/services/calendarview"
	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/lead"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
	"github.com/Beto956/rvnb/internal/domain/spotrequest"
	domainuser "github.com/Beto956/rvnb/internal/domain/user"
)

// respondError maps domain errors onto HTTP statuses. Validation problems are
// 400 with the domain message; conflicts are 409; anything unrecognized is a
// logged 500 with a generic body so internals never leak to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, booking.ErrDatesUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "dates not available"})
	case errors.Is(err, booking.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "booking already decided"})
	case errors.Is(err, domainuser.ErrEmailAlreadyUsed):
		c.JSON(http.StatusConflict, gin.H{"error": "email already used"})
	case errors.Is(err, domainlisting.ErrNotFound),
		errors.Is(err, booking.ErrNotFound),
		errors.Is(err, domainuser.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domainlisting.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if logger != nil {
			logger.Error("request failed", "error", err, "path", c.FullPath())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isValidationError(err error) bool {
	validation := []error{
		booking.ErrCheckOutNotAfter,
		booking.ErrCheckInInPast,
		domainlisting.ErrTitleRequired,
		domainlisting.ErrCityRequired,
		domainlisting.ErrStateCode,
		domainlisting.ErrNegativePrice,
		domainlisting.ErrNegativeLength,
		calendar.ErrListingRequired,
		calendarsvc.ErrBadMonth,
		spotrequest.ErrLocationRequired,
		lead.ErrInvalidEmail,
		lead.ErrNameRequired,
		dates.ErrBadKey,
		domainuser.ErrEmailRequired,
		domainuser.ErrNameRequired,
		authsvc.ErrPasswordTooShort,
		bookingssvc.ErrUnknownDecision,
	}
	for _, v := range validation {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
