package ginserver

import (
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/app/dto"
	bookingssvc "github.com/Beto956/rvnb/internal/app/services/bookings"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

type BookingHTTP interface {
	Create(c *gin.Context)
}

type BookingHandler struct {
	Service *bookingssvc.Service
	Logger  *slog.Logger
}

type createBookingRequest struct {
	ListingID  string `json:"listing_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	StayType   string `json:"stay_type"`
	Note       string `json:"note"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
}

// Create places a booking request. Guests do not need an account; the
// authenticated name and email win over the form fields when present.
func (h BookingHandler) Create(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bookings unavailable"})
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	checkIn, err := parseDay(req.CheckIn)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	checkOut, err := parseDay(req.CheckOut)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	guestName, guestEmail := req.GuestName, req.GuestEmail
	if p, ok := currentPrincipal(c); ok {
		guestName, guestEmail = p.Name, p.Email
	}
	b, err := h.Service.Request(c.Request.Context(), bookingssvc.RequestParams{
		ListingID:  domainlisting.ListingID(req.ListingID),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		StayType:   req.StayType,
		Note:       req.Note,
		GuestName:  guestName,
		GuestEmail: guestEmail,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapBooking(b))
}

func parseDay(raw string) (time.Time, error) {
	return dates.ParseKey(raw)
}

var _ BookingHTTP = BookingHandler{}
