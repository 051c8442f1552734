package ginserver

import (
	"log/slog"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/app/dto"
	bookingssvc "github.com/Beto956/rvnb/internal/app/services/bookings"
	"github.com/Beto956/rvnb/internal/domain/booking"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	domainuser "github.com/Beto956/rvnb/internal/domain/user"
)

type HostBookingHTTP interface {
	List(c *gin.Context)
	Decide(c *gin.Context)
}

type HostBookingHandler struct {
	Service *bookingssvc.Service
	Logger  *slog.Logger
}

func (h HostBookingHandler) List(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bookings unavailable"})
		return
	}
	items, err := h.Service.ForHost(c.Request.Context(), domainlisting.HostID(p.ID))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": dto.MapHostBookings(items)})
}

type decisionRequest struct {
	Decision string `json:"decision"`
}

// Decide confirms or cancels a requested booking on the host's listing.
func (h HostBookingHandler) Decide(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bookings unavailable"})
		return
	}
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	decision := bookingssvc.Decision(strings.ToLower(strings.TrimSpace(req.Decision)))
	b, err := h.Service.Decide(c.Request.Context(),
		domainlisting.HostID(p.ID), booking.BookingID(c.Param("id")), decision)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

var _ HostBookingHTTP = HostBookingHandler{}
