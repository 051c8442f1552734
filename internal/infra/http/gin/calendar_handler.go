package ginserver

import (
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/app/dto"
	calendarsvc "github.com/Beto956/rvnb/internal/app/services/calendarview"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	domainuser "github.com/Beto956/rvnb/internal/domain/user"
)

type CalendarHTTP interface {
	Month(c *gin.Context)
	SaveDay(c *gin.Context)
}

type CalendarHandler struct {
	Service *calendarsvc.Service
	Logger  *slog.Logger
}

// Month renders the host calendar for one listing. The month query parameter
// is YYYY-MM; empty means the current month.
func (h CalendarHandler) Month(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calendar unavailable"})
		return
	}
	anchor, err := calendarsvc.ParseMonth(c.Query("month"), time.Now())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	view, err := h.Service.Month(c.Request.Context(),
		domainlisting.HostID(p.ID), domainlisting.ListingID(c.Param("id")), anchor)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapCalendarMonth(view))
}

type saveDayRequest struct {
	Blocked     bool   `json:"blocked"`
	BlockReason string `json:"block_reason"`
	Signal      string `json:"signal"`
	Note        string `json:"note"`
}

// SaveDay writes the day inspector form for one (listing, day) pair.
func (h CalendarHandler) SaveDay(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calendar unavailable"})
		return
	}
	var req saveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	meta, err := h.Service.SaveDay(c.Request.Context(), domainlisting.HostID(p.ID),
		calendarsvc.SaveDayParams{
			ListingID:   domainlisting.ListingID(c.Param("id")),
			Day:         c.Param("day"),
			Blocked:     req.Blocked,
			BlockReason: req.BlockReason,
			Signal:      req.Signal,
			Note:        req.Note,
		})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": meta.Day, "meta": dto.MapDayMeta(meta)})
}

var _ CalendarHTTP = CalendarHandler{}
