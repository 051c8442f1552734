package ginserver

import (
	"log/slog"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/app/dto"
	spotssvc "github.com/Beto956/rvnb/internal/app/services/spots"
)

type SpotRequestHTTP interface {
	Create(c *gin.Context)
	List(c *gin.Context)
}

type SpotRequestHandler struct {
	Service *spotssvc.Service
	Logger  *slog.Logger
}

type spotRequestForm struct {
	LocationText  string `json:"location_text"`
	City          string `json:"city"`
	State         string `json:"state"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	HookupsNeeded string `json:"hookups_needed"`
	BudgetMax     *int64 `json:"budget_max"`
	RVDetails     string `json:"rv_details"`
	Note          string `json:"note"`
}

func (h SpotRequestHandler) Create(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "spot requests unavailable"})
		return
	}
	var req spotRequestForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	rec, err := h.Service.Submit(c.Request.Context(), spotssvc.SubmitParams{
		LocationText:  req.LocationText,
		City:          req.City,
		State:         req.State,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		HookupsNeeded: req.HookupsNeeded,
		BudgetMax:     req.BudgetMax,
		RVDetails:     req.RVDetails,
		Note:          req.Note,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapSpotRequest(rec))
}

func (h SpotRequestHandler) List(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "spot requests unavailable"})
		return
	}
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	items, err := h.Service.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": dto.MapSpotRequests(items)})
}

var _ SpotRequestHTTP = SpotRequestHandler{}
