package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	leadssvc "github.com/Beto956/rvnb/internal/app/services/leads"
)

type LeadHTTP interface {
	Interest(c *gin.Context)
	Provider(c *gin.Context)
}

type LeadHandler struct {
	Service *leadssvc.Service
	Logger  *slog.Logger
}

type interestForm struct {
	Email        string `json:"email"`
	InterestType string `json:"interest_type"`
	Source       string `json:"source"`
	Page         string `json:"page"`
}

type providerForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	ServiceArea string `json:"service_area"`
	Notes       string `json:"notes"`
	Source      string `json:"source"`
	Page        string `json:"page"`
}

func (h LeadHandler) Interest(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leads unavailable"})
		return
	}
	var req interestForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := h.Service.CaptureInterest(c.Request.Context(), leadssvc.InterestParams{
		Email:        req.Email,
		InterestType: req.InterestType,
		Source:       req.Source,
		Page:         req.Page,
	}); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h LeadHandler) Provider(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leads unavailable"})
		return
	}
	var req providerForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := h.Service.CaptureProvider(c.Request.Context(), leadssvc.ProviderParams{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		ServiceArea: req.ServiceArea,
		Notes:       req.Notes,
		Source:      req.Source,
		Page:        req.Page,
	}); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

var _ LeadHTTP = LeadHandler{}
