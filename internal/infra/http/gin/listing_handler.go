package ginserver

import (
	"log/slog"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/app/dto"
	listingssvc "github.com/Beto956/rvnb/internal/app/services/listings"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
)

type ListingHTTP interface {
	Catalog(c *gin.Context)
	Detail(c *gin.Context)
}

type ListingHandler struct {
	Service *listingssvc.Service
	Logger  *slog.Logger
}

func (h ListingHandler) Catalog(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	params := searchParamsFromQuery(c)
	items, err := h.Service.Catalog(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": dto.MapListingCards(items), "count": len(items)})
}

func (h ListingHandler) Detail(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	l, err := h.Service.Detail(c.Request.Context(), domainlisting.ListingID(c.Param("id")))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapListingDetail(l))
}

func searchParamsFromQuery(c *gin.Context) domainlisting.SearchParams {
	params := domainlisting.SearchParams{
		State:         c.Query("state"),
		Hookups:       domainlisting.Hookups(c.Query("hookups")),
		PricingPeriod: domainlisting.PricingPeriod(c.Query("pricing_period")),
		Query:         c.Query("q"),
		Wifi:          c.Query("wifi") == "true",
		PetsAllowed:   c.Query("pets") == "true",
		Showers:       c.Query("showers") == "true",
		Bathrooms:     c.Query("bathrooms") == "true",
		Sort:          domainlisting.SortMode(c.Query("sort")),
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			params.MaxPrice = v
		}
	}
	return params
}

var _ ListingHTTP = ListingHandler{}
