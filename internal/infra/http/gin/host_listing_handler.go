package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/app/dto"
	bookingssvc "github.com/Beto956/rvnb/internal/app/services/bookings"
	listingssvc "github.com/Beto956/rvnb/internal/app/services/listings"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	domainuser "github.com/Beto956/rvnb/internal/domain/user"
)

type HostListingHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	UploadPhoto(c *gin.Context)
}

type HostListingHandler struct {
	Service  *listingssvc.Service
	Bookings *bookingssvc.Service
	Logger   *slog.Logger
}

type listingForm struct {
	Title             string `json:"title"`
	City              string `json:"city"`
	State             string `json:"state"`
	Price             int64  `json:"price"`
	PricingPeriod     string `json:"pricing_period"`
	MaxLengthFt       int    `json:"max_length_ft"`
	Hookups           string `json:"hookups"`
	Power             string `json:"power"`
	Water             string `json:"water"`
	Sewer             string `json:"sewer"`
	Laundry           string `json:"laundry"`
	Wifi              bool   `json:"wifi"`
	PetsAllowed       bool   `json:"pets_allowed"`
	FirePit           bool   `json:"fire_pit"`
	PicnicTable       bool   `json:"picnic_table"`
	PullThrough       bool   `json:"pull_through"`
	TrashPickup       bool   `json:"trash_pickup"`
	SecurityCameras   bool   `json:"security_cameras"`
	Gym               bool   `json:"gym"`
	Bathrooms         bool   `json:"bathrooms"`
	Showers           bool   `json:"showers"`
	Description       string `json:"description"`
	NearbyAttractions string `json:"nearby_attractions"`
}

func (f listingForm) amenities() domainlisting.Amenities {
	return domainlisting.Amenities{
		Wifi:            f.Wifi,
		PetsAllowed:     f.PetsAllowed,
		FirePit:         f.FirePit,
		PicnicTable:     f.PicnicTable,
		PullThrough:     f.PullThrough,
		TrashPickup:     f.TrashPickup,
		SecurityCameras: f.SecurityCameras,
		Gym:             f.Gym,
		Bathrooms:       f.Bathrooms,
		Showers:         f.Showers,
	}
}

func (h HostListingHandler) List(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	items, err := h.Service.ByHost(c.Request.Context(), domainlisting.HostID(p.ID))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	var counts map[domainlisting.ListingID]bookingssvc.StatusCounts
	if h.Bookings != nil && len(items) > 0 {
		ids := make([]domainlisting.ListingID, 0, len(items))
		for _, l := range items {
			ids = append(ids, l.ID)
		}
		counts, err = h.Bookings.CountsForListings(c.Request.Context(), ids)
		if err != nil {
			respondError(c, h.Logger, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"listings": dto.MapHostListings(items, counts)})
}

func (h HostListingHandler) Create(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	var req listingForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	l, err := h.Service.Create(c.Request.Context(), listingssvc.CreateParams{
		Host:              domainlisting.HostID(p.ID),
		Title:             req.Title,
		City:              req.City,
		State:             req.State,
		Price:             req.Price,
		PricingPeriod:     req.PricingPeriod,
		MaxLengthFt:       req.MaxLengthFt,
		Hookups:           req.Hookups,
		Power:             req.Power,
		Water:             req.Water,
		Sewer:             req.Sewer,
		Laundry:           req.Laundry,
		Amenities:         req.amenities(),
		Description:       req.Description,
		NearbyAttractions: req.NearbyAttractions,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapListingDetail(l))
}

func (h HostListingHandler) Get(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	l, err := h.Service.Detail(c.Request.Context(), domainlisting.ListingID(c.Param("id")))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	if !l.OwnedBy(domainlisting.HostID(p.ID)) {
		respondError(c, h.Logger, domainlisting.ErrNotOwner)
		return
	}
	c.JSON(http.StatusOK, dto.MapListingDetail(l))
}

func (h HostListingHandler) Update(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	var req listingForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	l, err := h.Service.Update(c.Request.Context(),
		domainlisting.HostID(p.ID), domainlisting.ListingID(c.Param("id")),
		listingssvc.UpdateParams{
			Title:             req.Title,
			City:              req.City,
			State:             req.State,
			Price:             req.Price,
			PricingPeriod:     req.PricingPeriod,
			MaxLengthFt:       req.MaxLengthFt,
			Hookups:           req.Hookups,
			Power:             req.Power,
			Water:             req.Water,
			Sewer:             req.Sewer,
			Laundry:           req.Laundry,
			Amenities:         req.amenities(),
			Description:       req.Description,
			NearbyAttractions: req.NearbyAttractions,
		})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapListingDetail(l))
}

// UploadPhoto accepts a multipart "photo" file and attaches it to the listing.
func (h HostListingHandler) UploadPhoto(c *gin.Context) {
	p, ok := requireRole(c, string(domainuser.RoleHost))
	if !ok {
		return
	}
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listings unavailable"})
		return
	}
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	defer src.Close()

	l, err := h.Service.AttachPhoto(c.Request.Context(),
		domainlisting.HostID(p.ID), domainlisting.ListingID(c.Param("id")),
		file.Filename, src, file.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapListingDetail(l))
}

var _ HostListingHTTP = HostListingHandler{}
