package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/handler/http/dto"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

type BikeHandler struct {
	bikeUsecase usecasecontract.IBikeUseCase
}

func NewBikeHandler(bikeUsecase usecasecontract.IBikeUseCase) *BikeHandler {
	return &BikeHandler{bikeUsecase: bikeUsecase}
}

// CreateBike handles listing a new bike. Multipart form so a photo can be
// attached. Admin/owner only, enforced by route middleware and rechecked
// in the usecase.
func (h *BikeHandler) CreateBike(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBikeRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	in := usecasecontract.CreateBikeInput{
		Name:         req.Name,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Lng:          req.Lng,
		Lat:          req.Lat,
	}
	if photo, err := c.FormFile("photo"); err == nil {
		in.Photo = photo
	}

	bike, err := h.bikeUsecase.CreateBike(c.Request.Context(), actor, in)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToBikeResponse(bike))
}

// GetBike handles retrieving a bike by ID.
func (h *BikeHandler) GetBike(c *gin.Context) {
	bike, err := h.bikeUsecase.GetBikeByID(c.Request.Context(), c.Param("bikeID"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBikeResponse(bike))
}

// GetBikes handles the public bike listing with filters and pagination.
func (h *BikeHandler) GetBikes(c *gin.Context) {
	opts := &contract.BikeFilterOptions{
		Page:      parseInt64Query(c, "page", 1),
		Limit:     parseInt64Query(c, "limit", 20),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
	if category := c.Query("category"); category != "" {
		opts.Category = &category
	}
	if c.Query("available") == "true" {
		opts.OnlyAvailable = true
	}
	if raw := c.Query("max_price_per_hour"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "max_price_per_hour must be a number")
			return
		}
		opts.MaxPricePerHour = &maxPrice
	}

	bikes, err := h.bikeUsecase.GetBikes(c.Request.Context(), opts)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.BikeListResponse{
		Bikes: dto.ToBikeResponses(bikes),
		Page:  opts.Page,
		Limit: opts.Limit,
	})
}

// SearchNear handles geospatial search for available bikes around a point.
func (h *BikeHandler) SearchNear(c *gin.Context) {
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	if errLng != nil || errLat != nil {
		ErrorHandler(c, http.StatusBadRequest, "lng and lat query parameters are required")
		return
	}

	radius := 0.0
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 {
			ErrorHandler(c, http.StatusBadRequest, "radius must be a positive number of meters")
			return
		}
		radius = r
	}

	bikes, err := h.bikeUsecase.SearchNear(c.Request.Context(), lng, lat, radius)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{"bikes": dto.ToBikeResponses(bikes)})
}

// UpdateBike handles partial bike updates.
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateBikeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := updateBikeRequestToMap(req)
	if len(updates) == 0 {
		ErrorHandler(c, http.StatusBadRequest, "no fields to update")
		return
	}

	bike, err := h.bikeUsecase.UpdateBike(c.Request.Context(), actor, c.Param("bikeID"), updates)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBikeResponse(bike))
}

// DeleteBike handles removing a bike from the inventory.
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	if err := h.bikeUsecase.DeleteBike(c.Request.Context(), actor, c.Param("bikeID")); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	MessageHandler(c, http.StatusOK, "Bike deleted successfully")
}

func updateBikeRequestToMap(req dto.UpdateBikeRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.PricePerHour != nil {
		updates["price_per_hour"] = *req.PricePerHour
	}
	if req.PricePerDay != nil {
		updates["price_per_day"] = *req.PricePerDay
	}
	if req.Lng != nil && req.Lat != nil {
		updates["lng"] = *req.Lng
		updates["lat"] = *req.Lat
	}

	return updates
}

func parseInt64Query(c *gin.Context, key string, fallback int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
