package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// Handler serves the API routes.
type Handler struct {
	Reservations driving.ReservationService
	Sessions     driving.SessionPool
	Validator    *validator.Validate
	Logger       zerolog.Logger
}

// RestaurantQuery filters GET /api/restaurants.
type RestaurantQuery struct {
	Cuisine   string   `form:"cuisine"`
	Location  string   `form:"location"`
	PartySize int      `form:"party_size" validate:"omitempty,gt=0"`
	Date      string   `form:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      string   `form:"time" validate:"omitempty,datetime=15:04"`
	Amenities []string `form:"amenities"`
}

// CreateReservationRequest is the body of POST /api/reservations.
type CreateReservationRequest struct {
	RestaurantID    int    `json:"restaurant_id" validate:"required,gt=0"`
	Name            string `json:"name" validate:"required"`
	PartySize       int    `json:"party_size" validate:"required,gt=0"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	SpecialRequests string `json:"special_requests" validate:"max=500"`
}

// ReservationView is a reservation with its restaurant's name.
type ReservationView struct {
	domain.Reservation
	RestaurantName string `json:"restaurant_name,omitempty"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "restaurants": len(h.Reservations.Restaurants())})
}

func (h *Handler) RestaurantsList(c *gin.Context) {
	var q RestaurantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query", err.Error())
		return
	}
	if err := h.Validator.Struct(q); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	results, err := h.Reservations.Find(c.Request.Context(), domain.SearchCriteria{
		Cuisine:   q.Cuisine,
		Location:  q.Location,
		PartySize: q.PartySize,
		Date:      q.Date,
		Time:      q.Time,
		Amenities: splitList(q.Amenities),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": results, "count": len(results)})
}

func (h *Handler) RestaurantDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Restaurant id must be a number", nil)
		return
	}
	restaurant, err := h.Reservations.Restaurant(id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) ReservationsList(c *gin.Context) {
	reservations, err := h.Reservations.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	views := make([]ReservationView, len(reservations))
	for i := range reservations {
		views[i] = h.view(reservations[i])
	}
	c.JSON(http.StatusOK, gin.H{"reservations": views, "count": len(views)})
}

func (h *Handler) ReservationCreate(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	booking, err := h.Reservations.Create(c.Request.Context(), domain.ReservationRequest{
		RestaurantID:    req.RestaurantID,
		Name:            req.Name,
		PartySize:       req.PartySize,
		Date:            req.Date,
		Time:            req.Time,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+booking.ReservationID)
	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) ReservationDetails(c *gin.Context) {
	r, err := h.Reservations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(*r))
}

func (h *Handler) ReservationUpdate(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if len(updates) == 0 {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update", nil)
		return
	}
	patch, err := domain.ParseReservationPatch(updates)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	updated, err := h.Reservations.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(*updated))
}

func (h *Handler) ReservationCancel(c *gin.Context) {
	if err := h.Reservations.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) view(r domain.Reservation) ReservationView {
	v := ReservationView{Reservation: r}
	if restaurant, err := h.Reservations.Restaurant(r.RestaurantID); err == nil {
		v.RestaurantName = restaurant.Name
	}
	return v
}

// rejectionStatus maps business-rule failures to HTTP statuses.
var rejectionStatus = map[domain.RejectionKind]int{
	domain.RejectRestaurantNotFound:  http.StatusNotFound,
	domain.RejectReservationNotFound: http.StatusNotFound,
	domain.RejectOverCapacity:        http.StatusConflict,
	domain.RejectSlotFull:            http.StatusConflict,
	domain.RejectIDsExhausted:        http.StatusServiceUnavailable,
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	if rejection, ok := domain.AsRejection(err); ok {
		status, found := rejectionStatus[rejection.Kind]
		if !found {
			status = http.StatusUnprocessableEntity
		}
		writeError(c, status, strings.ToUpper(string(rejection.Kind)), rejection.Message, rejection.Suggestions)
		return
	}
	if errors.Is(err, domain.ErrLLMUnavailable) {
		writeError(c, http.StatusServiceUnavailable, "LLM_UNAVAILABLE", err.Error(), nil)
		return
	}

	h.Logger.Error().Err(err).Str("request_id", c.GetString(RequestIDHeader)).Msg("request failed")
	writeError(c, http.StatusInternalServerError, "INTERNAL", "Internal error", nil)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// splitList accepts both repeated and comma separated query values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
