package api

import (
	"net/http"
	"strconv"

	reqdto "gpark/internal/handler/dto/request"
	resdto "gpark/internal/handler/dto/response"
	"gpark/internal/handler/httperr"
	"gpark/internal/handler/middleware"
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.AllocationCommands
	q    queries.AllocationQueries
}

func NewBookingHandler(cmds commands.AllocationCommands, q queries.AllocationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a spot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	params, ok := bindBooking(c)
	if !ok {
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Book a spot from the operator console
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings [post]
func (h *BookingHandler) CreateAsOperator(c *gin.Context) {
	params, ok := bindBooking(c)
	if !ok {
		return
	}

	result, err := h.cmds.ReserveAsOperator(c.Request.Context(), middleware.GetActor(c), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary List bookings
// @Description Live bookings by default; active=false includes expired ones not yet reaped
// @Tags admin
// @Produce json
// @Param active query bool false "Only live bookings" default(true)
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "active must be true or false", nil)
			return
		}
		activeOnly = v
	}

	var (
		views []*queries.ReservationView
		err   error
	)
	if activeOnly {
		views, err = h.q.ListActive(c.Request.Context(), middleware.GetActor(c))
	} else {
		views, err = h.q.ListAll(c.Request.Context(), middleware.GetActor(c))
	}
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Remove expired bookings
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.ReapResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/bookings/reap [post]
func (h *BookingHandler) Reap(c *gin.Context) {
	removed, err := h.cmds.ReapAsOperator(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReapResponse{Removed: removed})
}

func bindBooking(c *gin.Context) (commands.ReserveParams, bool) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "All fields are required", nil)
		return commands.ReserveParams{}, false
	}

	minutes, err := req.DurationMinutes()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return commands.ReserveParams{}, false
	}

	return commands.ReserveParams{
		SpotID:          req.ParkingSpotID,
		LicensePlate:    req.LicensePlate,
		DurationMinutes: minutes,
	}, true
}
