package api

import (
	"net/http"
	"strconv"

	reqdto "gpark/internal/handler/dto/request"
	resdto "gpark/internal/handler/dto/response"
	"gpark/internal/handler/httperr"
	"gpark/internal/handler/middleware"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	cmds  commands.SpotCommands
	q     queries.SpotQueries
	alloc queries.AllocationQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries, alloc queries.AllocationQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q, alloc: alloc}
}

// @Summary Available spots
// @Description Active spots with no live booking
// @Tags spots
// @Produce json
// @Success 200 {array} resdto.SpotResponse
// @Router /api/spots [get]
func (h *SpotHandler) ListAvailable(c *gin.Context) {
	views, err := h.alloc.ListAvailable(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}

// @Summary Quote a spot
// @Description Price of one duration tier on one spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Param duration query int true "Duration in minutes"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/spots/{id}/quote [get]
func (h *SpotHandler) Quote(c *gin.Context) {
	minutes, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "duration must be a whole number of minutes", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), c.Param("id"), minutes)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary All spots
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.SpotResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	if !middleware.GetActor(c).IsOperator {
		abortWithUseCaseError(c, errs.Mark(commands.ErrUnauthorized, errs.ErrUnauthorized))
		return
	}

	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}

// @Summary Create spot
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSpotRequest true "Spot"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), middleware.GetActor(c), req.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/admin/spots/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromSpotView(view))
}

// @Summary Activate or deactivate a spot
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Param request body reqdto.UpdateSpotRequest true "Active flag"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/spots/{id} [put]
func (h *SpotHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.SetActive(c.Request.Context(), middleware.GetActor(c), c.Param("id"), *req.Active)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Delete spot
// @Tags admin
// @Param id path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/spots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Replace spot rates
// @Description Replaces the whole rate table; tiers left out become unbookable
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Param request body reqdto.SetRatesRequest true "Rates keyed by minutes"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/spots/{id}/rates [put]
func (h *SpotHandler) SetRates(c *gin.Context) {
	var req reqdto.SetRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.SetRates(c.Request.Context(), middleware.GetActor(c), c.Param("id"), req.Rates)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}
