package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "raffle-manager-backend/internal/common/errors"
	"raffle-manager-backend/internal/common/logger"
	"raffle-manager-backend/internal/common/middleware"
	"raffle-manager-backend/internal/common/validation"
	"raffle-manager-backend/internal/features/raffle/models"
	raffleservice "raffle-manager-backend/internal/features/raffle/service"
)

type RaffleHandler struct {
	service   raffleservice.RaffleService
	hub       *raffleservice.Hub
	keepAlive time.Duration
}

func NewRaffleHandler(service raffleservice.RaffleService, hub *raffleservice.Hub) *RaffleHandler {
	return &RaffleHandler{
		service:   service,
		hub:       hub,
		keepAlive: 15 * time.Second,
	}
}

// RegisterRoutes mounts the raffle API. Reads are public but only admins see
// phone numbers. Everything that changes a raffle or dumps buyer data needs
// admin credentials. A nil authn disables authentication.
func (h *RaffleHandler) RegisterRoutes(router *gin.RouterGroup, authn middleware.Authenticator) {
	router.GET("/countries", h.listCountries)

	raffles := router.Group("/raffles", middleware.OptionalAdmin(authn))
	{
		raffles.GET("", h.list)
		raffles.GET("/events", h.streamEvents)
		raffles.GET("/:id", h.getByID)
		raffles.GET("/:id/summary", h.getSummary)
		raffles.GET("/:id/eligible", h.getEligible)
	}

	admin := raffles.Group("", middleware.RequireAdmin(authn))
	{
		admin.POST("", h.create)
		admin.DELETE("/:id", h.delete)
		admin.POST("/:id/purchases", h.purchase)
		admin.PUT("/:id/numbers/:number/payment", h.updatePayment)
		admin.PUT("/:id/numbers/:number/buyer", h.updateBuyer)
		admin.DELETE("/:id/numbers/:number/purchase", h.cancelPurchase)
		admin.POST("/:id/draw", h.draw)
		admin.POST("/:id/prizes/:order/winner", h.recordWinner)
		admin.POST("/:id/close", h.close)
		admin.GET("/:id/export/tickets", h.exportTickets)
		admin.GET("/:id/export/winners", h.exportWinners)
	}
}

func (h *RaffleHandler) fail(c *gin.Context, err error) {
	middleware.RespondError(c, toAppError(err))
}

func (h *RaffleHandler) intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		middleware.RespondError(c, apperrors.NewValidationError(name, "must be an integer"))
		return 0, false
	}
	return value, true
}

func (h *RaffleHandler) bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid request body").WithDetail("reason", err.Error()))
		return false
	}
	return true
}

// view hides phone numbers from anonymous readers.
func view(c *gin.Context, r *models.Raffle) *models.Raffle {
	if middleware.GetAdmin(c) == "" {
		return r.Redacted()
	}
	return r
}

// audit records which admin changed a raffle.
func audit(c *gin.Context, action, raffleID string) {
	logger.Info().
		Str("admin", middleware.GetAdmin(c)).
		Str("action", action).
		Str("raffle_id", raffleID).
		Str("request_id", middleware.GetRequestID(c)).
		Msg("Admin action")
}

func validateBuyer(name, phone string) error {
	if err := validation.ValidateBuyerName(name); err != nil {
		return apperrors.NewValidationError("buyer_name", err.Error())
	}
	if err := validation.ValidatePhone(phone); err != nil {
		return apperrors.NewValidationError("buyer_phone", err.Error())
	}
	return nil
}

// @title Raffle Manager API
// @version 1.0
// @description Raffle configuration, ticket sales and prize draws
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer <token>" from /auth/login

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init_data of an admin

// @Summary List supported countries
// @Tags raffles
// @Produce json
// @Success 200 {array} models.Country
// @Router /countries [get]
func (h *RaffleHandler) listCountries(c *gin.Context) {
	c.JSON(http.StatusOK, models.Countries)
}

// @Summary List raffles
// @Tags raffles
// @Produce json
// @Success 200 {array} models.Raffle
// @Router /raffles [get]
func (h *RaffleHandler) list(c *gin.Context) {
	raffles := h.service.ListRaffles(c.Request.Context())
	for i, r := range raffles {
		raffles[i] = view(c, r)
	}
	c.JSON(http.StatusOK, raffles)
}

// @Summary Create a raffle
// @Description Creates an open raffle with every number available
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param input body models.RaffleCreate true "Raffle configuration"
// @Success 201 {object} models.Raffle
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /raffles [post]
func (h *RaffleHandler) create(c *gin.Context) {
	var input models.RaffleCreate
	if !h.bind(c, &input) {
		return
	}

	raffle, err := h.service.AddRaffle(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "create", raffle.ID)

	c.JSON(http.StatusCreated, raffle)
}

// @Summary Get a raffle
// @Tags raffles
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} models.Raffle
// @Failure 404 {object} middleware.ErrorResponse
// @Router /raffles/{id} [get]
func (h *RaffleHandler) getByID(c *gin.Context) {
	raffle, err := h.service.GetRaffleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view(c, raffle))
}

// @Summary Delete a raffle
// @Tags raffles
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /raffles/{id} [delete]
func (h *RaffleHandler) delete(c *gin.Context) {
	if err := h.service.DeleteRaffle(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "delete", c.Param("id"))

	c.Status(http.StatusNoContent)
}

// @Summary Sales summary
// @Tags raffles
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} models.RaffleSummary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /raffles/{id}/summary [get]
func (h *RaffleHandler) getSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Numbers that can win the next draw
// @Tags draws
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} map[string][]int
// @Failure 404 {object} middleware.ErrorResponse
// @Router /raffles/{id}/eligible [get]
func (h *RaffleHandler) getEligible(c *gin.Context) {
	numbers, err := h.service.EligibleNumbers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"eligible_numbers": numbers})
}

// @Summary Sell or reserve numbers
// @Description All numbers must be available, otherwise nothing changes
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Param input body models.PurchaseRequest true "Purchase"
// @Success 200 {object} models.Raffle
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Number taken or raffle closed"
// @Router /raffles/{id}/purchases [post]
func (h *RaffleHandler) purchase(c *gin.Context) {
	var input models.PurchaseRequest
	if !h.bind(c, &input) {
		return
	}
	if err := validateBuyer(input.BuyerName, input.BuyerPhone); err != nil {
		middleware.RespondError(c, err)
		return
	}

	raffle, err := h.service.PurchaseNumbers(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "purchase", c.Param("id"))

	c.JSON(http.StatusOK, raffle)
}

// @Summary Settle a reserved number
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Param number path int true "Ticket number"
// @Param input body models.PaymentUpdateRequest true "cash or transfer"
// @Success 200 {object} models.Raffle
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /raffles/{id}/numbers/{number}/payment [put]
func (h *RaffleHandler) updatePayment(c *gin.Context) {
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}
	var input models.PaymentUpdateRequest
	if !h.bind(c, &input) {
		return
	}

	raffle, err := h.service.UpdatePendingPayment(c.Request.Context(), c.Param("id"), number, input.PaymentMethod)
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "update_payment", c.Param("id"))

	c.JSON(http.StatusOK, raffle)
}

// @Summary Correct buyer details
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Param number path int true "Ticket number"
// @Param input body models.BuyerUpdateRequest true "Buyer"
// @Success 200 {object} models.Raffle
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /raffles/{id}/numbers/{number}/buyer [put]
func (h *RaffleHandler) updateBuyer(c *gin.Context) {
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}
	var input models.BuyerUpdateRequest
	if !h.bind(c, &input) {
		return
	}
	if err := validateBuyer(input.BuyerName, input.BuyerPhone); err != nil {
		middleware.RespondError(c, err)
		return
	}

	raffle, err := h.service.UpdateBuyerDetails(c.Request.Context(), c.Param("id"), number, input.BuyerName, input.BuyerPhone)
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "update_buyer", c.Param("id"))

	c.JSON(http.StatusOK, raffle)
}

// @Summary Cancel a sale or reservation
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Param number path int true "Ticket number"
// @Success 200 {object} models.Raffle
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /raffles/{id}/numbers/{number}/purchase [delete]
func (h *RaffleHandler) cancelPurchase(c *gin.Context) {
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}

	raffle, err := h.service.CancelNumberPurchase(c.Request.Context(), c.Param("id"), number)
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "cancel_purchase", c.Param("id"))

	c.JSON(http.StatusOK, raffle)
}

// @Summary Draw the next prize
// @Description Picks a random winner among eligible numbers for the lowest unresolved prize
// @Tags draws
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Success 200 {object} raffleservice.DrawOutcome
// @Failure 400 {object} middleware.ErrorResponse "No eligible numbers"
// @Failure 409 {object} middleware.ErrorResponse "Raffle closed"
// @Router /raffles/{id}/draw [post]
func (h *RaffleHandler) draw(c *gin.Context) {
	outcome, err := h.service.Draw(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "draw", c.Param("id"))

	c.JSON(http.StatusOK, outcome)
}

// @Summary Record a prize winner
// @Tags draws
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Param order path int true "Prize order"
// @Param input body models.WinnerRequest true "Winner"
// @Success 200 {object} models.Raffle
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /raffles/{id}/prizes/{order}/winner [post]
func (h *RaffleHandler) recordWinner(c *gin.Context) {
	order, ok := h.intParam(c, "order")
	if !ok {
		return
	}
	var input models.WinnerRequest
	if !h.bind(c, &input) {
		return
	}

	raffle, err := h.service.RecordPrizeWinner(c.Request.Context(), c.Param("id"), order, input.WinningNumber, input.WinnerName, input.WinnerPhone)
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "record_winner", c.Param("id"))

	c.JSON(http.StatusOK, raffle)
}

// @Summary Close a raffle
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Success 200 {object} models.Raffle
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /raffles/{id}/close [post]
func (h *RaffleHandler) close(c *gin.Context) {
	raffle, err := h.service.CloseRaffle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	audit(c, "close", c.Param("id"))

	c.JSON(http.StatusOK, raffle)
}
