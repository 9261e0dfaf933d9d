package handler

import (
	"net/http"

	"match-wager/internal/model"

	"github.com/gin-gonic/gin"
)

// callerID extracts the acting user from the user_id query parameter.
func callerID(c *gin.Context) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return "", false
	}
	return userID, true
}

// CreateWager
// @Summary Create a wager
// @Description Opens a wager against an opponent and escrows the creator's stake
// @Tags wagers
// @Accept json
// @Produce json
// @Param user_id query string true "Creator user ID"
// @Param wager body model.CreateWagerRequest true "Wager details"
// @Success 201 {object} model.WagerView
// @Failure 400 {object} model.ErrorResponse "Bad request or insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Cooldown or active wager"
// @Router /wagers [post]
func (h *Handler) CreateWager(c *gin.Context) {
	creatorID, ok := callerID(c)
	if !ok {
		return
	}

	var req model.CreateWagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	wager, err := h.wagerService.CreateWager(c.Request.Context(), creatorID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wager)
}

// AcceptWager
// @Summary Accept a wager
// @Description Escrows the accepter's stake and starts the play window
// @Tags wagers
// @Accept json
// @Produce json
// @Param id path string true "Wager ID"
// @Param user_id query string true "Accepting user ID"
// @Success 200 {object} model.WagerView
// @Failure 403 {object} model.ErrorResponse "Wrong opponent"
// @Failure 404 {object} model.ErrorResponse "Wager not found"
// @Failure 409 {object} model.ErrorResponse "Wager no longer open"
// @Failure 502 {object} model.ErrorResponse "Match provider unavailable"
// @Router /wagers/{id}/accept [post]
func (h *Handler) AcceptWager(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	wager, err := h.wagerService.AcceptWager(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wager)
}

// ListWagers
// @Summary List wagers
// @Tags wagers
// @Produce json
// @Param status query string false "Status filter" Enums(waiting, playing, finished, expired)
// @Success 200 {object} model.WagerListResponse
// @Failure 400 {object} model.ErrorResponse "Invalid status"
// @Router /wagers [get]
func (h *Handler) ListWagers(c *gin.Context) {
	wagers, err := h.wagerService.ListWagers(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WagerListResponse{
		Wagers: wagers,
		Total:  len(wagers),
	})
}

// GetWager
// @Summary Get a wager
// @Tags wagers
// @Produce json
// @Param id path string true "Wager ID"
// @Success 200 {object} model.WagerView
// @Failure 404 {object} model.ErrorResponse "Wager not found"
// @Router /wagers/{id} [get]
func (h *Handler) GetWager(c *gin.Context) {
	wager, err := h.wagerService.GetWager(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wager)
}

// TriggerEvaluation
// @Summary Evaluate all in-play wagers now
// @Description Runs one evaluation round immediately, same semantics as the periodic worker
// @Tags wagers
// @Produce json
// @Success 200 {object} model.EvaluationResponse
// @Router /wagers/check [post]
func (h *Handler) TriggerEvaluation(c *gin.Context) {
	resolved, err := h.wagerService.EvaluateAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.EvaluationResponse{
		Resolved: resolved,
		Total:    len(resolved),
	})
}
