package handler

import (
	"net/http"
	"strconv"

	"match-wager/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateUser
// @Summary Create a user
// @Description Creates a new user with a zero coin balance
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserRequest true "User details"
// @Success 201 {object} model.User
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// LinkIdentity
// @Summary Link a riot account
// @Description Links the riot identity a user wagers with
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param identity body model.LinkIdentityRequest true "Riot identity"
// @Success 200 {object} model.User
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/identity [post]
func (h *Handler) LinkIdentity(c *gin.Context) {
	var req model.LinkIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	user, err := h.userService.LinkIdentity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetBalance
// @Summary Get user balance
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	resp, err := h.ledgerService.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransactions
// @Summary Get user transactions
// @Description Returns the user's ledger entries, newest first
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// GrantReward
// @Summary Grant the ad reward
// @Description Credits the configured reward amount when the token matches
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param reward body model.RewardRequest true "Reward token"
// @Success 201 {object} model.Transaction
// @Failure 403 {object} model.ErrorResponse "Invalid token"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/reward [post]
func (h *Handler) GrantReward(c *gin.Context) {
	var req model.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.rewardService.GrantReward(c.Request.Context(), c.Param("id"), req.Token)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trans)
}

// Spend
// @Summary Spend coins
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param spend body model.SpendRequest true "Spend details"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Bad request or insufficient funds"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/spend [post]
func (h *Handler) Spend(c *gin.Context) {
	var req model.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.rewardService.Spend(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trans)
}
