package handler

import (
	"errors"
	"net/http"

	"match-wager/internal/model"
	"match-wager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	userService   service.UserService
	wagerService  service.WagerService
	ledgerService service.LedgerService
	rewardService service.RewardService
	logger        zerolog.Logger
}

func NewHandler(
	userService service.UserService,
	wagerService service.WagerService,
	ledgerService service.LedgerService,
	rewardService service.RewardService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		userService:   userService,
		wagerService:  wagerService,
		ledgerService: ledgerService,
		rewardService: rewardService,
		logger:        logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("/:id", h.GetUser)
	users.POST("/:id/identity", h.LinkIdentity)
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/transactions", h.GetTransactions)
	users.POST("/:id/reward", h.GrantReward)
	users.POST("/:id/spend", h.Spend)

	wagers := v1.Group("/wagers")
	wagers.POST("", h.CreateWager)
	wagers.GET("", h.ListWagers)
	wagers.GET("/:id", h.GetWager)
	wagers.POST("/:id/accept", h.AcceptWager)
	wagers.POST("/check", h.TriggerEvaluation)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION_ERROR"
	case errors.Is(err, model.ErrInvalidStatus):
		status = http.StatusBadRequest
		code = "INVALID_STATUS"
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrWagerNotFound):
		status = http.StatusNotFound
		code = "WAGER_NOT_FOUND"
	case errors.Is(err, model.ErrWrongOpponent):
		status = http.StatusForbidden
		code = "WRONG_OPPONENT"
	case errors.Is(err, model.ErrInvalidRewardToken):
		status = http.StatusForbidden
		code = "INVALID_REWARD_TOKEN"
	case errors.Is(err, model.ErrNotReady):
		status = http.StatusConflict
		code = "NOT_READY"
	case errors.Is(err, model.ErrCooldownActive):
		status = http.StatusConflict
		code = "COOLDOWN_ACTIVE"
	case errors.Is(err, model.ErrActiveWagerExists):
		status = http.StatusConflict
		code = "ACTIVE_WAGER_EXISTS"
	case errors.Is(err, model.ErrWagerNotWaiting):
		status = http.StatusConflict
		code = "WAGER_NOT_WAITING"
	case errors.Is(err, model.ErrProviderUnavailable):
		status = http.StatusBadGateway
		code = "PROVIDER_UNAVAILABLE"
		resp.Details = "Match provider is unavailable, try again later"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
