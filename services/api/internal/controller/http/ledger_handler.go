package http

import (
	"net/http"

	"craftledger/pkg/logger"
	"craftledger/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        *logger.Logger
}

func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// PurchaseRequest caps a single purchase at one million tokens.
type PurchaseRequest struct {
	Amount int `json:"amount" binding:"required,min=1,max=1000000"`
}

type TipRequest struct {
	Amount    int    `json:"amount" binding:"required,min=1"`
	CreatorID string `json:"creatorId" binding:"required"`
}

type PayoutRequest struct {
	Amount float64 `json:"amount" binding:"required,gte=50"`
}

// GetTokens godoc
// @Summary      Get token balance
// @Description  Token balance and transaction history of the caller, newest first
// @Tags         tokens
// @Produce      json
// @Success      200  {object}  Response{data=usecase.TokenBalance}
// @Router       /tokens [get]
func (h *LedgerHandler) GetTokens(c *gin.Context) {
	userID := c.GetString("user_id")

	balance, err := h.ledgerUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, balance)
}

// GetPackages godoc
// @Summary      List token packages
// @Tags         tokens
// @Produce      json
// @Success      200  {object}  Response{data=[]entity.TokenPackage}
// @Router       /tokens/packages [get]
func (h *LedgerHandler) GetPackages(c *gin.Context) {
	respond(c, http.StatusOK, h.ledgerUseCase.Packages())
}

// Purchase godoc
// @Summary      Purchase tokens
// @Description  Credit tokens to the caller and record the purchase
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        request body PurchaseRequest true "Token amount"
// @Success      200  {object}  Response{data=entity.UserTokens}
// @Failure      400  {object}  Response
// @Router       /tokens/purchase [post]
func (h *LedgerHandler) Purchase(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.ledgerUseCase.Purchase(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, tokens)
}

// Tip godoc
// @Summary      Tip a creator
// @Description  Debit the caller's tokens and credit the creator 10% of the amount in currency
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        request body TipRequest true "Tip"
// @Success      200  {object}  Response{data=usecase.TipResult}
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /tokens/tip [post]
func (h *LedgerHandler) Tip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.ledgerUseCase.Tip(c.Request.Context(), userID, req.CreatorID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, res)
}

// RequestPayout godoc
// @Summary      Request a payout
// @Description  Debit the caller's creator balance; the minimum payout is 50
// @Tags         payouts
// @Accept       json
// @Produce      json
// @Param        request body PayoutRequest true "Payout amount"
// @Success      200  {object}  Response{data=usecase.PayoutResult}
// @Failure      400  {object}  Response
// @Router       /payouts [post]
func (h *LedgerHandler) RequestPayout(c *gin.Context) {
	creatorID := c.GetString("creator_id")

	var req PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.ledgerUseCase.RequestPayout(c.Request.Context(), creatorID, decimal.NewFromFloat(req.Amount).Round(2))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, res)
}

// ListPayouts godoc
// @Summary      Payout history
// @Tags         payouts
// @Produce      json
// @Success      200  {object}  Response{data=[]entity.Payout}
// @Router       /payouts [get]
func (h *LedgerHandler) ListPayouts(c *gin.Context) {
	creatorID := c.GetString("creator_id")

	payouts, err := h.ledgerUseCase.ListPayouts(c.Request.Context(), creatorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, payouts)
}
