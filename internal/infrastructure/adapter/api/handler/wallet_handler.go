package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/wallet"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/dto"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/middleware"
)

// WalletHandler handles wallet ledger HTTP requests
type WalletHandler struct {
	ledger           *wallet.Ledger
	dailyBonusAmount int64
	logger           coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(ledger *wallet.Ledger, dailyBonusAmount int64, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		ledger:           ledger,
		dailyBonusAmount: dailyBonusAmount,
		logger:           logger,
	}
}

// DailyBonus handles the POST /play/daily-bonus endpoint
func (h *WalletHandler) DailyBonus(c *gin.Context) {
	userID := middleware.UserID(c)

	txn, err := h.ledger.DailyBonus(c.Request.Context(), userID, h.dailyBonusAmount)
	if err != nil {
		h.respondError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, dto.DailyBonusResponse{
		Amount:        txn.Amount,
		WalletBalance: txn.BalanceAfter,
	})
}

// History handles the GET /play/wallet-history endpoint
func (h *WalletHandler) History(c *gin.Context) {
	userID := middleware.UserID(c)

	txns, err := h.ledger.History(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, userID)
		return
	}

	resp := dto.WalletHistoryResponse{
		UserID:       userID,
		Transactions: make([]dto.WalletTransactionResponse, 0, len(txns)),
	}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, dto.NewWalletTransactionResponse(txn))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WalletHandler) respondError(c *gin.Context, err error, userID uint64) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Wallet request failed", map[string]any{
			"user_id": userID,
			"path":    c.Request.URL.Path,
			"error":   err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: publicMessage(err, status),
	})
}
