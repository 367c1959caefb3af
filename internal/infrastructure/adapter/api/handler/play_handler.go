package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	domainerr "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/session"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/dto"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/middleware"
)

// PlayHandler handles table and betting HTTP requests
type PlayHandler struct {
	coordinator *session.Coordinator
	logger      coreport.Logger
}

// NewPlayHandler creates a new play handler instance
func NewPlayHandler(coordinator *session.Coordinator, logger coreport.Logger) *PlayHandler {
	return &PlayHandler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// Boots handles the GET /play/boots endpoint
func (h *PlayHandler) Boots(c *gin.Context) {
	boots, err := h.coordinator.ListBoots(c.Request.Context())
	if err != nil {
		h.respondError(c, err, map[string]any{})
		return
	}

	resp := dto.BootListResponse{Boots: make([]dto.BootResponse, 0, len(boots))}
	for _, boot := range boots {
		resp.Boots = append(resp.Boots, dto.NewBootResponse(boot))
	}
	c.JSON(http.StatusOK, resp)
}

// JoinGame handles the POST /play/join-game endpoint
func (h *PlayHandler) JoinGame(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	result, err := h.coordinator.Join(c.Request.Context(), req.BootID, userID)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"boot_id": req.BootID,
			"user_id": userID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.JoinGameResponse{
		RoomID: result.RoomID,
		Room:   result.Snapshot,
	})
}

// ExitGame handles the POST /play/exit-game endpoint
func (h *PlayHandler) ExitGame(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.ExitGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	result, err := h.coordinator.Leave(c.Request.Context(), req.RoomID, userID)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"room_id": req.RoomID,
			"user_id": userID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ExitGameResponse{
		RoomID:      result.RoomID,
		RoomDeleted: result.RoomDeleted,
		Room:        result.Snapshot,
	})
}

// PlaceBet handles the POST /play/place-bet endpoint
func (h *PlayHandler) PlaceBet(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	result, err := h.coordinator.PlaceBet(c.Request.Context(), req.RoomID, userID, req.Amount, entity.BetKind(req.Kind))
	if err != nil {
		h.respondError(c, err, map[string]any{
			"room_id": req.RoomID,
			"user_id": userID,
			"kind":    req.Kind,
			"amount":  req.Amount,
		})
		return
	}

	c.JSON(http.StatusOK, dto.PlaceBetResponse{
		BetID:         result.Bet.ID,
		Kind:          string(result.Bet.Kind),
		Amount:        result.Bet.Amount,
		TotalPot:      result.TotalPot,
		WalletBalance: result.WalletBalance,
		Room:          result.Snapshot,
	})
}

// StartRound handles the POST /play/start-round endpoint
func (h *PlayHandler) StartRound(c *gin.Context) {
	var req dto.StartRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	snapshot, err := h.coordinator.StartRound(c.Request.Context(), req.RoomID)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"room_id": req.RoomID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.RoomStateResponse{Room: snapshot})
}

// CompleteGame handles the POST /play/complete-game endpoint
func (h *PlayHandler) CompleteGame(c *gin.Context) {
	var req dto.CompleteGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	result, err := h.coordinator.CompleteGame(c.Request.Context(), req.RoomID)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"room_id": req.RoomID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.CompleteGameResponse{
		WinnerID:  result.WinnerID,
		AmountWon: result.AmountWon,
		Room:      result.Snapshot,
	})
}

// SideShowResponse handles the POST /play/side-show-response endpoint
func (h *PlayHandler) SideShowResponse(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.SideShowResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	snapshot, err := h.coordinator.RespondSideShow(c.Request.Context(), req.RoomID, userID, req.RequesterID, req.Accepted)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"room_id":      req.RoomID,
			"user_id":      userID,
			"requester_id": req.RequesterID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.RoomStateResponse{Room: snapshot})
}

// RoomDetail handles the GET /play/room-detail/:roomId endpoint
func (h *PlayHandler) RoomDetail(c *gin.Context) {
	roomID := c.Param("roomId")
	if roomID == "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing room id",
		})
		return
	}

	snapshot, err := h.coordinator.RoomSnapshot(c.Request.Context(), roomID)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"room_id": roomID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.RoomStateResponse{Room: snapshot})
}

func (h *PlayHandler) respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

func (h *PlayHandler) respondError(c *gin.Context, err error, fields map[string]any) {
	status := httpStatus(err)

	if status >= http.StatusInternalServerError {
		fields["error"] = err.Error()
		fields["path"] = c.Request.URL.Path
		h.logger.Error("Request failed", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: publicMessage(err, status),
	})
}

// httpStatus maps domain errors onto the HTTP status space
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsInsufficientBalanceError(err):
		return http.StatusBadRequest
	case domainerr.IsConflictError(err), errors.Is(err, domainerr.ErrNotInRoom):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrPotLimitExceeded),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage keeps driver and storage details out of client responses
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
