package handler

import (
	"errors"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/dto"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/remote"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/apperror"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/money"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles player lifecycle and remote snapshot endpoints.
type PlayerHandler struct {
	playerSvc ports.PlayerService
	codec     *money.Codec
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerSvc ports.PlayerService, codec *money.Codec) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
		codec:     codec,
	}
}

// Join handles POST /api/v1/players/:id/join.
func (h *PlayerHandler) Join(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	player, err := h.playerSvc.HandleJoin(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, mapRemoteError(err, "player"))
		return
	}

	response.OK(c, toPlayerResponse(player))
}

// Quit handles POST /api/v1/players/:id/quit.
func (h *PlayerHandler) Quit(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	h.playerSvc.HandleQuit(id)
	response.OK(c, gin.H{"id": id.String()})
}

// Get handles GET /api/v1/players/:id.
func (h *PlayerHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	player, err := h.playerSvc.Lookup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, mapRemoteError(err, "player"))
		return
	}

	response.OK(c, toPlayerResponse(player))
}

// GetByName handles GET /api/v1/players/by-name/:name.
func (h *PlayerHandler) GetByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.Error(c, apperror.Validation("name must not be empty"))
		return
	}

	player, err := h.playerSvc.LookupByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, mapRemoteError(err, "player"))
		return
	}

	response.OK(c, toPlayerResponse(player))
}

// RemoteBalance handles GET /api/v1/players/:id/remote-balance.
func (h *PlayerHandler) RemoteBalance(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.playerSvc.RemoteBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, mapRemoteError(err, "balance"))
		return
	}

	response.OK(c, dto.RemoteBalanceResponse{
		AccountID:   snap.AccountID.String(),
		Raw:         snap.Balance,
		Formatted:   h.codec.Format(snap.Balance),
		RetrievedAt: snap.RetrievedAt.UTC().Format(time.RFC3339),
	})
}

func toPlayerResponse(p domain.Player) dto.PlayerResponse {
	return dto.PlayerResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// mapRemoteError translates remote client failures onto the error
// envelope. Not-found stays a 404; everything else from the remote side
// surfaces as a gateway failure.
func mapRemoteError(err error, entity string) error {
	if remote.IsNotFound(err) {
		return apperror.ErrNotFound(entity)
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrRemoteUnavailable(err)
}
