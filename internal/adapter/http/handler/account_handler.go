package handler

import (
	"errors"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/dto"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/apperror"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/money"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles balance query and mutation endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
	playerSvc  ports.PlayerService
	codec      *money.Codec
}

// NewAccountHandler creates a new AccountHandler. playerSvc may be nil,
// which disables remote transfer registration.
func NewAccountHandler(accountSvc ports.AccountService, playerSvc ports.PlayerService, codec *money.Codec) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
		playerSvc:  playerSvc,
		codec:      codec,
	}
}

// GetBalance handles GET /api/v1/accounts/:id/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.balanceResponse(id))
}

// Deposit handles POST /api/v1/accounts/:id/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := h.parseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.accountSvc.Deposit(id, amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.balanceResponse(id))
}

// Withdraw handles POST /api/v1/accounts/:id/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := h.parseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.accountSvc.Withdraw(id, amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.balanceResponse(id))
}

// Transfer handles POST /api/v1/accounts/:id/transfer.
func (h *AccountHandler) Transfer(c *gin.Context) {
	from, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	to, err := uuid.Parse(req.To)
	if err != nil {
		response.Error(c, apperror.Validation("to must be a valid UUID"))
		return
	}

	amount, err := h.parseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.accountSvc.Transfer(from, to, amount); err != nil {
		response.Error(c, err)
		return
	}

	// Remote bookkeeping is best-effort and never blocks the response.
	if h.playerSvc != nil {
		h.playerSvc.QueueTransferRegistration(from, to, amount)
	}

	response.OK(c, dto.TransferResponse{
		From:   h.balanceResponse(from),
		To:     h.balanceResponse(to),
		Amount: h.codec.Format(amount),
	})
}

// SetBalance handles PUT /api/v1/admin/accounts/:id/balance.
func (h *AccountHandler) SetBalance(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	// Zero is a legal administrative balance.
	balance, err := h.codec.ParseNonNegative(req.Balance)
	if err != nil {
		var perr *money.ParseError
		if errors.As(err, &perr) {
			response.Error(c, apperror.Validation(perr.Error()))
			return
		}
		response.Error(c, apperror.InternalError(err))
		return
	}

	if err := h.accountSvc.SetBalance(id, balance); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.balanceResponse(id))
}

func (h *AccountHandler) balanceResponse(id uuid.UUID) dto.BalanceResponse {
	raw := h.accountSvc.Balance(id)
	return dto.BalanceResponse{
		AccountID: id.String(),
		Raw:       raw,
		Formatted: h.codec.Format(raw),
	}
}

// parseAmount runs textual amounts through the currency codec and maps
// codec failures onto the error envelope.
func (h *AccountHandler) parseAmount(text string) (int64, error) {
	units, err := h.codec.Parse(text)
	if err != nil {
		var perr *money.ParseError
		if errors.As(err, &perr) {
			return 0, apperror.Validation(perr.Error())
		}
		return 0, apperror.InternalError(err)
	}
	return units, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(name + " must be a valid UUID")
	}
	return id, nil
}
