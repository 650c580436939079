package handler

import (
	"ownly-protocol/internal/adapter/http/dto"
	"ownly-protocol/internal/core/domain"
	"ownly-protocol/internal/core/ports"
	"ownly-protocol/pkg/apperror"
	"ownly-protocol/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceHandler handles balance read endpoints.
type BalanceHandler struct {
	balanceSvc ports.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceSvc ports.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceSvc: balanceSvc}
}

// GetBalances handles GET /api/v1/balances.
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	balances, err := h.balanceSvc.GetBalances(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make(map[string]dto.BalanceEntry, len(balances))
	for symbol, baseUnits := range balances {
		display := baseUnits
		if token, err := domain.TokenBySymbol(symbol); err == nil {
			if d, derr := domain.FromBaseUnits(baseUnits, token.Decimals); derr == nil {
				display = d
			}
		}
		out[symbol] = dto.BalanceEntry{BaseUnits: baseUnits, Display: display}
	}

	response.OK(c, dto.BalancesResponse{Balances: out})
}
