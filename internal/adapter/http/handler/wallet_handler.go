package handler

import (
	"net/http"

	"ownly-protocol/internal/adapter/http/dto"
	"ownly-protocol/internal/core/ports"
	"ownly-protocol/pkg/apperror"
	"ownly-protocol/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and session endpoints.
type WalletHandler struct {
	walletSvc  ports.WalletService
	sessionSvc ports.SessionService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, sessionSvc ports.SessionService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, sessionSvc: sessionSvc}
}

// Create handles POST /api/v1/wallet — generates a fresh recovery phrase.
// The phrase is returned once and never stored.
func (h *WalletHandler) Create(c *gin.Context) {
	mnemonic, err := h.walletSvc.GenerateMnemonic()
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	signer, err := h.walletSvc.SignerFromMnemonic(mnemonic)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, dto.CreateWalletResponse{
		Mnemonic: mnemonic,
		Address:  signer.Address().String(),
	})
}

// Import handles POST /api/v1/wallet/import — derives the address for an
// existing recovery phrase without opening a session.
func (h *WalletHandler) Import(c *gin.Context) {
	var req dto.ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	signer, err := h.walletSvc.SignerFromMnemonic(req.Mnemonic)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("invalid recovery phrase"))
		return
	}

	response.OK(c, dto.ImportWalletResponse{Address: signer.Address().String()})
}

// Connect handles POST /api/v1/session — opens a session for the wallet the
// recovery phrase controls.
func (h *WalletHandler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	signer, err := h.walletSvc.SignerFromMnemonic(req.Mnemonic)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("invalid recovery phrase"))
		return
	}

	token, expiry, err := h.sessionSvc.Issue(signer.Address())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.ConnectResponse{
		Token:   token,
		Expiry:  expiry.Unix(),
		Address: signer.Address().String(),
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
