package handler

import (
	"ownly-protocol/internal/adapter/http/dto"
	"ownly-protocol/internal/adapter/http/middleware"
	"ownly-protocol/internal/core/domain"
	"ownly-protocol/internal/core/ports"
	"ownly-protocol/pkg/apperror"
	"ownly-protocol/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LifecycleHandler handles the token lifecycle endpoints.
type LifecycleHandler struct {
	lifecycleSvc ports.LifecycleService
	walletSvc    ports.WalletService
}

// NewLifecycleHandler creates a new LifecycleHandler.
func NewLifecycleHandler(lifecycleSvc ports.LifecycleService, walletSvc ports.WalletService) *LifecycleHandler {
	return &LifecycleHandler{lifecycleSvc: lifecycleSvc, walletSvc: walletSvc}
}

// Lock handles POST /api/v1/tokens/lock.
func (h *LifecycleHandler) Lock(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	var req dto.LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	signer, err := h.signerFor(address, req.Mnemonic)
	if err != nil {
		response.Error(c, err)
		return
	}

	record, err := h.lifecycleSvc.EncryptAndLock(c.Request.Context(), ports.LockRequest{
		AmountDecimal: req.Amount,
		TokenSymbol:   req.Token,
		Owner:         address,
		Signer:        signer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRecordResponse(record))
}

// Send handles POST /api/v1/tokens/:id/send.
func (h *LifecycleHandler) Send(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("invalid record id"))
		return
	}

	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	result, err := h.lifecycleSvc.Send(c.Request.Context(), ports.SendRequest{
		RecordID:  recordID,
		Sender:    address,
		Recipient: domain.Address(req.Recipient),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SendResponse{
		Sent:     toRecordResponse(result.Sent),
		Received: toRecordResponse(result.Received),
	})
}

// Unlock handles POST /api/v1/tokens/:id/unlock.
func (h *LifecycleHandler) Unlock(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("invalid record id"))
		return
	}

	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	signer, err := h.signerFor(address, req.Mnemonic)
	if err != nil {
		response.Error(c, err)
		return
	}

	record, err := h.lifecycleSvc.DecryptAndUnlock(c.Request.Context(), ports.UnlockRequest{
		RecordID: recordID,
		Caller:   address,
		Signer:   signer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRecordResponse(record))
}

// Transfer handles POST /api/v1/transfers.
func (h *LifecycleHandler) Transfer(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	signer, err := h.signerFor(address, req.Mnemonic)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.lifecycleSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		AmountDecimal: req.Amount,
		TokenSymbol:   req.Token,
		Sender:        address,
		Recipient:     domain.Address(req.Recipient),
		Signer:        signer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{TxDigest: result.Digest})
}

// History handles GET /api/v1/tokens.
func (h *LifecycleHandler) History(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	entries, err := h.lifecycleSvc.History(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.HistoryItem{
			RecordResponse: toRecordResponse(e.Record),
			Role:           e.Role,
		})
	}
	response.OK(c, dto.HistoryResponse{Items: items})
}

// Activity handles GET /api/v1/transactions — raw on-chain activity for the
// session wallet, complementing the record-store history.
func (h *LifecycleHandler) Activity(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	results, err := h.lifecycleSvc.LedgerActivity(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ActivityItem, 0, len(results))
	for _, r := range results {
		items = append(items, dto.ActivityItem{
			Digest:    r.Digest,
			Success:   r.Status.Success,
			Error:     r.Status.Error,
			Timestamp: r.TimestampMs,
		})
	}
	response.OK(c, dto.ActivityResponse{Items: items})
}

// signerFor derives the signer for a recovery phrase and checks it controls
// the session's wallet.
func (h *LifecycleHandler) signerFor(address domain.Address, mnemonic string) (domain.Signer, error) {
	signer, err := h.walletSvc.SignerFromMnemonic(mnemonic)
	if err != nil {
		return nil, apperror.ErrInvalidInput("invalid recovery phrase")
	}
	if signer.Address() != address {
		return nil, apperror.ErrInvalidInput("recovery phrase does not control the session wallet")
	}
	return signer, nil
}

// sessionAddress reads the authenticated wallet address off the context.
func sessionAddress(c *gin.Context) (domain.Address, bool) {
	v, ok := c.Get(middleware.CtxAddress)
	if !ok {
		return "", false
	}
	addr, ok := v.(domain.Address)
	return addr, ok
}

// toRecordResponse converts a domain.TokenRecord to its DTO. The encrypted
// payload and key never leave the service.
func toRecordResponse(rec *domain.TokenRecord) dto.RecordResponse {
	display := rec.AmountBaseUnits
	if token, err := domain.TokenBySymbol(rec.TokenSymbol); err == nil {
		if d, derr := domain.FromBaseUnits(rec.AmountBaseUnits, token.Decimals); derr == nil {
			display = d
		}
	}
	return dto.RecordResponse{
		ID:            rec.ID.String(),
		TxDigest:      rec.TxDigest,
		LockObjectID:  rec.LockObjectID,
		Token:         rec.TokenSymbol,
		Amount:        rec.AmountBaseUnits,
		AmountDisplay: display,
		Status:        string(rec.Status),
		Sender:        rec.Sender.String(),
		Recipient:     rec.Recipient.String(),
		Timestamp:     rec.Timestamp,
	}
}
