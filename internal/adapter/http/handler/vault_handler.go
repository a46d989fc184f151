package handler

import (
	"strconv"
	"time"

	"inheritance-vault/internal/adapter/http/dto"
	"inheritance-vault/internal/adapter/http/middleware"
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"
	"inheritance-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VaultHandler handles owner-side vault endpoints.
type VaultHandler struct {
	ledgerSvc    ports.LedgerService
	heartbeatSvc ports.HeartbeatService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(ledgerSvc ports.LedgerService, heartbeatSvc ports.HeartbeatService) *VaultHandler {
	return &VaultHandler{ledgerSvc: ledgerSvc, heartbeatSvc: heartbeatSvc}
}

// Create handles POST /api/v1/vaults.
func (h *VaultHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	beneficiary, err := uuid.Parse(req.Beneficiary)
	if err != nil {
		response.Error(c, apperror.ErrInvalidBeneficiary())
		return
	}

	vault, err := h.ledgerSvc.CreateVault(c.Request.Context(), ports.CreateVaultRequest{
		Owner:       caller,
		Beneficiary: beneficiary,
		UnlockTime:  req.UnlockTime,
		Deposit:     req.Deposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toVaultResponse(vault, nil))
}

// CreateMulti handles POST /api/v1/vaults/multi.
func (h *VaultHandler) CreateMulti(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateMultiVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	beneficiaries := make([]uuid.UUID, 0, len(req.Beneficiaries))
	for _, b := range req.Beneficiaries {
		id, err := uuid.Parse(b)
		if err != nil {
			response.Error(c, apperror.ErrInvalidBeneficiary())
			return
		}
		beneficiaries = append(beneficiaries, id)
	}

	vault, err := h.ledgerSvc.CreateMultiBeneficiaryVault(c.Request.Context(), ports.CreateMultiVaultRequest{
		Owner:         caller,
		Beneficiaries: beneficiaries,
		Percentages:   req.Percentages,
		UnlockTime:    req.UnlockTime,
		Deposit:       req.Deposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toVaultResponse(vault, nil))
}

// AddFunds handles POST /api/v1/vaults/:id/funds.
func (h *VaultHandler) AddFunds(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	var req dto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, err := h.ledgerSvc.AddFunds(c.Request.Context(), caller, vaultID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault, nil))
}

// Extend handles POST /api/v1/vaults/:id/extend.
func (h *VaultHandler) Extend(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	var req dto.ExtendVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, err := h.ledgerSvc.ExtendVaultTime(c.Request.Context(), caller, vaultID, req.UnlockTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault, nil))
}

// UpdateBeneficiary handles PUT /api/v1/vaults/:id/beneficiary.
func (h *VaultHandler) UpdateBeneficiary(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	beneficiary, err := uuid.Parse(req.Beneficiary)
	if err != nil {
		response.Error(c, apperror.ErrInvalidBeneficiary())
		return
	}

	vault, err := h.ledgerSvc.UpdateBeneficiary(c.Request.Context(), caller, vaultID, beneficiary)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault, nil))
}

// SetMessage handles PUT /api/v1/vaults/:id/message.
func (h *VaultHandler) SetMessage(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	var req dto.SetMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, err := h.ledgerSvc.SetMessage(c.Request.Context(), caller, vaultID, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault, nil))
}

// EnableHeartbeat handles POST /api/v1/vaults/:id/heartbeat/enable.
func (h *VaultHandler) EnableHeartbeat(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	var req dto.EnableHeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	interval := time.Duration(req.IntervalSeconds) * time.Second
	vault, err := h.heartbeatSvc.EnableHeartbeat(c.Request.Context(), caller, vaultID, interval)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault, nil))
}

// RecordHeartbeat handles POST /api/v1/vaults/:id/heartbeat.
func (h *VaultHandler) RecordHeartbeat(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	vault, err := h.heartbeatSvc.RecordHeartbeat(c.Request.Context(), caller, vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault, nil))
}

// HeartbeatStatus handles GET /api/v1/vaults/:id/heartbeat.
func (h *VaultHandler) HeartbeatStatus(c *gin.Context) {
	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	overdue, err := h.heartbeatSvc.IsHeartbeatOverdue(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.HeartbeatStatusResponse{
		VaultID: vaultID,
		Overdue: overdue,
	})
}

// callerID extracts the authenticated account id set by the JWT middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// vaultIDParam parses the :id path parameter.
func vaultIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// toVaultResponse converts domain.Vault to DTO.
func toVaultResponse(v *domain.Vault, shares []domain.BeneficiaryShare) dto.VaultResponse {
	resp := dto.VaultResponse{
		ID:               v.ID,
		Owner:            v.Owner.String(),
		MultiBeneficiary: v.IsMultiBeneficiary(),
		Balance:          v.Balance,
		UnlockTime:       v.UnlockTime.Format(time.RFC3339),
		Claimed:          v.Claimed,
		HeartbeatEnabled: v.HeartbeatEnabled,
		Message:          v.Note,
		CreatedAt:        v.CreatedAt.Format(time.RFC3339),
	}
	if !v.IsMultiBeneficiary() {
		resp.Beneficiary = v.Beneficiary.String()
	}
	if v.HeartbeatEnabled {
		resp.HeartbeatInterval = int64(v.HeartbeatInterval / time.Second)
	}
	if v.LastHeartbeatAt != nil {
		s := v.LastHeartbeatAt.Format(time.RFC3339)
		resp.LastHeartbeatAt = &s
	}
	for _, share := range shares {
		resp.Shares = append(resp.Shares, dto.ShareResponse{
			Beneficiary: share.Beneficiary.String(),
			Percentage:  share.Percentage,
		})
	}
	return resp
}
