package handler

import (
	"time"

	"inheritance-vault/internal/adapter/http/dto"
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"
	"inheritance-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles the release-authorization endpoints.
type ClaimHandler struct {
	claimSvc ports.ClaimService
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimSvc ports.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimSvc: claimSvc}
}

// MintToken handles POST /api/v1/vaults/:id/tokens.
func (h *ClaimHandler) MintToken(c *gin.Context) {
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

	token, err := h.claimSvc.MintToken(c.Request.Context(), caller, vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTokenResponse(token))
}

// ClaimVault handles POST /api/v1/vaults/:id/claim.
func (h *ClaimHandler) ClaimVault(c *gin.Context) {
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

	var req dto.ClaimVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.claimSvc.ClaimVault(c.Request.Context(), caller, vaultID, req.TokenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{
		VaultID:   result.VaultID,
		Recipient: result.Recipient.String(),
		Amount:    result.Amount,
	})
}

// ClaimMulti handles POST /api/v1/vaults/:id/claim-multi.
func (h *ClaimHandler) ClaimMulti(c *gin.Context) {
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

	result, err := h.claimSvc.ClaimMultiBeneficiaryVault(c.Request.Context(), caller, vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.MultiClaimResponse{
		VaultID:   result.VaultID,
		Total:     result.Total,
		Remainder: result.Remainder,
	}
	for _, p := range result.Payouts {
		resp.Payouts = append(resp.Payouts, dto.PayoutResponse{
			Beneficiary: p.Beneficiary.String(),
			Amount:      p.Amount,
		})
	}

	response.OK(c, resp)
}

// EmergencyWithdraw handles POST /api/v1/vaults/:id/emergency-withdraw.
func (h *ClaimHandler) EmergencyWithdraw(c *gin.Context) {
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

	result, err := h.claimSvc.EmergencyWithdraw(c.Request.Context(), caller, vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{
		VaultID:   result.VaultID,
		Recipient: result.Recipient.String(),
		Amount:    result.Amount,
	})
}

// toTokenResponse converts domain.InheritanceToken to DTO.
func toTokenResponse(t *domain.InheritanceToken) dto.TokenResponse {
	return dto.TokenResponse{
		ID:          t.ID,
		VaultID:     t.VaultID,
		Beneficiary: t.Beneficiary.String(),
		Active:      t.Active,
		MintedAt:    t.MintedAt.Format(time.RFC3339),
	}
}
