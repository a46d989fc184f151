package handler

import (
	"strconv"
	"time"

	"inheritance-vault/internal/adapter/http/dto"
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"
	"inheritance-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultFactLimit = 50

// QueryHandler handles the read-only ledger endpoints.
type QueryHandler struct {
	querySvc ports.QueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(querySvc ports.QueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

// GetVault handles GET /api/v1/vaults/:id.
func (h *QueryHandler) GetVault(c *gin.Context) {
	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	details, err := h.querySvc.GetVaultDetails(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(&details.Vault, details.Shares))
}

// ListOwned handles GET /api/v1/vaults: vaults owned by the caller.
func (h *QueryHandler) ListOwned(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaults, err := h.querySvc.GetOwnerVaults(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponses(vaults))
}

// ListInherited handles GET /api/v1/vaults/inherited: vaults where the
// caller is a current beneficiary.
func (h *QueryHandler) ListInherited(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	vaults, err := h.querySvc.GetBeneficiaryVaults(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponses(vaults))
}

// GetBeneficiaries handles GET /api/v1/vaults/:id/beneficiaries.
func (h *QueryHandler) GetBeneficiaries(c *gin.Context) {
	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	shares, err := h.querySvc.GetVaultBeneficiaries(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.ShareResponse, 0, len(shares))
	for _, s := range shares {
		resp = append(resp, dto.ShareResponse{
			Beneficiary: s.Beneficiary.String(),
			Percentage:  s.Percentage,
		})
	}

	response.OK(c, resp)
}

// GetToken handles GET /api/v1/tokens/:id.
func (h *QueryHandler) GetToken(c *gin.Context) {
	tokenID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.ErrTokenNotFound())
		return
	}

	token, err := h.querySvc.GetTokenDetails(c.Request.Context(), tokenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTokenResponse(token))
}

// GetFacts handles GET /api/v1/vaults/:id/facts?limit=N.
func (h *QueryHandler) GetFacts(c *gin.Context) {
	vaultID, err := vaultIDParam(c)
	if err != nil {
		response.Error(c, apperror.ErrVaultNotFound())
		return
	}

	limit := defaultFactLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	facts, err := h.querySvc.GetVaultFacts(c.Request.Context(), vaultID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.FactResponse, 0, len(facts))
	for _, f := range facts {
		resp = append(resp, toFactResponse(f))
	}

	response.OK(c, resp)
}

// GetStats handles GET /api/v1/stats.
func (h *QueryHandler) GetStats(c *gin.Context) {
	stats, err := h.querySvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		TotalVaults:   stats.TotalVaults,
		TotalTokens:   stats.TotalTokens,
		TotalEscrowed: stats.TotalEscrowed,
	})
}

func toVaultResponses(vaults []domain.Vault) []dto.VaultResponse {
	resp := make([]dto.VaultResponse, 0, len(vaults))
	for i := range vaults {
		resp = append(resp, toVaultResponse(&vaults[i], nil))
	}
	return resp
}

func toFactResponse(f domain.Fact) dto.FactResponse {
	resp := dto.FactResponse{
		ID:        f.ID.String(),
		Type:      string(f.Type),
		VaultID:   f.VaultID,
		Actor:     f.Actor.String(),
		Amount:    f.Amount,
		Details:   f.Details,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
	if f.Recipient != uuid.Nil {
		resp.Recipient = f.Recipient.String()
	}
	return resp
}
