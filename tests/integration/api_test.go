package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "inheritance-vault/internal/adapter/http/handler"
	redisStorage "inheritance-vault/internal/adapter/storage/redis"
	"inheritance-vault/internal/service"
	"inheritance-vault/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack on in-memory storage: miniredis for
// the fact stream and in-memory repos behind a serializing transactor. This
// exercises the real HTTP layer, middleware, handlers, and services end-to-end.

type testApp struct {
	server   *httptest.Server
	redis    *miniredis.Miniredis
	client   *goredis.Client
	accounts *inMemoryAccountRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	// Start miniredis
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// In-memory repos
	vaultRepo := newInMemoryVaultRepo()
	tokenRepo := newInMemoryTokenRepo()
	shareRepo := newInMemoryShareRepo()
	indexRepo := newInMemoryVaultIndexRepo()
	factRepo := newInMemoryFactRepo()
	accountRepo := newInMemoryAccountRepo()
	transactor := newSerialTransactor()

	// Fact stream
	factStream := redisStorage.NewFactStream(rdb, "vault:facts")

	// Core services with real implementations
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	// Business services
	log := logger.New("debug", false)
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc, 1_000_000)
	ledgerSvc := service.NewLedgerService(vaultRepo, shareRepo, indexRepo, factRepo, accountRepo, transactor, factStream, log)
	claimSvc := service.NewClaimService(vaultRepo, tokenRepo, shareRepo, factRepo, accountRepo, transactor, factStream, log)
	heartbeatSvc := service.NewHeartbeatService(vaultRepo, factRepo, transactor, factStream, log)
	querySvc := service.NewQueryService(vaultRepo, tokenRepo, shareRepo, indexRepo, factRepo, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:      authSvc,
		LedgerSvc:    ledgerSvc,
		ClaimSvc:     claimSvc,
		HeartbeatSvc: heartbeatSvc,
		QuerySvc:     querySvc,
		TokenSvc:     tokenSvc,
		Logger:       log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:   server,
		redis:    mr,
		client:   rdb,
		accounts: accountRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.client.Close()
	a.redis.Close()
}

// --- HTTP helpers ---

type apiResponse struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

type registeredAccount struct {
	ID    string
	Token string
}

func (a *testApp) register(t *testing.T, username string) registeredAccount {
	t.Helper()

	status, resp := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"password": "StrongPass123!",
	})
	require.Equal(t, http.StatusCreated, status)

	var reg struct {
		AccountID string `json:"account_id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reg))

	status, resp = a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "StrongPass123!",
	})
	require.Equal(t, http.StatusOK, status)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))

	return registeredAccount{ID: reg.AccountID, Token: login.Token}
}

func (a *testApp) balance(t *testing.T, accountID string) int64 {
	t.Helper()
	for _, acct := range a.accounts.accounts {
		if acct.ID.String() == accountID {
			return acct.Balance
		}
	}
	t.Fatalf("account %s not found", accountID)
	return 0
}

type vaultData struct {
	ID               int64  `json:"id"`
	Owner            string `json:"owner"`
	Beneficiary      string `json:"beneficiary"`
	MultiBeneficiary bool   `json:"multi_beneficiary"`
	Balance          int64  `json:"balance"`
	Claimed          bool   `json:"claimed"`
	HeartbeatEnabled bool   `json:"heartbeat_enabled"`
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	acct := app.register(t, "alice")
	assert.NotEmpty(t, acct.ID)
	assert.NotEmpty(t, acct.Token)
	assert.Equal(t, int64(1_000_000), app.balance(t, acct.ID))

	// Duplicate username
	status, resp := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"password": "AnotherPass123!",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "AUTH_002", resp.ErrorCode)

	// Wrong password
	status, resp = app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice",
		"password": "WrongPass123!",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", resp.ErrorCode)
}

// TestIntegration_SingleVaultLifecycle walks a vault from creation through a
// token-gated claim: deposit escrowed, token minted, early claim refused,
// claim paid out after unlock, second claim refused.
func TestIntegration_SingleVaultLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := app.register(t, "owner1")
	beneficiary := app.register(t, "heir1")

	unlockTime := time.Now().Add(2 * time.Second).UTC()
	status, resp := app.do(t, http.MethodPost, "/api/v1/vaults", owner.Token, map[string]any{
		"beneficiary": beneficiary.ID,
		"unlock_time": unlockTime.Format(time.RFC3339Nano),
		"deposit":     300_000,
	})
	require.Equal(t, http.StatusCreated, status)

	var vault vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &vault))
	assert.Equal(t, int64(300_000), vault.Balance)
	assert.Equal(t, beneficiary.ID, vault.Beneficiary)

	// Deposit left the owner's external balance
	assert.Equal(t, int64(700_000), app.balance(t, owner.ID))

	// Mint a token for the beneficiary
	path := fmt.Sprintf("/api/v1/vaults/%d/tokens", vault.ID)
	status, resp = app.do(t, http.MethodPost, path, owner.Token, nil)
	require.Equal(t, http.StatusCreated, status)

	var token struct {
		ID          int64  `json:"id"`
		Beneficiary string `json:"beneficiary"`
		Active      bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &token))
	assert.Equal(t, beneficiary.ID, token.Beneficiary)
	assert.True(t, token.Active)

	// Claim before unlock is refused
	claimPath := fmt.Sprintf("/api/v1/vaults/%d/claim", vault.ID)
	status, resp = app.do(t, http.MethodPost, claimPath, beneficiary.Token, map[string]int64{"token_id": token.ID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "STATE_003", resp.ErrorCode)

	time.Sleep(time.Until(unlockTime) + 100*time.Millisecond)

	// Owner cannot claim
	status, resp = app.do(t, http.MethodPost, claimPath, owner.Token, map[string]int64{"token_id": token.ID})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "VAUTH_002", resp.ErrorCode)

	// Beneficiary claims successfully
	status, resp = app.do(t, http.MethodPost, claimPath, beneficiary.Token, map[string]int64{"token_id": token.ID})
	require.Equal(t, http.StatusOK, status)

	var claim struct {
		Recipient string `json:"recipient"`
		Amount    int64  `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &claim))
	assert.Equal(t, beneficiary.ID, claim.Recipient)
	assert.Equal(t, int64(300_000), claim.Amount)
	assert.Equal(t, int64(1_300_000), app.balance(t, beneficiary.ID))

	// Second claim is refused
	status, resp = app.do(t, http.MethodPost, claimPath, beneficiary.Token, map[string]int64{"token_id": token.ID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "STATE_002", resp.ErrorCode)

	// Fact log records the lifecycle, newest first
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/vaults/%d/facts", vault.ID), owner.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var facts []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &facts))
	require.Len(t, facts, 3)
	assert.Equal(t, "VAULT_CLAIMED", facts[0].Type)
	assert.Equal(t, "TOKEN_MINTED", facts[1].Type)
	assert.Equal(t, "VAULT_CREATED", facts[2].Type)

	// Facts were fanned out to the Redis stream
	entries, err := app.client.XRange(context.Background(), "vault:facts", "-", "+").Result()
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

// TestIntegration_StaleTokenAfterRetarget verifies a minted token becomes
// permanently unusable once the vault is retargeted to a new beneficiary.
func TestIntegration_StaleTokenAfterRetarget(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := app.register(t, "owner2")
	oldHeir := app.register(t, "heir_old")
	newHeir := app.register(t, "heir_new")

	unlockTime := time.Now().Add(time.Second).UTC()
	status, resp := app.do(t, http.MethodPost, "/api/v1/vaults", owner.Token, map[string]any{
		"beneficiary": oldHeir.ID,
		"unlock_time": unlockTime.Format(time.RFC3339Nano),
		"deposit":     50_000,
	})
	require.Equal(t, http.StatusCreated, status)
	var vault vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &vault))

	// Mint against the old beneficiary, then retarget
	status, resp = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/vaults/%d/tokens", vault.ID), owner.Token, nil)
	require.Equal(t, http.StatusCreated, status)
	var token struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &token))

	status, _ = app.do(t, http.MethodPut, fmt.Sprintf("/api/v1/vaults/%d/beneficiary", vault.ID), owner.Token, map[string]string{
		"beneficiary": newHeir.ID,
	})
	require.Equal(t, http.StatusOK, status)

	time.Sleep(time.Until(unlockTime) + 100*time.Millisecond)

	claimPath := fmt.Sprintf("/api/v1/vaults/%d/claim", vault.ID)

	// Old beneficiary is no longer the claim target
	status, resp = app.do(t, http.MethodPost, claimPath, oldHeir.Token, map[string]int64{"token_id": token.ID})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "VAUTH_002", resp.ErrorCode)

	// New beneficiary holds the right identity but the token binding is stale
	status, resp = app.do(t, http.MethodPost, claimPath, newHeir.Token, map[string]int64{"token_id": token.ID})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "VAUTH_003", resp.ErrorCode)

	// Both beneficiary index entries exist, but only the current one resolves
	status, resp = app.do(t, http.MethodGet, "/api/v1/vaults/inherited", newHeir.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var inherited []vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &inherited))
	require.Len(t, inherited, 1)
	assert.Equal(t, vault.ID, inherited[0].ID)

	status, resp = app.do(t, http.MethodGet, "/api/v1/vaults/inherited", oldHeir.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var staleList []vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &staleList))
	assert.Empty(t, staleList)
}

// TestIntegration_MultiBeneficiaryClaim distributes a vault across three
// shares and verifies truncated payouts plus the escrowed remainder.
func TestIntegration_MultiBeneficiaryClaim(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := app.register(t, "owner3")
	h1 := app.register(t, "share_heir1")
	h2 := app.register(t, "share_heir2")
	h3 := app.register(t, "share_heir3")

	unlockTime := time.Now().Add(time.Second).UTC()
	status, resp := app.do(t, http.MethodPost, "/api/v1/vaults/multi", owner.Token, map[string]any{
		"beneficiaries": []string{h1.ID, h2.ID, h3.ID},
		"percentages":   []int64{33, 33, 34},
		"unlock_time":   unlockTime.Format(time.RFC3339Nano),
		"deposit":       100_001,
	})
	require.Equal(t, http.StatusCreated, status)
	var vault vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &vault))
	assert.True(t, vault.MultiBeneficiary)

	// Share plan is queryable
	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/vaults/%d/beneficiaries", vault.ID), owner.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var shares []struct {
		Percentage int64 `json:"percentage"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &shares))
	require.Len(t, shares, 3)

	time.Sleep(time.Until(unlockTime) + 100*time.Millisecond)

	// Any beneficiary may trigger the release
	status, resp = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/vaults/%d/claim-multi", vault.ID), h2.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var result struct {
		Total     int64 `json:"total"`
		Remainder int64 `json:"remainder"`
		Payouts   []struct {
			Amount int64 `json:"amount"`
		} `json:"payouts"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, int64(100_001), result.Total)
	require.Len(t, result.Payouts, 3)

	// floor(100001*33/100) = 33000, floor(100001*34/100) = 34000
	assert.Equal(t, int64(33_000), result.Payouts[0].Amount)
	assert.Equal(t, int64(33_000), result.Payouts[1].Amount)
	assert.Equal(t, int64(34_000), result.Payouts[2].Amount)
	assert.Equal(t, int64(1), result.Remainder)

	assert.Equal(t, int64(1_033_000), app.balance(t, h1.ID))
	assert.Equal(t, int64(1_033_000), app.balance(t, h2.ID))
	assert.Equal(t, int64(1_034_000), app.balance(t, h3.ID))
}

// TestIntegration_EmergencyWithdraw verifies the owner's escape hatch closes
// at the unlock time.
func TestIntegration_EmergencyWithdraw(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := app.register(t, "owner4")
	heir := app.register(t, "heir4")

	status, resp := app.do(t, http.MethodPost, "/api/v1/vaults", owner.Token, map[string]any{
		"beneficiary": heir.ID,
		"unlock_time": time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339Nano),
		"deposit":     400_000,
	})
	require.Equal(t, http.StatusCreated, status)
	var vault vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &vault))
	assert.Equal(t, int64(600_000), app.balance(t, owner.ID))

	// Beneficiary cannot use the owner's escape hatch
	withdrawPath := fmt.Sprintf("/api/v1/vaults/%d/emergency-withdraw", vault.ID)
	status, resp = app.do(t, http.MethodPost, withdrawPath, heir.Token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "VAUTH_001", resp.ErrorCode)

	// Owner reclaims the full balance
	status, resp = app.do(t, http.MethodPost, withdrawPath, owner.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var claim struct {
		Amount int64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &claim))
	assert.Equal(t, int64(400_000), claim.Amount)
	assert.Equal(t, int64(1_000_000), app.balance(t, owner.ID))

	// The vault is terminal now
	status, resp = app.do(t, http.MethodPost, withdrawPath, owner.Token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "STATE_002", resp.ErrorCode)
}

// TestIntegration_Heartbeat exercises proof-of-life tracking end to end.
func TestIntegration_Heartbeat(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := app.register(t, "owner5")
	heir := app.register(t, "heir5")

	status, resp := app.do(t, http.MethodPost, "/api/v1/vaults", owner.Token, map[string]any{
		"beneficiary": heir.ID,
		"unlock_time": time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339Nano),
		"deposit":     10_000,
	})
	require.Equal(t, http.StatusCreated, status)
	var vault vaultData
	require.NoError(t, json.Unmarshal(resp.Data, &vault))

	// Interval below the 30-day floor is rejected
	enablePath := fmt.Sprintf("/api/v1/vaults/%d/heartbeat/enable", vault.ID)
	status, resp = app.do(t, http.MethodPost, enablePath, owner.Token, map[string]int64{
		"interval_seconds": 3600,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_008", resp.ErrorCode)

	// 60 days is within bounds
	status, resp = app.do(t, http.MethodPost, enablePath, owner.Token, map[string]int64{
		"interval_seconds": 60 * 24 * 3600,
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &vault))
	assert.True(t, vault.HeartbeatEnabled)

	// Record a beat, then check status
	status, _ = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/vaults/%d/heartbeat", vault.ID), owner.Token, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/vaults/%d/heartbeat", vault.ID), owner.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var hb struct {
		Overdue bool `json:"overdue"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &hb))
	assert.False(t, hb.Overdue)

	// Only the owner records beats
	status, resp = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/vaults/%d/heartbeat", vault.ID), heir.Token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "VAUTH_001", resp.ErrorCode)
}

// TestIntegration_Stats verifies ledger-wide aggregates across vault state.
func TestIntegration_Stats(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := app.register(t, "owner6")
	heir := app.register(t, "heir6")

	for i := 0; i < 3; i++ {
		status, _ := app.do(t, http.MethodPost, "/api/v1/vaults", owner.Token, map[string]any{
			"beneficiary": heir.ID,
			"unlock_time": time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339Nano),
			"deposit":     100_000,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, _ := app.do(t, http.MethodPost, "/api/v1/vaults/1/tokens", owner.Token, nil)
	require.Equal(t, http.StatusCreated, status)

	status, resp := app.do(t, http.MethodGet, "/api/v1/stats", owner.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var stats struct {
		TotalVaults   int64 `json:"total_vaults"`
		TotalTokens   int64 `json:"total_tokens"`
		TotalEscrowed int64 `json:"total_escrowed"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, int64(3), stats.TotalVaults)
	assert.Equal(t, int64(1), stats.TotalTokens)
	assert.Equal(t, int64(300_000), stats.TotalEscrowed)
}
