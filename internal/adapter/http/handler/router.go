package handler

import (
	"inheritance-vault/internal/adapter/http/middleware"
	redisStore "inheritance-vault/internal/adapter/storage/redis"
	"inheritance-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	ClaimSvc       ports.ClaimService
	HeartbeatSvc   ports.HeartbeatService
	QuerySvc       ports.QueryService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	vaultHandler := NewVaultHandler(deps.LedgerSvc, deps.HeartbeatSvc)
	claimHandler := NewClaimHandler(deps.ClaimSvc)
	queryHandler := NewQueryHandler(deps.QuerySvc)

	vaults := v1.Group("/vaults", jwtAuth)
	{
		// Owner-side mutations
		vaults.POST("", rl("vaults"), vaultHandler.Create)
		vaults.POST("/multi", rl("vaults"), vaultHandler.CreateMulti)
		vaults.POST("/:id/funds", rl("vaults"), vaultHandler.AddFunds)
		vaults.POST("/:id/extend", rl("vaults"), vaultHandler.Extend)
		vaults.PUT("/:id/beneficiary", rl("vaults"), vaultHandler.UpdateBeneficiary)
		vaults.PUT("/:id/message", rl("vaults"), vaultHandler.SetMessage)
		vaults.POST("/:id/heartbeat/enable", rl("vaults"), vaultHandler.EnableHeartbeat)
		vaults.POST("/:id/heartbeat", rl("vaults"), vaultHandler.RecordHeartbeat)

		// Release paths
		vaults.POST("/:id/tokens", rl("claims"), claimHandler.MintToken)
		vaults.POST("/:id/claim", rl("claims"), claimHandler.ClaimVault)
		vaults.POST("/:id/claim-multi", rl("claims"), claimHandler.ClaimMulti)
		vaults.POST("/:id/emergency-withdraw", rl("claims"), claimHandler.EmergencyWithdraw)

		// Queries
		vaults.GET("", rl("queries"), queryHandler.ListOwned)
		vaults.GET("/inherited", rl("queries"), queryHandler.ListInherited)
		vaults.GET("/:id", rl("queries"), queryHandler.GetVault)
		vaults.GET("/:id/beneficiaries", rl("queries"), queryHandler.GetBeneficiaries)
		vaults.GET("/:id/facts", rl("queries"), queryHandler.GetFacts)
		vaults.GET("/:id/heartbeat", rl("queries"), vaultHandler.HeartbeatStatus)
	}

	tokens := v1.Group("/tokens", jwtAuth)
	{
		tokens.GET("/:id", rl("queries"), queryHandler.GetToken)
	}

	stats := v1.Group("/stats", jwtAuth)
	{
		stats.GET("", rl("queries"), queryHandler.GetStats)
	}

	return r
}
