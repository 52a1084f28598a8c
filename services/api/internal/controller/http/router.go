package http

import "github.com/gin-gonic/gin"

type Handlers struct {
	Creators *CreatorHandler
	Content  *ContentHandler
	Ledger   *LedgerHandler
}

// Register mounts the API routes on api, which already carries identity.
func (h *Handlers) Register(api *gin.RouterGroup) {
	api.GET("/dashboard", h.Creators.GetDashboard)
	api.GET("/creators", h.Creators.ListCreators)
	api.GET("/creator/:id", h.Creators.GetCreator)
	api.GET("/analytics", h.Creators.GetAnalytics)
	api.POST("/subscriptions", h.Creators.Subscribe)

	api.GET("/content/:id", h.Content.GetContent)
	api.POST("/content", h.Content.CreateContent)
	api.PUT("/content/:id", h.Content.UpdateContent)
	api.DELETE("/content/:id", h.Content.DeleteContent)

	api.GET("/tokens", h.Ledger.GetTokens)
	api.GET("/tokens/packages", h.Ledger.GetPackages)
	api.POST("/tokens/purchase", h.Ledger.Purchase)
	api.POST("/tokens/tip", h.Ledger.Tip)

	api.GET("/payouts", h.Ledger.ListPayouts)
	api.POST("/payouts", h.Ledger.RequestPayout)
}
