package http

import (
	"net/http"

	"craftledger/pkg/logger"
	"craftledger/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	creatorUseCase      usecase.CreatorUseCase
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewCreatorHandler(creatorUseCase usecase.CreatorUseCase, subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *CreatorHandler {
	return &CreatorHandler{
		creatorUseCase:      creatorUseCase,
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

type SubscribeRequest struct {
	TierID string `json:"tierId" binding:"required"`
}

// GetDashboard godoc
// @Summary      Creator dashboard
// @Description  The caller's creator profile, content, tiers and top tippers
// @Tags         creators
// @Produce      json
// @Success      200  {object}  Response{data=usecase.Dashboard}
// @Router       /dashboard [get]
func (h *CreatorHandler) GetDashboard(c *gin.Context) {
	creatorID := c.GetString("creator_id")

	dash, err := h.creatorUseCase.Dashboard(c.Request.Context(), creatorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, dash)
}

// ListCreators godoc
// @Summary      List creators
// @Tags         creators
// @Produce      json
// @Success      200  {object}  Response{data=[]entity.Creator}
// @Router       /creators [get]
func (h *CreatorHandler) ListCreators(c *gin.Context) {
	creators, err := h.creatorUseCase.ListCreators(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, creators)
}

// GetCreator godoc
// @Summary      Public creator page
// @Description  Creator, content marked locked or not for the caller, tiers and the caller's subscription
// @Tags         creators
// @Produce      json
// @Param        id   path      string  true  "Creator ID"
// @Success      200  {object}  Response{data=usecase.CreatorPage}
// @Failure      404  {object}  Response
// @Router       /creator/{id} [get]
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	userID := c.GetString("user_id")

	page, err := h.creatorUseCase.PublicView(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, page)
}

// GetAnalytics godoc
// @Summary      Creator analytics
// @Tags         creators
// @Produce      json
// @Success      200  {object}  Response{data=entity.Analytics}
// @Router       /analytics [get]
func (h *CreatorHandler) GetAnalytics(c *gin.Context) {
	creatorID := c.GetString("creator_id")

	analytics, err := h.creatorUseCase.Analytics(c.Request.Context(), creatorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, analytics)
}

// Subscribe godoc
// @Summary      Subscribe to a tier
// @Description  Activate the caller's subscription with the tier's creator, replacing any previous tier
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request body SubscribeRequest true "Tier"
// @Success      200  {object}  Response{data=entity.Subscription}
// @Failure      404  {object}  Response
// @Router       /subscriptions [post]
func (h *CreatorHandler) Subscribe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.subscriptionUseCase.Subscribe(c.Request.Context(), userID, req.TierID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, sub)
}
