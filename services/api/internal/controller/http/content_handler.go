package http

import (
	"net/http"
	"time"

	"craftledger/pkg/logger"
	"craftledger/services/api/internal/entity"
	"craftledger/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

type ContentRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required,oneof=video download post"`
	TierID      string     `json:"tierId" binding:"required"`
	PublishDate *time.Time `json:"publishDate"`
}

func (r ContentRequest) draft() entity.ContentDraft {
	return entity.ContentDraft{
		Title:       r.Title,
		Description: r.Description,
		Type:        entity.ContentType(r.Type),
		TierID:      r.TierID,
		PublishDate: r.PublishDate,
	}
}

// GetContent godoc
// @Summary      Get content
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  Response{data=entity.ContentItem}
// @Failure      404  {object}  Response
// @Router       /content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	item, err := h.contentUseCase.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, item)
}

// CreateContent godoc
// @Summary      Create content
// @Description  Publish now, or schedule when publishDate is in the future
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request body ContentRequest true "Content"
// @Success      201  {object}  Response{data=entity.ContentItem}
// @Failure      400  {object}  Response
// @Router       /content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	creatorID := c.GetString("creator_id")

	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.contentUseCase.CreateContent(c.Request.Context(), creatorID, req.draft())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, item)
}

// UpdateContent godoc
// @Summary      Update content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id      path  string          true  "Content ID"
// @Param        request body  ContentRequest  true  "Content"
// @Success      200  {object}  Response{data=entity.ContentItem}
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /content/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	creatorID := c.GetString("creator_id")

	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.contentUseCase.UpdateContent(c.Request.Context(), creatorID, c.Param("id"), req.draft())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, item)
}

// DeleteContent godoc
// @Summary      Delete content
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	creatorID := c.GetString("creator_id")
	contentID := c.Param("id")

	if err := h.contentUseCase.DeleteContent(c.Request.Context(), creatorID, contentID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"id": contentID})
}
