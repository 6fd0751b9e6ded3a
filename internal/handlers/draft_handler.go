package handlers

import (
	"net/http"
	"strconv"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/services"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the editable draft as server-side state.
type DraftHandler struct {
	draftService services.IDraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService services.IDraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// ItemEditRequest changes one field of one item.
type ItemEditRequest struct {
	Field invoice.ItemField `json:"field" binding:"required"`
	Value string            `json:"value"`
}

func itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
		return 0, false
	}
	return index, true
}

// --- POST: /api/drafts?from=<invoice number> ---
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	view, err := h.draftService.Create(c.Request.Context(), c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// --- GET: /api/drafts/:id ---
func (h *DraftHandler) GetDraft(c *gin.Context) {
	view, err := h.draftService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- PUT: /api/drafts/:id ---
// UpdateDraft replaces the header fields; items are edited one at a time.
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	var header services.DraftHeader
	if err := c.ShouldBindJSON(&header); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	view, err := h.draftService.UpdateHeader(c.Param("id"), header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- POST: /api/drafts/:id/items ---
func (h *DraftHandler) AddItem(c *gin.Context) {
	view, err := h.draftService.AddItem(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- PATCH: /api/drafts/:id/items/:index ---
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	var req ItemEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	view, err := h.draftService.UpdateItem(c.Param("id"), index, req.Field, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- DELETE: /api/drafts/:id/items/:index ---
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	view, err := h.draftService.RemoveItem(c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- POST: /api/drafts/:id/submit ---
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	view, err := h.draftService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// --- DELETE: /api/drafts/:id ---
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.draftService.Discard(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}
