package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/plasmahub/plasma-builder-backend/internal/http/response"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/services"
)

type DesignSystemHandler struct {
	log     *logger.Logger
	service services.DesignSystemService
}

func NewDesignSystemHandler(baseLog *logger.Logger, service services.DesignSystemService) *DesignSystemHandler {
	return &DesignSystemHandler{
		log:     baseLog.With("handler", "DesignSystemHandler"),
		service: service,
	}
}

func (h *DesignSystemHandler) List(c *gin.Context) {
	systems, err := h.service.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "design_systems_list_failed", err)
		return
	}
	response.RespondOK(c, systems)
}

// Export streams the wire-format export of one design system.
func (h *DesignSystemHandler) Export(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	blob, err := h.service.Export(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "design_system_export_failed", err)
		return
	}
	c.Data(http.StatusOK, "application/json", blob)
}

// GetClientPayload returns the editor-side representation, with transform
// diagnostics attached.
func (h *DesignSystemHandler) GetClientPayload(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payload, rep, err := h.service.GetClientPayload(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "design_system_transform_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"payload":  payload,
		"warnings": rep.Warnings,
		"dataLoss": rep.DataLoss,
	})
}

// Import persists a client payload back into relational rows.
func (h *DesignSystemHandler) Import(c *gin.Context) {
	var payload meta.ClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_client_payload", err)
		return
	}
	id, rep, err := h.service.ImportClientPayload(c.Request.Context(), payload)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "design_system_import_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"id":       id,
		"warnings": rep.Warnings,
		"dataLoss": rep.DataLoss,
	})
}

func (h *DesignSystemHandler) InvalidateExport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.service.InvalidateExport(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return uint(id), true
}
