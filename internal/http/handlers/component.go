package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plasmahub/plasma-builder-backend/internal/http/response"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/services"
)

type ComponentHandler struct {
	log     *logger.Logger
	service services.ComponentService
}

func NewComponentHandler(baseLog *logger.Logger, service services.ComponentService) *ComponentHandler {
	return &ComponentHandler{
		log:     baseLog.With("handler", "ComponentHandler"),
		service: service,
	}
}

func (h *ComponentHandler) List(c *gin.Context) {
	components, err := h.service.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "components_list_failed", err)
		return
	}
	response.RespondOK(c, components)
}

// GetMeta returns the editor Meta of one component within a design system.
func (h *ComponentHandler) GetMeta(c *gin.Context) {
	designSystemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	componentID, ok := pathID(c, "componentId")
	if !ok {
		return
	}
	cd, rep, err := h.service.GetMeta(c.Request.Context(), designSystemID, componentID)
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "component_meta_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"meta":     cd,
		"warnings": rep.Warnings,
	})
}
