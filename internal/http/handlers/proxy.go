package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plasmahub/plasma-builder-backend/internal/http/response"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/store"
)

// ProxyHandler is the HTTP surface of the client-proxy persistence shim:
// plain (name, version)-keyed blobs, no interpretation of the payload beyond
// requiring valid JSON.
type ProxyHandler struct {
	log   *logger.Logger
	blobs store.Store
}

func NewProxyHandler(baseLog *logger.Logger, blobs store.Store) *ProxyHandler {
	return &ProxyHandler{
		log:   baseLog.With("handler", "ProxyHandler"),
		blobs: blobs,
	}
}

func (h *ProxyHandler) Save(c *gin.Context) {
	blob, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "read_body_failed", err)
		return
	}
	name := c.Param("name")
	version := c.Param("version")
	if err := h.blobs.Save(c.Request.Context(), name, version, blob); err != nil {
		response.RespondError(c, http.StatusBadRequest, "save_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"name": name, "version": version})
}

func (h *ProxyHandler) Load(c *gin.Context) {
	name := c.Param("name")
	version := c.Param("version")
	blob, found, err := h.blobs.Load(c.Request.Context(), name, version)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "load_failed", err)
		return
	}
	if !found {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	c.Data(http.StatusOK, "application/json", blob)
}

func (h *ProxyHandler) List(c *gin.Context) {
	keys, err := h.blobs.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, keys)
}

func (h *ProxyHandler) Remove(c *gin.Context) {
	name := c.Param("name")
	version := c.Param("version")
	if err := h.blobs.Remove(c.Request.Context(), name, version); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "remove_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
