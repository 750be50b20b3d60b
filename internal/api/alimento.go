package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alimentos/backend/internal/middleware"
	"github.com/pageza/alimentos/backend/internal/models"
	"github.com/pageza/alimentos/backend/internal/service"
)

// AlimentoHandler serves the /alimentos routes
type AlimentoHandler struct {
	service service.IAlimentoService
	log     logrus.FieldLogger
}

// NewAlimentoHandler creates a new alimento handler
func NewAlimentoHandler(svc service.IAlimentoService, log logrus.FieldLogger) *AlimentoHandler {
	useJSONFieldNames()
	return &AlimentoHandler{
		service: svc,
		log:     log,
	}
}

// RegisterRoutes mounts the handlers on router
func (h *AlimentoHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Index)
	router.GET("/alimentos", h.ListAlimentos)
	router.GET("/alimentos/tipo/:tipo", h.ListAlimentosByTipo)
	router.POST("/alimentos", h.CreateAlimento)
	router.DELETE("/alimentos/:categoria", h.DeleteAlimentosByCategoria)
}

// Index handles GET /
func (h *AlimentoHandler) Index(c *gin.Context) {
	h.log.Info("Accessed / route")
	c.String(http.StatusOK, "Hello World")
}

// ListAlimentos handles GET /alimentos
func (h *AlimentoHandler) ListAlimentos(c *gin.Context) {
	h.log.Info("Accessed /alimentos route")

	alimentos, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, alimentos)
}

// ListAlimentosByTipo handles GET /alimentos/tipo/:tipo
func (h *AlimentoHandler) ListAlimentosByTipo(c *gin.Context) {
	tipo := c.Param("tipo")
	h.log.Infof("Accessed /alimentos/tipo/%s route", tipo)

	alimentos, err := h.service.ListByTipo(c.Request.Context(), tipo)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(alimentos) == 0 {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{
			Message: fmt.Sprintf("No food found for type '%s'.", tipo),
		})
		return
	}

	c.JSON(http.StatusOK, alimentos)
}

// CreateAlimento handles POST /alimentos
func (h *AlimentoHandler) CreateAlimento(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.CreateAlimentoRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: describeBindError(err)})
		return
	}

	// the body as received, unknown keys included
	h.log.Infof("Creating new alimento: %s", bytes.TrimSpace(raw))

	if err := h.service.Create(c.Request.Context(), req.ToAlimento()); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusCreated)
}

// DeleteAlimentosByCategoria handles DELETE /alimentos/:categoria.
// Zero matching rows is still a success.
func (h *AlimentoHandler) DeleteAlimentosByCategoria(c *gin.Context) {
	categoria := c.Param("categoria")
	h.log.Infof("Deleting alimentos with categoria: %s", categoria)

	if _, err := h.service.DeleteByCategoria(c.Request.Context(), categoria); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
