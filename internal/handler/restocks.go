package handler

import (
	"net/http"

	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type RestocksHandler struct{ svc service.RestockService }

func NewRestocksHandler(svc service.RestockService) *RestocksHandler {
	return &RestocksHandler{svc: svc}
}

func (h *RestocksHandler) Registrar(c *gin.Context) {
	var req dto.RegisterRestockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RestocksHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListRestocks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RestocksHandler) ListarProveedores(c *gin.Context) {
	resp, err := h.svc.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
