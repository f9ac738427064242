package handler

import (
	"net/http"

	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	svc      service.SaleService
	receipts service.ReceiptService
}

func NewSalesHandler(svc service.SaleService, receipts service.ReceiptService) *SalesHandler {
	return &SalesHandler{svc: svc, receipts: receipts}
}

// Listar returns the full sale history, voided sales included.
func (h *SalesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) Anular(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.VoidSale(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SalesHandler) Recibo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.receipts.ForSale(c.Request.Context(), id, c.Query("customer"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="recibo.pdf"`)
	c.Data(http.StatusOK, "application/pdf", b)
}
