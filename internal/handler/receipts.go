package handler

import (
	"net/http"

	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceiptsHandler struct{ svc service.ReceiptService }

func NewReceiptsHandler(svc service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc}
}

// Generar renders a manual receipt and streams it back; nothing is stored.
func (h *ReceiptsHandler) Generar(c *gin.Context) {
	var req dto.ManualReceiptRequest
	if !bindAndValidate(c, &req) {
		return
	}
	b, err := h.svc.Manual(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="recibo.pdf"`)
	c.Data(http.StatusOK, "application/pdf", b)
}
