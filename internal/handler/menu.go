package handler

import (
	"net/http"

	"inventario/internal/dto"

	"github.com/gin-gonic/gin"
)

// menu lists one entry per workflow of the presentation surface.
var menu = []dto.MenuEntry{
	{Key: "inventory", Label: "Ver inventario", Method: http.MethodGet, Path: "/v1/stock"},
	{Key: "add_product", Label: "Agregar producto", Method: http.MethodPost, Path: "/v1/stock"},
	{Key: "register_sale", Label: "Registrar venta", Method: http.MethodPost, Path: "/v1/carts"},
	{Key: "sales", Label: "Historial de ventas", Method: http.MethodGet, Path: "/v1/sales"},
	{Key: "restock", Label: "Registrar reposicion", Method: http.MethodPost, Path: "/v1/restocks"},
	{Key: "receipt", Label: "Generar recibo", Method: http.MethodPost, Path: "/v1/receipts"},
}

func Menu(c *gin.Context) {
	c.JSON(http.StatusOK, menu)
}
