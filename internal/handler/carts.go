package handler

import (
	"errors"
	"net/http"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CartsHandler exposes the sale-entry workflow. Each cart id is one session;
// the handler loads the cart, hands it to the builder and stores it back.
type CartsHandler struct {
	builder service.SaleBuilder
	store   repository.CartStore
}

func NewCartsHandler(builder service.SaleBuilder, store repository.CartStore) *CartsHandler {
	return &CartsHandler{builder: builder, store: store}
}

func (h *CartsHandler) Crear(c *gin.Context) {
	cart := h.builder.NewCart()
	if err := h.store.Save(c.Request.Context(), cart); err != nil {
		respondError(c, apierror.Storage("save cart", err))
		return
	}
	c.JSON(http.StatusCreated, service.CartToResponse(cart))
}

func (h *CartsHandler) Obtener(c *gin.Context) {
	cart, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.CartToResponse(cart))
}

func (h *CartsHandler) AgregarLinea(c *gin.Context) {
	var req dto.AddLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	unlock, ok := h.lock(c)
	if !ok {
		return
	}
	defer unlock()
	cart, ok := h.load(c)
	if !ok {
		return
	}
	if err := h.builder.AddLine(c.Request.Context(), cart, req.Product, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Save(c.Request.Context(), cart); err != nil {
		respondError(c, apierror.Storage("save cart", err))
		return
	}
	c.JSON(http.StatusOK, service.CartToResponse(cart))
}

// Confirmar commits the cart while holding its lock, so a repeated request
// for the same id finds the cart gone or terminal and writes no second sale.
func (h *CartsHandler) Confirmar(c *gin.Context) {
	unlock, ok := h.lock(c)
	if !ok {
		return
	}
	defer unlock()
	cart, ok := h.load(c)
	if !ok {
		return
	}
	resp, err := h.builder.Commit(c.Request.Context(), cart)
	if err != nil {
		respondError(c, err)
		return
	}
	h.retire(c, cart)
	c.JSON(http.StatusCreated, resp)
}

// retire removes a committed cart from the store. When the delete fails the
// terminal state is stored instead, so a retry is rejected rather than
// committed again.
func (h *CartsHandler) retire(c *gin.Context, cart *model.PendingSale) {
	ctx := c.Request.Context()
	err := h.store.Delete(ctx, cart.ID)
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("cart_id", cart.ID.String()).Msg("delete committed cart failed, storing terminal state")
	if err := h.store.Save(ctx, cart); err != nil {
		log.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("committed cart left in store")
	}
}

func (h *CartsHandler) Descartar(c *gin.Context) {
	unlock, ok := h.lock(c)
	if !ok {
		return
	}
	defer unlock()
	cart, ok := h.load(c)
	if !ok {
		return
	}
	if err := h.builder.Discard(cart); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Delete(c.Request.Context(), cart.ID); err != nil {
		respondError(c, apierror.Storage("delete cart", err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartsHandler) cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartsHandler) lock(c *gin.Context) (func(), bool) {
	id, ok := h.cartID(c)
	if !ok {
		return nil, false
	}
	unlock, err := h.store.Lock(c.Request.Context(), id)
	if errors.Is(err, repository.ErrCartBusy) {
		c.JSON(http.StatusConflict, apierror.New("Venta en proceso, reintente"))
		return nil, false
	}
	if err != nil {
		respondError(c, apierror.Storage("lock cart", err))
		return nil, false
	}
	return unlock, true
}

func (h *CartsHandler) load(c *gin.Context) (*model.PendingSale, bool) {
	id, ok := h.cartID(c)
	if !ok {
		return nil, false
	}
	cart, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrCartNotFound) {
		respondError(c, apierror.NotFound("cart", id))
		return nil, false
	}
	if err != nil {
		respondError(c, apierror.Storage("load cart", err))
		return nil, false
	}
	return cart, true
}
