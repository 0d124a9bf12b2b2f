package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/utils"
)

type CartController struct{ Checkout *services.CheckoutService }

func NewCartController(s *services.CheckoutService) *CartController {
	return &CartController{Checkout: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, utils.CurrentSession(c).Cart.View())
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	s := utils.CurrentSession(c)
	p, ok := s.Catalog.Product(body.ProductID)
	if !ok {
		writeError(c, services.ErrProductNotFound)
		return
	}
	s.Cart.AddItem(p)
	resp.OK(c, s.Cart.View())
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart := utils.CurrentSession(c).Cart
	cart.UpdateQuantity(c.Param("id"), body.Delta)
	resp.OK(c, cart.View())
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	cart := utils.CurrentSession(c).Cart
	cart.RemoveItem(c.Param("id"))
	resp.OK(c, cart.View())
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	cart := utils.CurrentSession(c).Cart
	cart.Clear()
	resp.OK(c, cart.View())
}

// POST /cart/checkout
func (h *CartController) CheckoutCart(c *gin.Context) {
	var in services.CheckoutIn
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	s := utils.CurrentSession(c)
	res, err := h.Checkout.Checkout(c.Request.Context(), s.Cart, s.PaymentMethods, in)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
			return
		}
		resp.BadGateway(c, "transaction failed, cart kept: "+err.Error())
		return
	}
	resp.Created(c, res)
}

func isDomainError(err error) bool {
	return errors.Is(err, services.ErrCartEmpty) ||
		errors.Is(err, services.ErrMethodNotFound) ||
		errors.Is(err, services.ErrMethodDisabled)
}
