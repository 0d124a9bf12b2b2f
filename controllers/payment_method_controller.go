package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/utils"
)

type PaymentMethodController struct{}

func NewPaymentMethodController() *PaymentMethodController { return &PaymentMethodController{} }

// GET /payment-methods?enabled=true
func (h *PaymentMethodController) List(c *gin.Context) {
	reg := utils.CurrentSession(c).PaymentMethods
	if c.Query("enabled") == "true" {
		resp.OK(c, reg.Enabled())
		return
	}
	resp.OK(c, reg.Methods())
}

// POST /payment-methods/reload
func (h *PaymentMethodController) Reload(c *gin.Context) {
	reg := utils.CurrentSession(c).PaymentMethods
	src := reg.Load(c.Request.Context())
	resp.OK(c, gin.H{"source": src, "methods": reg.Methods()})
}

// POST /payment-methods
func (h *PaymentMethodController) Create(c *gin.Context) {
	var in services.CustomMethodIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, out, err := utils.CurrentSession(c).PaymentMethods.CreateCustom(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusCreated, m, out.Degraded, out.Warning)
}

// PATCH /payment-methods/:id/toggle
func (h *PaymentMethodController) Toggle(c *gin.Context) {
	m, out, err := utils.CurrentSession(c).PaymentMethods.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusOK, m, out.Degraded, out.Warning)
}

// PUT /payment-methods/:id/config
func (h *PaymentMethodController) UpdateConfig(c *gin.Context) {
	var in services.ConfigUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "fee must be a non-negative number: "+err.Error())
		return
	}
	if img := in.Config["qrImage"]; img != "" {
		if _, _, err := utils.DecodeImage(img); err != nil {
			resp.BadRequest(c, "qrImage: "+err.Error())
			return
		}
	}

	m, out, err := utils.CurrentSession(c).PaymentMethods.UpdateConfig(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusOK, m, out.Degraded, out.Warning)
}

// DELETE /payment-methods/:id?confirm=true
func (h *PaymentMethodController) Delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		resp.BadRequest(c, "deleting a payment method must be confirmed (?confirm=true)")
		return
	}
	id := c.Param("id")
	out, err := utils.CurrentSession(c).PaymentMethods.DeleteCustom(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusOK, gin.H{"id": id}, out.Degraded, out.Warning)
}

// GET /payment-methods/:id/fee?total=
func (h *PaymentMethodController) Fee(c *gin.Context) {
	total, err := decimal.NewFromString(c.Query("total"))
	if err != nil || total.IsNegative() {
		resp.BadRequest(c, "total must be a non-negative number")
		return
	}
	fee, err := utils.CurrentSession(c).PaymentMethods.FeeFor(c.Param("id"), total)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"total": total, "fee": fee})
}
