package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController { return &CatalogController{} }

// GET /catalog/products?category=
func (h *CatalogController) Products(c *gin.Context) {
	selected := c.DefaultQuery("category", entity.AllCategoryID)
	resp.OK(c, utils.CurrentSession(c).Catalog.Visible(selected))
}

// GET /catalog/categories
func (h *CatalogController) Categories(c *gin.Context) {
	resp.OK(c, utils.CurrentSession(c).Catalog.Categories())
}

// GET /catalog/customers
func (h *CatalogController) Customers(c *gin.Context) {
	resp.OK(c, utils.CurrentSession(c).Catalog.Customers())
}

// POST /catalog/reload
func (h *CatalogController) Reload(c *gin.Context) {
	cat := utils.CurrentSession(c).Catalog
	if err := cat.Load(c.Request.Context()); err != nil {
		resp.BadGateway(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"products": len(cat.Products()), "categories": cat.Categories()})
}
