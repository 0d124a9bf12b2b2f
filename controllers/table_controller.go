package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/utils"
)

type TableController struct{}

func NewTableController() *TableController { return &TableController{} }

// GET /tables?status=&area=
func (h *TableController) List(c *gin.Context) {
	var f services.TableFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if f.Status != "" && !f.Status.Valid() {
		writeError(c, services.ErrInvalidStatus)
		return
	}
	resp.OK(c, utils.CurrentSession(c).Tables.Filter(f))
}

// GET /tables/summary
func (h *TableController) Summary(c *gin.Context) {
	board := utils.CurrentSession(c).Tables
	resp.OK(c, gin.H{"summary": board.Summary(), "areas": board.Areas()})
}

// POST /tables/reload
func (h *TableController) Reload(c *gin.Context) {
	board := utils.CurrentSession(c).Tables
	if err := board.Load(c.Request.Context()); err != nil {
		resp.BadGateway(c, err.Error())
		return
	}
	resp.OK(c, board.Filter(services.TableFilter{}))
}

// POST /tables
func (h *TableController) Create(c *gin.Context) {
	var f services.TableFields
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, out, err := utils.CurrentSession(c).Tables.Create(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusCreated, t, out.Degraded, out.Warning)
}

// PUT /tables/:id
func (h *TableController) Update(c *gin.Context) {
	var f services.TableFields
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, out, err := utils.CurrentSession(c).Tables.Update(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusOK, t, out.Degraded, out.Warning)
}

// DELETE /tables/:id
func (h *TableController) Delete(c *gin.Context) {
	id := c.Param("id")
	out, err := utils.CurrentSession(c).Tables.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusOK, gin.H{"id": id}, out.Degraded, out.Warning)
}

// PATCH /tables/:id/status
func (h *TableController) SetStatus(c *gin.Context) {
	var body struct {
		Status entity.TableStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, out, err := utils.CurrentSession(c).Tables.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Saved(c, http.StatusOK, t, out.Degraded, out.Warning)
}
