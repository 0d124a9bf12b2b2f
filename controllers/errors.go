package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
)

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidFee),
		errors.Is(err, services.ErrInvalidFeeType),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrInvalidCapacity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrStaffRequired),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrMethodDisabled):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMethodNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDefaultMethodDelete):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrSessionNotFound):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
