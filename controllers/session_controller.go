package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/utils"
)

type SessionController struct {
	Sessions *services.SessionManager
	Secret   string
	TTL      time.Duration
}

func NewSessionController(m *services.SessionManager, secret string, ttl time.Duration) *SessionController {
	return &SessionController{Sessions: m, Secret: secret, TTL: ttl}
}

type loginReq struct {
	StaffID string `json:"staffId" binding:"required"`
}

// POST /auth/login
func (h *SessionController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	s, err := h.Sessions.Open(c.Request.Context(), req.StaffID)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := utils.GenerateToken(s.ID, s.StaffID, h.Secret, h.TTL)
	if err != nil {
		_ = h.Sessions.Close(s.ID)
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "session": s})
}

// POST /auth/logout
func (h *SessionController) Logout(c *gin.Context) {
	s := utils.CurrentSession(c)
	if err := h.Sessions.Close(s.ID); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"sessionId": s.ID})
}

// GET /auth/me
func (h *SessionController) Me(c *gin.Context) {
	resp.OK(c, utils.CurrentSession(c))
}
