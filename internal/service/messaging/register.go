package messaging

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/server"
)

// Registrar ties the messaging service into the REST router.
type Registrar struct {
	svc *Service
}

// NewRegistrar creates a new Registrar for the messaging endpoints.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{svc: NewService(appCtx)}
}

func (r *Registrar) Register(public, authed *gin.RouterGroup) {
	authed.GET("/conversations", r.listConversations)
	authed.GET("/conversations/:conversationId/messages", r.listMessages)
	authed.POST("/conversations/:conversationId/messages", r.send)
	authed.PUT("/conversations/:conversationId", r.setStatus)
}

func (r *Registrar) listConversations(c *gin.Context) {
	views, err := r.svc.ListConversations(c.Request.Context(), server.MustUserID(c))
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (r *Registrar) listMessages(c *gin.Context) {
	messages, err := r.svc.ListMessages(c.Request.Context(), server.MustUserID(c), c.Param("conversationId"))
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, messages)
}

type sendReq struct {
	Content     string `json:"content"`
	OtherUserID string `json:"otherUserId"`
}

func (r *Registrar) send(c *gin.Context) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
		return
	}

	message, err := r.svc.SendToConversation(
		c.Request.Context(),
		server.MustUserID(c),
		c.Param("conversationId"),
		req.OtherUserID,
		req.Content,
	)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "data": message})
}

type statusReq struct {
	Status string `json:"status"`
}

func (r *Registrar) setStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	err := r.svc.SetStatus(c.Request.Context(), server.MustUserID(c), c.Param("conversationId"), req.Status)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation updated successfully"})
}
