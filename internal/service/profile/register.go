package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/server"
)

// Registrar ties the profile service into the REST router.
type Registrar struct {
	svc *Service
}

// NewRegistrar creates a new Registrar for the profile endpoints.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{svc: NewService(appCtx)}
}

func (r *Registrar) Register(public, authed *gin.RouterGroup) {
	authed.GET("/users/:userId", r.get)
	authed.POST("/users/:userId", r.save)
}

func (r *Registrar) get(c *gin.Context) {
	p, err := r.svc.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (r *Registrar) save(c *gin.Context) {
	userID := c.Param("userId")
	if userID != server.MustUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": "Cannot update another user's profile"})
		return
	}

	var in SaveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := r.svc.Save(c.Request.Context(), userID, in)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": p})
}
