package carpool

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/server"
)

// Registrar ties the carpool service into the REST router.
type Registrar struct {
	svc *Service
}

// NewRegistrar creates a new Registrar for the carpool endpoints.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{svc: NewService(appCtx)}
}

func (r *Registrar) Register(public, authed *gin.RouterGroup) {
	authed.GET("/carpool-requests", r.list)
	authed.POST("/carpool-requests", r.create)
	authed.PUT("/carpool-requests/:requestId", r.update)
	authed.POST("/carpool-requests/:requestId/respond", r.respond)
	authed.DELETE("/carpool-requests/:requestId", r.remove)
}

func (r *Registrar) list(c *gin.Context) {
	views, err := r.svc.List(c.Request.Context())
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (r *Registrar) create(c *gin.Context) {
	var in PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	request, err := r.svc.Create(c.Request.Context(), server.MustUserID(c), in)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Carpool request created successfully", "request": request})
}

func (r *Registrar) update(c *gin.Context) {
	var in PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	err := r.svc.Update(c.Request.Context(), c.Param("requestId"), server.MustUserID(c), in)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request updated successfully"})
}

type respondReq struct {
	Message string `json:"message"`
}

func (r *Registrar) respond(c *gin.Context) {
	var req respondReq
	_ = c.ShouldBindJSON(&req) // empty body means the default message

	response, err := r.svc.Respond(c.Request.Context(), c.Param("requestId"), server.MustUserID(c), req.Message)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Responded successfully", "response": response})
}

func (r *Registrar) remove(c *gin.Context) {
	err := r.svc.Delete(c.Request.Context(), c.Param("requestId"), server.MustUserID(c))
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully"})
}
