package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/server"
)

// Registrar ties the auth service into the REST router.
type Registrar struct {
	svc *Service
}

// NewRegistrar creates a new Registrar for the auth endpoints.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{svc: NewService(appCtx)}
}

// Register mounts the auth routes. Signup and signin are public; the
// session endpoints require a token.
func (r *Registrar) Register(public, authed *gin.RouterGroup) {
	public.POST("/auth/signup", r.signUp)
	public.POST("/auth/signin", r.signIn)
	authed.GET("/auth/session", r.session)
	authed.POST("/auth/signout", r.signOut)
}

type signUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *Registrar) signUp(c *gin.Context) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	session, err := r.svc.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  gin.H{"id": session.UserID, "email": session.Email, "name": session.Name},
		"token": session.Token,
	})
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *Registrar) signIn(c *gin.Context) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	session, err := r.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"id": session.UserID, "email": session.Email, "name": session.Name},
		"token": session.Token,
	})
}

func (r *Registrar) session(c *gin.Context) {
	user, err := r.svc.Session(c.Request.Context(), server.MustUserID(c))
	if err != nil {
		status, msg := svcErr.Status(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

// signOut exists for symmetry; the session lives in the client-held
// AuthContext, so discarding the token is the logout.
func (r *Registrar) signOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
