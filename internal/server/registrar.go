package server

import "github.com/gin-gonic/gin"

// Registrar is the common interface all route registrars implement.
// public skips authentication; authed runs behind the JWT middleware.
type Registrar interface {
	Register(public, authed *gin.RouterGroup)
}
