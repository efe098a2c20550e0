package router

import (
	"FrameVault/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter(h *handler.Handler, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.POST("/token", h.Login)
	r.POST("/signup", h.Signup)

	auth := r.Group("")
	auth.Use(authMW)
	{
		auth.POST("/frames/", h.UploadFrames)
		auth.GET("/frames/", h.ListFrames)
		auth.DELETE("/frames/", h.DeleteFrames)
		auth.GET("/users/me/", h.Me)
	}
	return r
}
