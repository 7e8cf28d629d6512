package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, userStore UserStore) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(userStore))
		authGroup.POST("/login", LoginHandler(userStore))
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(userStore))

		// OAuth flow; providers respond 400 unless configured at startup
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(userStore))
	}
}
