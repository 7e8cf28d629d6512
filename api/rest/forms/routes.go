package forms

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/formboard/stats"
	"codeberg.org/formboard/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, formStore FormStore, engine *stats.Engine) {
	// browsing is open; an authenticated viewer additionally gets
	// is_completed and the completed status
	router.GET("/forms", auth.OptionalAuthMiddleware(), ListFormsHandler(engine))
	router.GET("/forms/:id", auth.OptionalAuthMiddleware(), GetFormHandler(formStore, engine))

	authed := router.Group("/forms")
	authed.Use(auth.AuthMiddleware())
	{
		authed.POST("", CreateFormHandler(formStore))
		authed.PUT("/:id", UpdateFormHandler(formStore))
		authed.DELETE("/:id", DeleteFormHandler(formStore))
		authed.POST("/:id/complete", CompleteFormHandler(formStore, engine.Store()))
		authed.GET("/:id/completions", ListCompletionsHandler(formStore, engine.Store()))
	}
}
