package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// emptyCollection answers list-shaped endpoints when the upstream
// service behind the gateway is unreachable. Always 200, always [].
func emptyCollection(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, []any{})
}

func registerFallbackRoutes(router *gin.Engine) {
	fallback := router.Group("/fallback")
	{
		fallback.GET("", emptyCollection)
		fallback.GET("/api/products", emptyCollection)
		fallback.GET("/api/orders", emptyCollection)
	}
}
