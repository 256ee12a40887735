package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"remotework/internal/app/http/handler"
	"remotework/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)

	r.GET("/health", h.Health)

	r.GET("/team", h.TeamGet)
	r.GET("/team/online", h.TeamOnline)
	r.GET("/team/schedule", h.TeamSchedule)
	r.POST("/team/members", h.TeamAddMember)
	r.POST("/team/reload", h.TeamReload)

	r.GET("/time/convert", h.TimeConvert)

	return r
}
