package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"remotework/internal/domain/schedule"
	"remotework/internal/domain/team"
)

type Handler struct {
	TeamSvc       team.Service
	DisplayOffset schedule.Offset
	Now           func() time.Time
	Log           *zap.Logger
}

func New(
	teamSvc team.Service,
	displayOffset schedule.Offset,
	now func() time.Time,
	log *zap.Logger,
) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		TeamSvc:       teamSvc,
		DisplayOffset: displayOffset,
		Now:           now,
		Log:           log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
