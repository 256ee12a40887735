package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remotework/internal/app/dto"
	"remotework/internal/domain/schedule"
)

// TimeConvert converts ?time=HH:MM:SS (UTC, default now) to ?offset.
func (h *Handler) TimeConvert(c *gin.Context) {
	t, ok := h.queryTimeOfDay(c, "time")
	if !ok {
		return
	}
	off, ok := h.queryOffset(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		UTC:    t.String(),
		Offset: off.String(),
		Local:  schedule.ConvertToOffset(t, off).String(),
	})
}

func (h *Handler) queryTimeOfDay(c *gin.Context, key string) (schedule.TimeOfDay, bool) {
	raw := c.Query(key)
	if raw == "" {
		return schedule.FromTime(h.Now()), true
	}
	t, err := schedule.ParseTimeOfDay(raw)
	if err != nil {
		h.writeError(c, err)
		return schedule.TimeOfDay{}, false
	}
	return t, true
}

func (h *Handler) queryOffset(c *gin.Context) (schedule.Offset, bool) {
	raw, ok := c.GetQuery("offset")
	if !ok {
		return h.DisplayOffset, true
	}
	// an unescaped "+" in a query string decodes to a space
	if strings.HasPrefix(raw, " ") {
		raw = "+" + strings.TrimLeft(raw, " ")
	}
	off, err := schedule.ParseOffset(raw)
	if err != nil {
		h.writeError(c, err)
		return schedule.Offset{}, false
	}
	return off, true
}
