package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"remotework/internal/app/dto"
	"remotework/internal/domain/schedule"
	"remotework/internal/domain/team"
	"remotework/internal/infrastructure/teamfile"
)

func (h *Handler) TeamGet(c *gin.Context) {
	members := h.TeamSvc.Team().Members()

	resp := dto.Team{Members: make([]dto.Member, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toMemberDTO(m))
	}
	c.JSON(http.StatusOK, resp)
}

// TeamOnline answers who is online at ?at=HH:MM:SS (UTC), defaulting to now.
func (h *Handler) TeamOnline(c *gin.Context) {
	at, ok := h.queryTimeOfDay(c, "at")
	if !ok {
		return
	}

	online := h.TeamSvc.OnlineAt(c.Request.Context(), at)
	c.JSON(http.StatusOK, dto.OnlineResponse{
		At:      at.String(),
		Members: team.Names(online),
	})
}

func (h *Handler) TeamAddMember(c *gin.Context) {
	var body dto.AddMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON: name and work_intervals are required")
		return
	}

	m, err := teamfile.MemberFromStrings(body.Name, body.WorkIntervals)
	if err != nil {
		h.writeError(c, err)
		return
	}

	next := h.TeamSvc.AddMember(c.Request.Context(), m)
	h.Log.Info("member added", zap.String("name", m.Name()), zap.Int("team_size", next.Len()))

	resp := struct {
		Member dto.Member `json:"member"`
	}{
		Member: toMemberDTO(m),
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) TeamReload(c *gin.Context) {
	t, err := h.TeamSvc.Reload(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": t.Len()})
}

// TeamSchedule returns every member's work blocks in the display offset,
// split at midnight, plus the current display time.
func (h *Handler) TeamSchedule(c *gin.Context) {
	off, ok := h.queryOffset(c)
	if !ok {
		return
	}

	nowUTC := schedule.FromTime(h.Now())
	members := h.TeamSvc.Team().Members()

	resp := dto.ScheduleResponse{
		Offset:  off.String(),
		Now:     schedule.ConvertToOffset(nowUTC, off).String(),
		Members: make([]dto.MemberSchedule, 0, len(members)),
	}
	for _, m := range members {
		ms := dto.MemberSchedule{
			Name:   m.Name(),
			Online: m.IsOnline(nowUTC),
			Blocks: []dto.Block{},
		}
		for _, iv := range m.WorkIntervals() {
			for _, b := range schedule.DisplayBlocks(iv, off) {
				ms.Blocks = append(ms.Blocks, dto.Block{
					Start: schedule.FormatSeconds(b.StartSec),
					End:   schedule.FormatSeconds(b.EndSec),
				})
			}
		}
		resp.Members = append(resp.Members, ms)
	}
	c.JSON(http.StatusOK, resp)
}

func toMemberDTO(m team.Member) dto.Member {
	ivs := m.WorkIntervals()
	out := dto.Member{
		Name:          m.Name(),
		WorkIntervals: make([]dto.Interval, 0, len(ivs)),
	}
	for _, iv := range ivs {
		out.WorkIntervals = append(out.WorkIntervals, dto.Interval{iv.Start().String(), iv.End().String()})
	}
	return out
}
