package domain

import "context"

const (
	EventTeamLoaded      = "team.loaded"
	EventTeamMemberAdded = "team.member_added"
	EventTeamReloadFail  = "team.reload_failed"
)

type Event struct {
	Type    string
	Payload map[string]any
}

type EventBus interface {
	Publish(ctx context.Context, e Event)
}
