package team

import (
	"context"
	"sync"
	"sync/atomic"

	"remotework/internal/domain"
	"remotework/internal/domain/schedule"
)

// Service publishes immutable team snapshots to concurrent readers. Writers
// never touch a published Team; they build a new one and swap it in.
type Service interface {
	Team() *Team
	OnlineAt(ctx context.Context, at schedule.TimeOfDay) []Member
	Replace(ctx context.Context, t *Team)
	AddMember(ctx context.Context, m Member) *Team
	Reload(ctx context.Context) (*Team, error)
}

type service struct {
	source Source
	events domain.EventBus

	current atomic.Pointer[Team]
	writeMu sync.Mutex
}

// NewService starts with an empty team. source may be nil, in which case
// Reload fails with NOT_FOUND.
func NewService(source Source, events domain.EventBus) Service {
	s := &service{
		source: source,
		events: events,
	}
	s.current.Store(New())
	return s
}

func (s *service) Team() *Team {
	return s.current.Load()
}

func (s *service) OnlineAt(_ context.Context, at schedule.TimeOfDay) []Member {
	return s.current.Load().MembersOnlineAt(at)
}

func (s *service) Replace(ctx context.Context, t *Team) {
	s.writeMu.Lock()
	s.current.Store(t)
	s.writeMu.Unlock()

	s.publish(ctx, domain.Event{
		Type: domain.EventTeamLoaded,
		Payload: map[string]any{
			"members": t.Len(),
		},
	})
}

func (s *service) AddMember(ctx context.Context, m Member) *Team {
	s.writeMu.Lock()
	next := s.current.Load().Clone()
	next.AddMember(m)
	s.current.Store(next)
	s.writeMu.Unlock()

	s.publish(ctx, domain.Event{
		Type: domain.EventTeamMemberAdded,
		Payload: map[string]any{
			"name":      m.Name(),
			"intervals": len(m.intervals),
		},
	})
	return next
}

// Reload replaces the snapshot with a fresh load from the source. On error
// the previous snapshot stays in place.
func (s *service) Reload(ctx context.Context) (*Team, error) {
	if s.source == nil {
		return nil, &domain.DomainError{
			Code:       domain.ErrorCodeNotFound,
			Message:    "no team source configured",
			HTTPStatus: 404,
		}
	}

	t, err := s.source.Load(ctx)
	if err != nil {
		s.publish(ctx, domain.Event{
			Type:    domain.EventTeamReloadFail,
			Payload: map[string]any{"error": err.Error()},
		})
		return nil, err
	}

	s.Replace(ctx, t)
	return t, nil
}

func (s *service) publish(ctx context.Context, e domain.Event) {
	if s.events != nil {
		s.events.Publish(ctx, e)
	}
}
