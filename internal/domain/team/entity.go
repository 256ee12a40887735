package team

import "remotework/internal/domain/schedule"

// Member is a person with recurring UTC work windows. The windows form a
// union: order and overlaps carry no meaning.
type Member struct {
	name      string
	intervals []schedule.TimeInterval
}

func NewMember(name string, intervals []schedule.TimeInterval) Member {
	return Member{
		name:      name,
		intervals: append([]schedule.TimeInterval(nil), intervals...),
	}
}

func (m Member) Name() string { return m.name }

func (m Member) WorkIntervals() []schedule.TimeInterval {
	return append([]schedule.TimeInterval(nil), m.intervals...)
}

// IsOnline reports whether any work interval contains t.
func (m Member) IsOnline(t schedule.TimeOfDay) bool {
	for _, iv := range m.intervals {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// Team owns an ordered list of members. Insertion order is the order
// returned by every query.
type Team struct {
	members []Member
}

func New(members ...Member) *Team {
	return &Team{members: append([]Member(nil), members...)}
}

func (t *Team) AddMember(m Member) {
	t.members = append(t.members, m)
}

func (t *Team) Members() []Member {
	return append([]Member(nil), t.members...)
}

func (t *Team) Len() int { return len(t.members) }

// MembersOnlineAt returns the members online at at, in insertion order.
func (t *Team) MembersOnlineAt(at schedule.TimeOfDay) []Member {
	online := make([]Member, 0, len(t.members))
	for _, m := range t.members {
		if m.IsOnline(at) {
			online = append(online, m)
		}
	}
	return online
}

// Clone returns a team with its own member slice, safe to append to while
// the original is being read.
func (t *Team) Clone() *Team {
	return New(t.members...)
}

func Names(members []Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name())
	}
	return names
}
