package team

import "context"

// Source produces a freshly validated team, e.g. from a definition file.
type Source interface {
	Load(ctx context.Context) (*Team, error)
}
