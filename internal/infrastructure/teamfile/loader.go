// Package teamfile reads team definitions from disk. Any format viper
// understands works; the file extension picks the decoder.
package teamfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"remotework/internal/domain"
	"remotework/internal/domain/schedule"
	"remotework/internal/domain/team"
)

type definition struct {
	Members []memberDefinition `mapstructure:"members"`
}

type memberDefinition struct {
	Name          string     `mapstructure:"name"`
	WorkIntervals [][]string `mapstructure:"work_intervals"`
}

type Loader struct {
	path string
	log  *zap.Logger
}

func NewLoader(path string, log *zap.Logger) *Loader {
	return &Loader{path: path, log: log}
}

// Load reads and validates the whole file. A single bad time string fails the
// load; no partial team is returned.
func (l *Loader) Load(ctx context.Context) (*team.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(l.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read team file %s: %w", l.path, err)
	}

	var def definition
	if err := v.Unmarshal(&def); err != nil {
		return nil, &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    fmt.Sprintf("decode team file %s: %v", l.path, err),
			HTTPStatus: 400,
		}
	}

	t, err := build(def.Members)
	if err != nil {
		return nil, err
	}

	l.log.Debug("team file loaded", zap.String("path", l.path), zap.Int("members", t.Len()))
	return t, nil
}

// Watch calls onChange whenever the file is rewritten, until ctx is done.
func (l *Loader) Watch(ctx context.Context, onChange func(ctx context.Context)) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		l.log.Info("team file changed", zap.String("path", e.Name), zap.String("op", e.Op.String()))
		onChange(ctx)
	})
	v.WatchConfig()
}

func build(members []memberDefinition) (*team.Team, error) {
	t := team.New()
	for _, md := range members {
		m, err := buildMember(md)
		if err != nil {
			return nil, err
		}
		t.AddMember(m)
	}
	return t, nil
}

func buildMember(md memberDefinition) (team.Member, error) {
	intervals := make([]schedule.TimeInterval, 0, len(md.WorkIntervals))
	for i, pair := range md.WorkIntervals {
		if len(pair) != 2 {
			return team.Member{}, domain.InvalidTimeValue(
				"member %q interval %d: expected [start, end], got %d values", md.Name, i, len(pair))
		}
		iv, err := schedule.ParseTimeInterval(pair[0], pair[1])
		if err != nil {
			var de *domain.DomainError
			if errors.As(err, &de) {
				return team.Member{}, domain.InvalidTimeValue("member %q interval %d: %s", md.Name, i, de.Message)
			}
			return team.Member{}, err
		}
		intervals = append(intervals, iv)
	}
	return team.NewMember(md.Name, intervals), nil
}

// MemberFromStrings builds a single member from "HH:MM:SS" pairs.
func MemberFromStrings(name string, pairs [][]string) (team.Member, error) {
	return buildMember(memberDefinition{Name: name, WorkIntervals: pairs})
}
