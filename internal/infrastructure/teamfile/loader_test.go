package teamfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"remotework/internal/domain"
	"remotework/internal/domain/schedule"
	"remotework/internal/domain/team"
	"remotework/internal/infrastructure/teamfile"
)

const exampleTeam = `{
  "members": [
    {"name": "Alice", "work_intervals": [["09:00:00", "11:00:00"], ["13:00:00", "18:00:00"]]},
    {"name": "Bob", "work_intervals": [["16:00:00", "23:30:00"]]},
    {"name": "Carl", "work_intervals": [["22:00:00", "06:00:00"]]}
  ]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func at(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestLoader_LoadJSON(t *testing.T) {
	path := writeFile(t, "team.json", exampleTeam)

	tm, err := teamfile.NewLoader(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, tm.Len())

	assert.Equal(t, []string{"Alice", "Bob", "Carl"}, team.Names(tm.Members()))
	assert.Equal(t, []string{"Alice"}, team.Names(tm.MembersOnlineAt(at(t, "15:00:00"))))
	assert.Equal(t, []string{"Alice", "Bob"}, team.Names(tm.MembersOnlineAt(at(t, "17:00:00"))))
	assert.Equal(t, []string{"Carl"}, team.Names(tm.MembersOnlineAt(at(t, "05:59:59"))))
}

func TestLoader_LoadYAML(t *testing.T) {
	path := writeFile(t, "team.yaml", `
members:
  - name: Dana
    work_intervals:
      - ["08:00:00", "12:00:00"]
`)

	tm, err := teamfile.NewLoader(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dana"}, team.Names(tm.MembersOnlineAt(at(t, "09:30:00"))))
}

func TestLoader_InvalidTimeValue(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"hour out of range", `{"members":[{"name":"A","work_intervals":[["25:00:00","11:00:00"]]}]}`},
		{"unparseable", `{"members":[{"name":"A","work_intervals":[["nine","11:00:00"]]}]}`},
		{"single value", `{"members":[{"name":"A","work_intervals":[["09:00:00"]]}]}`},
		{"equal ends", `{"members":[{"name":"A","work_intervals":[["09:00:00","09:00:00"]]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "team.json", tt.body)

			tm, err := teamfile.NewLoader(path, zap.NewNop()).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, tm)

			var de *domain.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, domain.ErrorCodeInvalidTimeValue, de.Code)
			assert.Contains(t, de.Message, `member "A" interval 0`)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := teamfile.NewLoader(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop()).Load(context.Background())
	require.Error(t, err)

	var de *domain.DomainError
	assert.False(t, errors.As(err, &de))
}

func TestLoader_CanceledContext(t *testing.T) {
	path := writeFile(t, "team.json", exampleTeam)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := teamfile.NewLoader(path, zap.NewNop()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemberFromStrings(t *testing.T) {
	m, err := teamfile.MemberFromStrings("Eve", [][]string{{"22:00:00", "02:00:00"}})
	require.NoError(t, err)
	assert.Equal(t, "Eve", m.Name())
	assert.True(t, m.IsOnline(at(t, "01:00:00")))

	_, err = teamfile.MemberFromStrings("Eve", [][]string{{"22:00:00", "02:00"}})
	require.Error(t, err)
}

func TestLoader_WatchTriggersReload(t *testing.T) {
	path := writeFile(t, "team.json", exampleTeam)
	loader := teamfile.NewLoader(path, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	loader.Watch(ctx, func(context.Context) { changed <- struct{}{} })

	// give the watcher a moment to register before rewriting
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"members":[]}`), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatalf("no change notification")
	}
}
