// SPDX-License-Identifier: MIT

package level_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monkeypath/constrained"
	"github.com/katalvlaran/monkeypath/core"
	"github.com/katalvlaran/monkeypath/level"
	"github.com/katalvlaran/monkeypath/paths"
)

const tinyDoc = `
levels:
  - id: 7
    name: Tiny
    time_limit: 5
    start: A
    goal: B
    nodes:
      - {id: A, label: A, x: 0, y: 0, start: true}
      - {id: B, label: B, x: 10, y: 10, goal: true}
    edges:
      - {from: A, to: B, cost: 3, time: 2}
`

func TestBuiltin_Shape(t *testing.T) {
	ls := level.Builtin()
	require.Len(t, ls, 4)

	wantNodes := []int{4, 6, 8, 10}
	wantEdges := []int{5, 9, 11, 15}
	for i, l := range ls {
		assert.Equal(t, i+1, l.ID)
		assert.Len(t, l.Nodes, wantNodes[i], l.Name)
		assert.Len(t, l.Edges, wantEdges[i], l.Name)
		assert.NoError(t, level.Validate(l))
		assert.NoError(t, level.Solvable(l))

		start, ok := l.Node(l.Start)
		require.True(t, ok)
		assert.True(t, start.Start)
		goal, ok := l.Node(l.Goal)
		require.True(t, ok)
		assert.True(t, goal.Goal)
	}

	first := ls[0]
	assert.Equal(t, "First Swing", first.Name)
	assert.Equal(t, int64(10), first.TimeLimit)
	assert.Equal(t, core.Edge{From: "A", To: "B", Cost: 7, Time: 3}, first.Edges[0])
}

func TestBuiltin_ReturnsCopies(t *testing.T) {
	a := level.Builtin()
	a[0].Edges[0].Cost = 999
	a[0].Nodes[0].Label = "mutated"

	b := level.Builtin()
	assert.Equal(t, int64(7), b[0].Edges[0].Cost)
	assert.Equal(t, "A", b[0].Nodes[0].Label)
}

// The optimum of each built-in level, as the game reports it.
func TestBuiltin_Optima(t *testing.T) {
	want := map[int]struct {
		key  string
		cost int64
		time int64
	}{
		1: {"A→C→B→D", 6, 8},
		2: {"A→E→D→C→F", 6, 9},
		3: {"A→B→C→G→H", 9, 6},
		4: {"A→D→E→H→J", 7, 4},
	}
	for _, l := range level.Builtin() {
		best, ok := paths.OptimalPath(l.Edges, l.Start, l.Goal, l.TimeLimit)
		require.True(t, ok, l.Name)
		assert.Equal(t, want[l.ID].key, best.Key(), l.Name)
		assert.Equal(t, want[l.ID].cost, best.TotalCost, l.Name)
		assert.Equal(t, want[l.ID].time, best.TotalTime, l.Name)
	}
}

func TestParse(t *testing.T) {
	ls, err := level.Parse([]byte(tinyDoc))
	require.NoError(t, err)
	require.Len(t, ls, 1)
	assert.Equal(t, "Tiny", ls[0].Name)

	_, err = level.Parse([]byte("levels: []"))
	assert.ErrorIs(t, err, level.ErrNoLevels)

	_, err = level.Parse([]byte("levels: [oops"))
	assert.Error(t, err)

	dup := tinyDoc + strings.Replace(tinyDoc, "levels:\n", "", 1)
	_, err = level.Parse([]byte(dup))
	assert.ErrorIs(t, err, level.ErrDuplicateID)
}

func TestParse_SortsByID(t *testing.T) {
	doc := tinyDoc + strings.Replace(strings.Replace(tinyDoc, "levels:\n", "", 1), "id: 7", "id: 3", 1)
	ls, err := level.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ls, 2)
	assert.Equal(t, 3, ls[0].ID)
	assert.Equal(t, 7, ls[1].ID)
}

func TestValidate_Problems(t *testing.T) {
	base := level.Builtin()[0]

	l := base
	l.Start = "Z"
	err := level.Validate(l)
	assert.ErrorIs(t, err, level.ErrInvalid)
	assert.ErrorIs(t, err, level.ErrUnknownNode)

	l = base
	l.Edges = append([]core.Edge{{From: "A", To: "Q", Cost: 1, Time: 1}}, base.Edges...)
	assert.ErrorIs(t, level.Validate(l), level.ErrUnknownNode)

	l = base
	l.Edges = append([]core.Edge{{From: "A", To: "B", Cost: -1, Time: 1}}, base.Edges...)
	assert.ErrorIs(t, level.Validate(l), core.ErrNegativeWeight)

	l = base
	l.Nodes = append(append([]level.Node(nil), base.Nodes...), level.Node{ID: "A"})
	assert.ErrorIs(t, level.Validate(l), level.ErrDuplicateID)

	l = base
	l.TimeLimit = -3
	assert.ErrorIs(t, level.Validate(l), level.ErrBadTimeLimit)

	l = base
	l.Nodes = append([]level.Node(nil), base.Nodes[:3]...)
	err = level.Validate(l)
	assert.ErrorIs(t, err, level.ErrUnknownNode)
	assert.Contains(t, err.Error(), `edge endpoint "D"`)
}

func TestSolvable(t *testing.T) {
	l := level.Builtin()[0]
	l.TimeLimit = 4

	assert.NoError(t, level.Validate(l), "a level the storm always wins is still well-formed")
	err := level.Solvable(l)
	assert.ErrorIs(t, err, level.ErrUnsolvable)
	assert.Contains(t, err.Error(), "First Swing")

	l.TimeLimit = -1
	assert.ErrorIs(t, level.Solvable(l), constrained.ErrBadTimeLimit)
}

func TestParse_AcceptsUnsolvable(t *testing.T) {
	doc := strings.Replace(tinyDoc, "time_limit: 5", "time_limit: 1", 1)
	ls, err := level.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ls, 1)

	_, ok := paths.OptimalPath(ls[0].Edges, ls[0].Start, ls[0].Goal, ls[0].TimeLimit)
	assert.False(t, ok)
	assert.ErrorIs(t, level.Solvable(ls[0]), level.ErrUnsolvable)
}

func TestUnlocked(t *testing.T) {
	ls := level.Builtin()

	none := map[int]bool{}
	assert.True(t, level.Unlocked(ls, none, 1), "first level is always open")
	assert.False(t, level.Unlocked(ls, none, 2))
	assert.False(t, level.Unlocked(ls, none, 4))
	assert.False(t, level.Unlocked(ls, none, 99))

	done := map[int]bool{1: true, 2: true}
	assert.True(t, level.Unlocked(ls, done, 2))
	assert.True(t, level.Unlocked(ls, done, 3))
	assert.False(t, level.Unlocked(ls, done, 4))

	// Completing a later level alone does not open the one after an unfinished one.
	assert.False(t, level.Unlocked(ls, map[int]bool{3: true}, 3))
	assert.True(t, level.Unlocked(ls, map[int]bool{3: true}, 4))
}

func TestCheckUnlocked(t *testing.T) {
	ls := level.Builtin()

	assert.NoError(t, level.CheckUnlocked(ls, nil, 1))

	err := level.CheckUnlocked(ls, nil, 3)
	assert.ErrorIs(t, err, level.ErrLocked)
	assert.Contains(t, err.Error(), "after level 2")

	assert.ErrorIs(t, level.CheckUnlocked(ls, nil, 42), level.ErrLocked)
}

func TestByIDAndNext(t *testing.T) {
	ls := level.Builtin()

	l, ok := level.ByID(ls, 3)
	require.True(t, ok)
	assert.Equal(t, "Storm's Coming", l.Name)
	_, ok = level.ByID(ls, 99)
	assert.False(t, ok)

	n, ok := level.Next(ls, 3)
	require.True(t, ok)
	assert.Equal(t, 4, n.ID)
	_, ok = level.Next(ls, 4)
	assert.False(t, ok, "last level has no successor")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyDoc), 0o644))

	ls, err := level.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ls, 1)

	_, err = level.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// replaceFile writes data next to path and renames it into place.
func replaceFile(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(data), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestLoader_ReloadAndWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyDoc), 0o644))

	ldr, err := level.NewLoader(path, nil)
	require.NoError(t, err)
	require.Equal(t, "Tiny", ldr.Levels()[0].Name)

	changed := make(chan string, 16)
	ldr.OnChange(func(ls []level.Level) { changed <- ls[0].Name })

	// Explicit reload
	replaceFile(t, path, strings.Replace(tinyDoc, "Tiny", "Reloaded", 1))
	ls, err := ldr.Reload()
	require.NoError(t, err)
	assert.Equal(t, "Reloaded", ls[0].Name)
	assert.Equal(t, "Reloaded", <-changed)

	stop, err := ldr.Watch()
	require.NoError(t, err)
	defer stop()

	// A broken edit keeps the previous levels.
	replaceFile(t, path, "levels: [")
	// A good edit is picked up.
	replaceFile(t, path, strings.Replace(tinyDoc, "Tiny", "Watched", 1))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case name := <-changed:
			if name == "Watched" {
				assert.Equal(t, "Watched", ldr.Levels()[0].Name)
				return
			}
		case <-deadline:
			t.Fatal("watcher did not pick up the edit")
		}
	}
}

func TestLoader_StopWaitsForReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyDoc), 0o644))

	ldr, err := level.NewLoader(path, nil)
	require.NoError(t, err)

	entered := make(chan struct{}, 16)
	var finished, calls atomic.Int32
	ldr.OnChange(func([]level.Level) {
		calls.Add(1)
		entered <- struct{}{}
		time.Sleep(100 * time.Millisecond)
		finished.Add(1)
	})

	stop, err := ldr.Watch()
	require.NoError(t, err)

	replaceFile(t, path, strings.Replace(tinyDoc, "Tiny", "Slow", 1))
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		stop()
		t.Fatal("watcher did not pick up the edit")
	}

	stop()
	assert.Equal(t, calls.Load(), finished.Load(), "stop returned while a callback was still running")

	// Nothing fires once stop has returned.
	before := calls.Load()
	replaceFile(t, path, strings.Replace(tinyDoc, "Tiny", "Late", 1))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, before, calls.Load())
	assert.Equal(t, "Slow", ldr.Levels()[0].Name)
}

func TestNewLoader_MissingFile(t *testing.T) {
	_, err := level.NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
