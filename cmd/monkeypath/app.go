// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/monkeypath/game"
	"github.com/katalvlaran/monkeypath/internal/config"
	"github.com/katalvlaran/monkeypath/level"
	"github.com/katalvlaran/monkeypath/metrics"
	"github.com/katalvlaran/monkeypath/paths"
	"github.com/katalvlaran/monkeypath/progress"
	"github.com/katalvlaran/monkeypath/teaching"
)

var errUsage = errors.New("usage: monkeypath [-levels file] [-db dsn] [-json] [-metrics] levels|solve|teach|play|progress|watch ...")

type app struct {
	out       io.Writer
	logger    *slog.Logger
	levels    []level.Level
	loader    *level.Loader
	store     progress.Store
	registry  *prometheus.Registry
	collector *metrics.Collector
	asJSON    bool
}

func run(ctx context.Context, cfg config.Config, args []string, out io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("monkeypath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	levelsPath := fs.String("levels", cfg.Levels.Path, "YAML level file (default: built-in levels)")
	dsn := fs.String("db", cfg.Store.DSN, "SQLite progress database (default: in memory)")
	asJSON := fs.Bool("json", false, "print solve and levels output as JSON")
	dumpMetrics := fs.Bool("metrics", false, "print collected metrics after the command")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	a := &app{out: out, logger: logger, asJSON: *asJSON, registry: prometheus.NewRegistry()}
	a.collector = metrics.NewCollector(a.registry)

	// 1. Levels: a file through the loader, or the embedded set.
	if *levelsPath != "" {
		ld, err := level.NewLoader(*levelsPath, logger)
		if err != nil {
			return err
		}
		a.loader = ld
		a.levels = ld.Levels()
	} else {
		a.levels = level.Builtin()
	}

	// 2. Progress store.
	if *dsn != "" {
		s, err := progress.NewSQLiteStore(*dsn)
		if err != nil {
			return err
		}
		logger.Debug("progress store opened", "path", s.Path())
		a.store = s
	} else {
		a.store = progress.NewMemoryStore()
	}
	defer func() {
		if err := a.store.Close(); err != nil {
			logger.Warn("closing progress store failed", "error", err)
		}
	}()

	// 3. Dispatch.
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	var err error
	switch cmd {
	case "levels":
		err = a.listLevels(ctx)
	case "solve":
		err = a.withLevel(rest, a.solve)
	case "teach":
		err = a.withLevel(rest, a.teach)
	case "play":
		err = a.withLevel(rest, func(l level.Level, route []string) error { return a.play(ctx, l, route) })
	case "progress":
		err = a.showProgress(ctx, rest)
	case "watch":
		err = a.watch(ctx)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if err != nil {
		return err
	}

	if *dumpMetrics {
		return a.printMetrics()
	}

	return nil
}

// withLevel resolves the level ID in args[0] and passes the rest along.
func (a *app) withLevel(args []string, fn func(level.Level, []string) error) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing level ID", errUsage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad level ID %q", errUsage, args[0])
	}
	l, ok := level.ByID(a.levels, id)
	if !ok {
		return fmt.Errorf("no level %d", id)
	}

	return fn(l, args[1:])
}

type levelSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TimeLimit int64  `json:"timeLimit"`
	Paths     int    `json:"paths"`
	Feasible  int    `json:"feasible"`
	BestCost  *int64 `json:"bestCost,omitempty"`
	Completed bool   `json:"completed"`
	Locked    bool   `json:"locked"`
	Record    *int64 `json:"record,omitempty"`
}

// completed loads the progress records keyed by level ID.
func (a *app) completed(ctx context.Context) (map[int]progress.Record, map[int]bool, error) {
	done, err := a.store.Completed(ctx)
	if err != nil {
		return nil, nil, err
	}
	byLevel := make(map[int]progress.Record, len(done))
	set := make(map[int]bool, len(done))
	for _, r := range done {
		byLevel[r.LevelID] = r
		set[r.LevelID] = true
	}

	return byLevel, set, nil
}

func (a *app) listLevels(ctx context.Context) error {
	byLevel, set, err := a.completed(ctx)
	if err != nil {
		return err
	}

	sums := make([]levelSummary, 0, len(a.levels))
	for _, l := range a.levels {
		an := paths.Analyze(l.Edges, l.Start, l.Goal, l.TimeLimit)
		s := levelSummary{
			ID:        l.ID,
			Name:      l.Name,
			TimeLimit: l.TimeLimit,
			Paths:     len(an.All),
			Feasible:  len(an.Feasible),
			Locked:    !level.Unlocked(a.levels, set, l.ID),
		}
		if an.HasOptimal {
			c := an.Optimal.TotalCost
			s.BestCost = &c
		}
		if r, ok := byLevel[l.ID]; ok {
			s.Completed = true
			c := r.BestCost
			s.Record = &c
		}
		sums = append(sums, s)
	}

	if a.asJSON {
		return json.NewEncoder(a.out).Encode(sums)
	}
	for _, s := range sums {
		mark := " "
		switch {
		case s.Completed:
			mark = "*"
		case s.Locked:
			mark = "#"
		}
		best := "-"
		if s.BestCost != nil {
			best = strconv.FormatInt(*s.BestCost, 10)
		}
		lock := ""
		if s.Locked {
			lock = "  locked"
		}
		fmt.Fprintf(a.out, "%s %d  %-16s limit %3d  paths %2d  feasible %2d  best %s%s\n",
			mark, s.ID, s.Name, s.TimeLimit, s.Paths, s.Feasible, best, lock)
	}

	return nil
}

func (a *app) solve(l level.Level, _ []string) error {
	p, ok := paths.OptimalPath(l.Edges, l.Start, l.Goal, l.TimeLimit)
	if a.asJSON {
		if !ok {
			_, err := io.WriteString(a.out, "null\n")
			return err
		}
		return json.NewEncoder(a.out).Encode(p)
	}
	if !ok {
		fmt.Fprintf(a.out, "level %d: no route beats the storm (limit %d)\n", l.ID, l.TimeLimit)
		return nil
	}
	fmt.Fprintf(a.out, "level %d: %s  energy %d  time %d/%d\n",
		l.ID, strings.Join(p.Path, " → "), p.TotalCost, p.TotalTime, l.TimeLimit)

	return nil
}

func (a *app) teach(l level.Level, _ []string) error {
	fmt.Fprintf(a.out, "Level %d: %s\n", l.ID, l.Name)

	return teaching.Render(a.out, teaching.Build(l))
}

// play replays route on an unlocked level. The start tree may be omitted.
func (a *app) play(ctx context.Context, l level.Level, route []string) error {
	if len(route) == 0 {
		return fmt.Errorf("%w: play needs a route", errUsage)
	}
	_, set, err := a.completed(ctx)
	if err != nil {
		return err
	}
	if err := level.CheckUnlocked(a.levels, set, l.ID); err != nil {
		return err
	}
	if route[0] != l.Start {
		route = append([]string{l.Start}, route...)
	}

	res, err := game.Replay(l, route,
		game.WithLogger(a.logger),
		game.WithRecorder(a.collector),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s  energy %d  time %d/%d\n",
		res.Outcome, strings.Join(res.Path, " → "), res.Cost, res.Time, l.TimeLimit)
	switch res.Outcome {
	case game.Suboptimal:
		fmt.Fprintf(a.out, "optimal: %s  energy %d (%d more spent)\n",
			strings.Join(res.Optimal.Path, " → "), res.Optimal.TotalCost, res.Overspend())
	case game.InProgress:
		fmt.Fprintf(a.out, "still on tree %s\n", res.Path[len(res.Path)-1])
	}

	if res.State != game.Won {
		return nil
	}
	if err := a.store.MarkCompleted(ctx, l.ID, res.Cost); err != nil {
		return err
	}
	if next, ok := level.Next(a.levels, l.ID); ok {
		fmt.Fprintf(a.out, "next: level %d %s unlocked\n", next.ID, next.Name)
	} else {
		fmt.Fprintln(a.out, "all levels complete")
	}

	return nil
}

func (a *app) showProgress(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("progress", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	reset := fs.Bool("reset", false, "forget all completed levels")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *reset {
		if err := a.store.Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "progress cleared")
		return nil
	}

	recs, err := a.store.Completed(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "no levels completed")
		return nil
	}
	for _, r := range recs {
		fmt.Fprintf(a.out, "level %d  best %d  wins %d  last %s\n",
			r.LevelID, r.BestCost, r.Wins, r.CompletedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

// watch reports level file changes until ctx is done.
func (a *app) watch(ctx context.Context) error {
	if a.loader == nil {
		return errors.New("watch needs a level file (-levels or MONKEYPATH_LEVELS)")
	}
	a.loader.OnChange(func(ls []level.Level) {
		fmt.Fprintf(a.out, "reloaded %d levels\n", len(ls))
	})
	stop, err := a.loader.Watch()
	if err != nil {
		return err
	}
	defer stop()

	fmt.Fprintf(a.out, "watching, %d levels loaded\n", len(a.levels))
	<-ctx.Done()

	return nil
}

// printMetrics writes counters and histogram sample counts, sorted by series.
func (a *app) printMetrics() error {
	mfs, err := a.registry.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			series := mf.GetName() + "{" + strings.Join(pairs, ",") + "}"
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", series, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				lines = append(lines, fmt.Sprintf("%s count=%d", series, m.GetHistogram().GetSampleCount()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}

	return nil
}
