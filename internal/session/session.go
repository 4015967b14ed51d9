package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/scoreboard/internal/history"
	"github.com/mauv0809/scoreboard/internal/metrics"
	"github.com/mauv0809/scoreboard/internal/notifier"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/mauv0809/scoreboard/internal/view"
)

var ErrUnknownCommand = errors.New("unknown command")

// Options configures a Session.
type Options struct {
	HistoryLimit int
	Notifiers    []notifier.Notifier
	Metrics      metrics.Metrics
}

// Result is the board after a command. Warning is set when the change was
// applied in memory but could not be saved.
type Result struct {
	Board   view.Board `json:"board"`
	Warning string     `json:"warning,omitempty"`
}

// Session owns one board's roster and history and dispatches commands to it.
// Commands are applied one at a time in the order they arrive.
type Session struct {
	name      string
	mu        sync.Mutex
	store     *roster.Store
	history   *history.Manager
	persist   persistence.Adapter
	notifiers []notifier.Notifier
	metrics   metrics.Metrics
	now       func() time.Time
}

// Open loads the board from adapter and returns a ready Session. An
// unreadable blob is logged and the board starts empty.
func Open(ctx context.Context, name string, adapter persistence.Adapter, opts Options) (*Session, error) {
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop()
	}
	s := &Session{
		name:      name,
		store:     roster.New(),
		history:   history.New(opts.HistoryLimit),
		persist:   adapter,
		notifiers: opts.Notifiers,
		metrics:   opts.Metrics,
		now:       time.Now,
	}

	blob, ok, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		snapshot, err := persistence.Decode(blob)
		if err != nil {
			log.Warn("Ignoring unreadable saved board", "board", name, "error", err)
		} else {
			s.store.Restore(snapshot)
		}
	}
	log.Info("Opened board", "board", name, "players", s.store.Len())
	return s, nil
}

// Name returns the board name.
func (s *Session) Name() string {
	return s.name
}

// Board returns the current projections.
func (s *Session) Board() view.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectLocked()
}

func (s *Session) AddPlayer(ctx context.Context, name string) (Result, error) {
	return s.Apply(ctx, AddPlayer(name))
}

func (s *Session) Rename(ctx context.Context, index int, newName string) (Result, error) {
	return s.Apply(ctx, Rename(index, newName))
}

func (s *Session) AdjustScore(ctx context.Context, index, delta int) (Result, error) {
	return s.Apply(ctx, AdjustScore(index, delta))
}

func (s *Session) ResetAll(ctx context.Context) (Result, error) {
	return s.Apply(ctx, ResetAll())
}

func (s *Session) Undo(ctx context.Context) (Result, error) {
	return s.Apply(ctx, Undo())
}

func (s *Session) Redo(ctx context.Context) (Result, error) {
	return s.Apply(ctx, Redo())
}

// Apply validates and executes cmd. A rejected command leaves the roster and
// history untouched and triggers neither a save nor a refresh. A failed save
// is returned as an error wrapping persistence.ErrPersist alongside the
// updated board.
func (s *Session) Apply(ctx context.Context, cmd Command) (Result, error) {
	s.mu.Lock()

	var err error
	switch cmd.Kind {
	case KindUndo:
		err = s.travelLocked(s.history.Undo)
	case KindRedo:
		err = s.travelLocked(s.history.Redo)
	default:
		err = s.mutateLocked(cmd)
	}
	if err != nil {
		board := s.projectLocked()
		s.mu.Unlock()
		s.metrics.IncCommandRejected(string(cmd.Kind))
		log.Debug("Command rejected", "board", s.name, "command", cmd.String(), "error", err)
		return Result{Board: board}, err
	}

	persistErr := s.saveLocked(ctx)
	board := s.projectLocked()
	undo, redo := s.history.Depth()
	s.mu.Unlock()

	s.metrics.IncCommandApplied(string(cmd.Kind))
	s.metrics.SetHistoryDepth(s.name, undo, redo)
	log.Info("Command applied", "board", s.name, "command", cmd.String())

	s.refresh(ctx, cmd, board)

	if persistErr != nil {
		s.metrics.IncPersistFailures()
		log.Error("Board change not saved", "board", s.name, "error", persistErr)
		return Result{Board: board, Warning: persistErr.Error()}, persistErr
	}
	return Result{Board: board}, nil
}

// mutateLocked validates cmd, commits the pre-mutation snapshot and applies it.
func (s *Session) mutateLocked(cmd Command) error {
	apply, err := s.planLocked(cmd)
	if err != nil {
		return err
	}
	s.history.Commit(s.store.Snapshot())
	if err := apply(); err != nil {
		// Validation passed under the same lock, so this is a programming error.
		log.Error("Validated command failed to apply", "board", s.name, "command", cmd.String(), "error", err)
		return err
	}
	return nil
}

func (s *Session) planLocked(cmd Command) (func() error, error) {
	switch cmd.Kind {
	case KindAddPlayer:
		name, err := s.store.CheckAdd(cmd.Name)
		if err != nil {
			return nil, err
		}
		return func() error { return s.store.AddPlayer(name) }, nil
	case KindRename:
		name, err := s.store.CheckRename(cmd.Index, cmd.Name)
		if err != nil {
			return nil, err
		}
		return func() error { return s.store.RenamePlayer(cmd.Index, name) }, nil
	case KindAdjustScore:
		if err := s.store.CheckAdjust(cmd.Index); err != nil {
			return nil, err
		}
		return func() error { return s.store.AdjustScore(cmd.Index, cmd.Delta) }, nil
	case KindResetAll:
		if err := s.store.CheckReset(); err != nil {
			return nil, err
		}
		return s.store.ResetAllScores, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
}

func (s *Session) travelLocked(step func(roster.Snapshot) (roster.Snapshot, error)) error {
	target, err := step(s.store.Snapshot())
	if err != nil {
		return err
	}
	s.store.Restore(target)
	return nil
}

func (s *Session) saveLocked(ctx context.Context) error {
	blob, err := persistence.Encode(s.store.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: %w", persistence.ErrPersist, err)
	}
	return s.persist.Save(ctx, blob)
}

func (s *Session) projectLocked() view.Board {
	return view.Project(s.name, s.store.Snapshot(), s.history.CanUndo(), s.history.CanRedo())
}

func (s *Session) refresh(ctx context.Context, cmd Command, board view.Board) {
	if len(s.notifiers) == 0 {
		return
	}
	change := notifier.Change{
		ID:      uuid.NewString(),
		Command: cmd.String(),
		Board:   board,
		At:      s.now(),
	}
	for _, n := range s.notifiers {
		if err := n.BoardChanged(ctx, change); err != nil {
			log.Error("Failed to notify board change", "board", s.name, "change", change.ID, "error", err)
		}
	}
}
