// Package game implements the snake game state machine: menu, setup,
// countdown, play, pause, history and game over.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"snake-classic/game/history"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

const (
	DefaultInitialLength  = 3
	DefaultSpeedrunSpeed  = 5
	DefaultSpeedrunStep   = 5 // food pickups per speedrun speed increase
	DefaultCountdownTicks = 3
	DefaultCountdownStep  = time.Second
	UIRefreshRate         = 60
	DefaultPageSize       = 15
	MaxCatchUpTicks       = 5 // play ticks run by one Update before the backlog is dropped
)

// Setup validation messages.
const (
	ErrMsgNoDifficulty = "Please select a difficulty"
	ErrMsgInvalidSpeed = "Please enter a valid number"
	ErrMsgSpeedTooLow  = "Speed must be at least 1"
)

// Config holds the tunables of the state machine.
type Config struct {
	Grid            types.Grid
	InitialLength   int
	SpeedrunSpeed   int
	SpeedrunStep    int
	CountdownTicks  int
	CountdownStep   time.Duration
	HistoryPageSize int
}

func DefaultConfig(grid types.Grid) Config {
	return Config{
		Grid:            grid,
		InitialLength:   DefaultInitialLength,
		SpeedrunSpeed:   DefaultSpeedrunSpeed,
		SpeedrunStep:    DefaultSpeedrunStep,
		CountdownTicks:  DefaultCountdownTicks,
		CountdownStep:   DefaultCountdownStep,
		HistoryPageSize: DefaultPageSize,
	}
}

// Clock supplies the current time. time.Time values carry a monotonic
// reading, so durations between them are immune to wall clock changes.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Option func(*Game)

func WithClock(clock Clock) Option {
	return func(g *Game) { g.clock = clock }
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// Game is the single owner of all mutable game state. It is driven by one
// loop and is not safe for concurrent use.
type Game struct {
	cfg          Config
	clock        Clock
	rng          *rand.Rand
	logger       *slog.Logger
	history      *history.Log
	collisionMgr *manager.CollisionManager
	scoreMgr     *manager.ScoreManager
	state        state
	terminated   bool
}

func NewGame(cfg Config, log *history.Log, opts ...Option) *Game {
	g := &Game{
		cfg:          cfg,
		clock:        systemClock{},
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		logger:       slog.Default(),
		history:      log,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		scoreMgr:     manager.NewScoreManager(),
		state:        &menuState{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.scoreMgr.Seed(log.Entries())
	return g
}

// Dispatch applies cmd to the current phase. Errors are placement or
// persistence failures; the machine is left in a consistent phase.
func (g *Game) Dispatch(cmd Command) error {
	if _, ok := cmd.(Quit); ok {
		g.terminated = true
		return nil
	}

	switch st := g.state.(type) {
	case *menuState:
		return g.handleMenu(cmd)
	case *setupState:
		return g.handleSetup(st, cmd)
	case *historyState:
		g.handleHistory(st, cmd)
	case *playingState:
		return g.handlePlaying(st, cmd)
	case *pausedState:
		return g.handlePaused(st, cmd)
	case *gameOverState:
		return g.handleGameOver(st, cmd)
	}
	return nil
}

func (g *Game) handleMenu(cmd Command) error {
	click, ok := cmd.(Click)
	if !ok {
		return nil
	}
	switch click.Target {
	case TargetStartClassic:
		g.state = &setupState{}
	case TargetStartSpeedrun:
		return g.start(types.Speedrun, types.DifficultyNone, g.cfg.SpeedrunSpeed)
	case TargetHistory:
		g.state = &historyState{}
	case TargetQuit:
		g.terminated = true
	}
	return nil
}

func (g *Game) handleSetup(st *setupState, cmd Command) error {
	switch c := cmd.(type) {
	case SelectDifficulty:
		if c.Difficulty != types.DifficultyNone {
			st.difficulty = c.Difficulty
		}
	case SetSpeedInput:
		st.speedInput = c.Text
	case CommitSpeed:
		if speed, msg := parseSpeed(st.speedInput); msg != "" {
			st.errMsg = msg
		} else {
			st.speed = speed
			st.errMsg = ""
		}
		st.inputActive = false
	case ConfirmSetup:
		return g.confirmSetup(st)
	case ToMenu:
		g.state = &menuState{}
	case Click:
		if d := c.Target.Difficulty(); d != types.DifficultyNone {
			st.difficulty = d
		}
		if c.Target == TargetSpeedInput {
			st.inputActive = true
			st.errMsg = ""
		} else {
			st.inputActive = false
		}
		switch c.Target {
		case TargetStartGame:
			return g.confirmSetup(st)
		case TargetBack:
			g.state = &menuState{}
		}
	}
	return nil
}

func (g *Game) confirmSetup(st *setupState) error {
	if st.difficulty == types.DifficultyNone {
		st.errMsg = ErrMsgNoDifficulty
		return nil
	}
	speed, msg := parseSpeed(st.speedInput)
	if msg != "" {
		st.errMsg = msg
		return nil
	}
	st.speed = speed
	st.errMsg = ""
	return g.start(types.Classic, st.difficulty, speed)
}

// parseSpeed returns the speed or a message explaining why text is rejected.
func parseSpeed(text string) (int, string) {
	speed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrMsgInvalidSpeed
	}
	if speed < 1 {
		return 0, ErrMsgSpeedTooLow
	}
	return speed, ""
}

func (g *Game) handleHistory(st *historyState, cmd Command) {
	switch c := cmd.(type) {
	case Click, ToMenu:
		g.state = &menuState{}
	case ScrollHistory:
		maxOffset := max(0, g.history.Len()-g.cfg.HistoryPageSize)
		st.offset = min(maxOffset, max(0, st.offset+c.Delta))
	}
}

func (g *Game) handlePlaying(st *playingState, cmd Command) error {
	switch c := cmd.(type) {
	case MoveIntent:
		st.session.snake.QueueDirection(c.Direction)
	case Pause:
		g.state = &pausedState{session: st.session, pausedAt: g.clock.Now()}
	case Restart:
		return g.restart(st.session)
	case ToMenu:
		g.state = &menuState{}
	}
	return nil
}

func (g *Game) handlePaused(st *pausedState, cmd Command) error {
	switch c := cmd.(type) {
	case Resume:
		g.resume(st)
	case Restart:
		return g.restart(st.session)
	case ToMenu:
		g.state = &menuState{}
	case Click:
		switch c.Target {
		case TargetContinue, TargetResume:
			g.resume(st)
		case TargetNewGame:
			return g.restart(st.session)
		case TargetMainMenu:
			g.state = &menuState{}
		}
	}
	return nil
}

func (g *Game) handleGameOver(st *gameOverState, cmd Command) error {
	switch cmd.(type) {
	case Restart:
		return g.restart(st.session)
	case ToMenu:
		g.state = &menuState{}
	}
	return nil
}

func (g *Game) resume(st *pausedState) {
	now := g.clock.Now()
	st.session.pausedTotal += now.Sub(st.pausedAt)
	g.state = &playingState{session: st.session, lastStep: now}
}

func (g *Game) restart(s *Session) error {
	return g.start(s.mode, s.difficulty, s.initialSpeed)
}

// start builds a fresh session and enters the countdown. On failure the
// current phase is kept.
func (g *Game) start(mode types.Mode, difficulty types.Difficulty, speed int) error {
	s, err := newSession(g.cfg, g.rng, mode, difficulty, speed)
	if err != nil {
		return fmt.Errorf("failed to start %s game: %w", mode, err)
	}
	g.logger.Debug("session created",
		"session", s.id, "mode", mode.String(), "difficulty", difficulty.String(), "speed", speed)
	g.state = &countdownState{session: s, startedAt: g.clock.Now()}
	return nil
}

// Update advances time-driven phases: it ends the countdown and schedules
// play ticks at the session speed. Call it once per frame.
func (g *Game) Update() error {
	now := g.clock.Now()
	switch st := g.state.(type) {
	case *countdownState:
		if now.Sub(st.startedAt) >= time.Duration(g.cfg.CountdownTicks)*g.cfg.CountdownStep {
			st.session.startTime = now
			g.state = &playingState{session: st.session, lastStep: now}
		}
	case *playingState:
		for ticks := 0; g.state == st && now.Sub(st.lastStep) >= g.TickInterval(); ticks++ {
			if ticks == MaxCatchUpTicks {
				st.lastStep = now
				break
			}
			st.lastStep = st.lastStep.Add(g.TickInterval())
			if err := g.Step(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Step runs one play tick. It is a no-op outside the playing phase.
func (g *Game) Step() error {
	st, ok := g.state.(*playingState)
	if !ok {
		return nil
	}
	over, err := st.session.step(g.collisionMgr)
	if !over {
		return err
	}
	return errors.Join(err, g.finish(st.session))
}

// finish stamps the end of s, records it in the history and enters game over.
func (g *Game) finish(s *Session) error {
	now := g.clock.Now()
	s.endTime = now
	s.newRecord = g.scoreMgr.UpdateScore(s.Label(), s.score)
	g.state = &gameOverState{session: s}

	g.logger.Info("game over",
		"session", s.id,
		"mode", s.mode.String(),
		"score", s.score,
		"speed", s.speed,
		"collision", s.collision.String(),
		"record", s.newRecord,
	)

	entry := history.NewEntry(s.mode, s.difficulty, s.speed, s.score, s.startTime, s.endTime, s.played(now))
	if err := g.history.Append(entry); err != nil {
		return fmt.Errorf("failed to save history for session %s: %w", s.id, err)
	}
	return nil
}

func (g *Game) Phase() Phase {
	return g.state.phase()
}

// Terminated reports that a quit was requested.
func (g *Game) Terminated() bool {
	return g.terminated
}

// Session returns the active run, or nil in menu, setup and history.
func (g *Game) Session() *Session {
	switch st := g.state.(type) {
	case *countdownState:
		return st.session
	case *playingState:
		return st.session
	case *pausedState:
		return st.session
	case *gameOverState:
		return st.session
	}
	return nil
}

func (g *Game) Setup() SetupView {
	st, ok := g.state.(*setupState)
	if !ok {
		return SetupView{}
	}
	return SetupView{
		Difficulty:  st.difficulty,
		SpeedInput:  st.speedInput,
		InputActive: st.inputActive,
		Speed:       st.speed,
		Error:       st.errMsg,
	}
}

func (g *Game) HistoryOffset() int {
	if st, ok := g.state.(*historyState); ok {
		return st.offset
	}
	return 0
}

func (g *Game) HistoryEntries() []history.Entry {
	return g.history.Entries()
}

func (g *Game) HistoryPageSize() int {
	return g.cfg.HistoryPageSize
}

// HighScore is the best recorded score for the active session's label.
func (g *Game) HighScore() int {
	s := g.Session()
	if s == nil {
		return 0
	}
	return g.scoreMgr.GetHighScore(s.Label())
}

func (g *Game) Grid() types.Grid {
	return g.cfg.Grid
}

// TickRate is the logical ticks per second: the session speed while
// playing, the UI refresh rate otherwise.
func (g *Game) TickRate() int {
	if st, ok := g.state.(*playingState); ok && st.session.speed > 0 {
		return st.session.speed
	}
	return UIRefreshRate
}

func (g *Game) TickInterval() time.Duration {
	return time.Second / time.Duration(g.TickRate())
}

// Elapsed is the game time of the current run with pauses removed. It
// stops advancing while paused and after game over.
func (g *Game) Elapsed() time.Duration {
	switch st := g.state.(type) {
	case *playingState:
		return st.session.played(g.clock.Now())
	case *pausedState:
		return st.session.played(st.pausedAt)
	case *gameOverState:
		return st.session.played(st.session.endTime)
	}
	return 0
}

// CountdownRemaining is the digit to show during the countdown, zero in
// other phases.
func (g *Game) CountdownRemaining() int {
	st, ok := g.state.(*countdownState)
	if !ok {
		return 0
	}
	passed := int(g.clock.Now().Sub(st.startedAt) / g.cfg.CountdownStep)
	return min(g.cfg.CountdownTicks, max(1, g.cfg.CountdownTicks-passed))
}
