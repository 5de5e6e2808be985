package asteroids

import (
	"errors"

	"go.uber.org/zap"
)

type StateType int

const (
	StateMainMenu StateType = iota
	StateGame
	StateLose
	// StateWin has no screen and nothing switches to it yet.
	StateWin
)

func (t StateType) String() string {
	switch t {
	case StateMainMenu:
		return "main-menu"
	case StateGame:
		return "game"
	case StateLose:
		return "lose"
	case StateWin:
		return "win"
	}
	return "unknown"
}

// Transition is what a state asks of the manager after its update. It
// reports whether the application keeps running.
type Transition func(m *StateManager) bool

func Stay() Transition {
	return func(*StateManager) bool { return true }
}

func SwitchTo(t StateType) Transition {
	return func(m *StateManager) bool {
		m.SwitchTo(t)
		return true
	}
}

// Continue keeps the current state and reports running.
func Continue(running bool) Transition {
	return func(*StateManager) bool { return running }
}

type State interface {
	Update(ld LoopData) Transition
	Draw(r Renderer)
}

// StateManager owns one state per screen and drives the active one.
type StateManager struct {
	*EventEmitter

	states  map[StateType]State
	current StateType
	log     *zap.Logger
}

// NewStateManager builds the menu, game and lose screens and starts on the
// menu.
func NewStateManager(env *Env) *StateManager {
	m := &StateManager{
		EventEmitter: NewEventEmitter(),
		states:       make(map[StateType]State),
		current:      StateMainMenu,
		log:          env.Log.Named("states"),
	}

	m.Set(StateGame, NewGameState(env))
	m.Set(StateLose, NewLoseState(env))
	m.Set(StateMainMenu, NewMainState(env))

	return m
}

func (m *StateManager) Set(t StateType, s State) {
	m.states[t] = s
}

func (m *StateManager) Get(t StateType) (State, bool) {
	s, ok := m.states[t]
	return s, ok
}

func (m *StateManager) Current() StateType {
	return m.current
}

func (m *StateManager) SwitchTo(t StateType) {
	if t == m.current {
		return
	}
	m.log.Info("switch state", zap.Stringer("from", m.current), zap.Stringer("to", t))
	from := m.current
	m.current = t
	m.Emit(EventStateChange, EventStateChangeData{From: from, To: t})
}

// Update runs the active state and applies its transition. It returns false
// once the application should stop.
func (m *StateManager) Update(ld LoopData) bool {
	if len(m.states) == 0 {
		return false
	}

	state, ok := m.states[m.current]
	if !ok {
		return true
	}
	return state.Update(ld)(m)
}

func (m *StateManager) Draw(r Renderer) {
	if state, ok := m.states[m.current]; ok {
		state.Draw(r)
	}
}

// CatchAssetError turns an asset failure panic into an error. Use it
// deferred around code that calls the Must accessors of AssetManager.
func CatchAssetError(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		var assetErr *AssetError
		if errors.As(err, &assetErr) {
			*errp = err
			return
		}
	}
	panic(r)
}
