package asteroids

import (
	"fmt"

	"go.uber.org/zap"
)

// GameState is the playing screen. It owns the world and the score, level
// and lives of the current game.
type GameState struct {
	*EventEmitter

	env   *Env
	log   *zap.Logger
	world *World
	level Level
	lives *Lives
	score uint32
	shown int // lives at the end of the previous update
}

func NewGameState(env *Env) *GameState {
	g := &GameState{
		EventEmitter: NewEventEmitter(),
		env:          env,
		log:          env.Log.Named("game"),
		lives:        NewLives(env.Tuning.Lives),
	}
	g.reset()
	return g
}

func (g *GameState) World() *World { return g.world }
func (g *GameState) Level() Level  { return g.level }
func (g *GameState) Score() uint32 { return g.score }
func (g *GameState) Lives() *Lives { return g.lives }

// reset starts a new game from scratch.
func (g *GameState) reset() {
	g.level = LevelOne
	g.score = 0
	g.lives.Set(g.env.Tuning.Lives)
	g.shown = g.env.Tuning.Lives
	g.world = NewWorld(g.env.Screen, g.env.Log)
	g.world.Add(NewPlayer(g.env, g.lives))
	g.initLevel()
}

// initLevel spawns the current level's big meteors at random positions.
func (g *GameState) initLevel() int {
	count := g.env.Tuning.MeteorCount(g.level)
	for i := 0; i < count; i++ {
		position := Vector2{
			X: g.env.randRange(0, g.env.Screen.Width),
			Y: g.env.randRange(0, g.env.Screen.Height),
		}
		g.world.Add(NewMeteor(g.env, MeteorBig, position))
	}
	return count
}

func (g *GameState) Update(ld LoopData) Transition {
	if points := g.world.Update(ld.Delta); points > 0 {
		g.score += points
		g.Emit(EventScore, EventScoreData{Points: points, Total: g.score})
	}

	if lives := g.lives.Count(); lives < g.shown {
		g.shown = lives
		g.Emit(EventLifeLost, EventLifeLostData{Lives: lives})
	}

	if g.lives.Count() == 0 {
		g.log.Info("game over", zap.Uint32("score", g.score), zap.Int("level", int(g.level)))
		g.Emit(EventGameOver, EventGameOverData{Score: g.score, Level: g.level})
		g.reset()
		return SwitchTo(StateLose)
	}

	// Only the ship is left.
	if g.world.Size() == 1 {
		g.level = g.level.Next(g.env.Tuning.MaxLevel())
		meteors := g.initLevel()
		g.log.Info("level up", zap.Int("level", int(g.level)), zap.Int("meteors", meteors))
		g.Emit(EventLevelUp, EventLevelUpData{Level: g.level, Meteors: meteors})
	}

	return Stay()
}

func (g *GameState) Draw(r Renderer) {
	font := g.env.Assets.MustFont(g.env.Manifest.Font)
	r.DrawText(font, fmt.Sprintf("Score: %d", g.score), Vector2{X: 0, Y: 30}, 30, ColorWhite)

	life := g.env.Assets.MustTexture(g.env.Manifest.Life)
	lives := g.lives.Count()
	for i := 0; i < lives; i++ {
		pos := Vector2{X: g.env.Screen.Width - float64(lives-i)*life.Width(), Y: 0}
		r.DrawTexture(life, pos, 0, pos)
	}

	g.world.Draw(r)
}
