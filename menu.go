package asteroids

var buttonSize = Vector2{X: 113, Y: 70}

const buttonGap = 78

// MainState is the title screen with Play and Quit buttons.
type MainState struct {
	env *Env
}

func NewMainState(env *Env) *MainState {
	return &MainState{env: env}
}

func (s *MainState) Update(ld LoopData) Transition {
	screen := s.env.Screen
	pos := Vector2{X: (screen.Width - 120) * 0.5, Y: (screen.Height - 70) * 0.5}

	play := s.env.UI.Button("Play", pos, buttonSize)
	quit := s.env.UI.Button("Quit", pos.Add(Vector2{Y: buttonGap}), buttonSize)

	if play {
		return SwitchTo(StateGame)
	}
	return Continue(!quit)
}

func (s *MainState) Draw(r Renderer) {}

const loseText = "You lose the game!"

// LoseState is shown after the last life is lost.
type LoseState struct {
	env  *Env
	font Font
}

func NewLoseState(env *Env) *LoseState {
	return &LoseState{
		env:  env,
		font: env.Assets.MustFont(env.Manifest.Font),
	}
}

func (s *LoseState) Update(ld LoopData) Transition {
	screen := s.env.Screen
	pos := Vector2{X: (screen.Width - 120) * 0.5, Y: screen.Height*0.5 + 80}

	retry := s.env.UI.Button("Retry", pos, buttonSize)
	quit := s.env.UI.Button("Quit", pos.Add(Vector2{Y: buttonGap}), buttonSize)

	if retry {
		return SwitchTo(StateGame)
	}
	return Continue(!quit)
}

func (s *LoseState) Draw(r Renderer) {
	w, h := r.MeasureText(s.font, loseText, 50)
	pos := Vector2{
		X: (s.env.Screen.Width - w) * 0.5,
		Y: (s.env.Screen.Height - h) * 0.5,
	}
	r.DrawText(s.font, loseText, pos, 50, ColorWhite)
}
