package asteroids

import (
	"errors"
	"image/color"
	"math/rand"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"
)

type fakeTexture struct {
	w, h float64
}

func (t fakeTexture) Width() float64  { return t.w }
func (t fakeTexture) Height() float64 { return t.h }

type fakeSound string

func (s fakeSound) Name() string { return string(s) }

type fakeFont string

func (f fakeFont) Name() string { return string(f) }

var errMissing = errors.New("missing")

// fakeLoader hands out 10x10 textures for every name not marked missing.
type fakeLoader struct {
	mu      sync.Mutex
	loads   map[string]int
	missing map[string]bool
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{loads: make(map[string]int), missing: make(map[string]bool)}
}

func (l *fakeLoader) count(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads[name]++
	if l.missing[name] {
		return errMissing
	}
	return nil
}

func (l *fakeLoader) LoadTexture(name string) (Texture, error) {
	if err := l.count(name); err != nil {
		return nil, err
	}
	return fakeTexture{w: 10, h: 10}, nil
}

func (l *fakeLoader) LoadSound(name string) (Sound, error) {
	if err := l.count(name); err != nil {
		return nil, err
	}
	return fakeSound(name), nil
}

func (l *fakeLoader) LoadFont(name string) (Font, error) {
	if err := l.count(name); err != nil {
		return nil, err
	}
	return fakeFont(name), nil
}

type fakeAudio struct {
	played []string
}

func (a *fakeAudio) Play(sound Sound, params PlayParams) {
	a.played = append(a.played, sound.Name())
}

type fakeInput struct {
	down     map[Key]bool
	released map[Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{down: make(map[Key]bool), released: make(map[Key]bool)}
}

func (i *fakeInput) IsKeyDown(key Key) bool     { return i.down[key] }
func (i *fakeInput) IsKeyReleased(key Key) bool { return i.released[key] }

type fakeUI struct {
	clicks map[string]bool
	shown  []string
}

func (u *fakeUI) Button(label string, pos, size Vector2) bool {
	u.shown = append(u.shown, label)
	return u.clicks[label]
}

type fakeRenderer struct {
	textures int
	texts    []string
	circles  int
}

func (r *fakeRenderer) DrawTexture(tex Texture, pos Vector2, rotation float64, pivot Vector2) {
	r.textures++
}

func (r *fakeRenderer) DrawText(font Font, text string, pos Vector2, size float64, clr color.Color) {
	r.texts = append(r.texts, text)
}

func (r *fakeRenderer) MeasureText(font Font, text string, size float64) (float64, float64) {
	return float64(len(text)) * size / 2, size
}

func (r *fakeRenderer) StrokeCircle(center Vector2, radius float64, clr color.Color) {
	r.circles++
}

type testEnv struct {
	*Env
	loader *fakeLoader
	audio  *fakeAudio
	input  *fakeInput
	ui     *fakeUI
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zaptest.NewLogger(t)
	loader := newFakeLoader()
	te := &testEnv{
		loader: loader,
		audio:  &fakeAudio{},
		input:  newFakeInput(),
		ui:     &fakeUI{clicks: make(map[string]bool)},
	}
	te.Env = &Env{
		Assets:   NewAssetManager(loader, log),
		Manifest: DefaultManifest(),
		Tuning:   DefaultTuning(),
		Audio:    te.audio,
		Input:    te.input,
		UI:       te.ui,
		Screen:   Screen{Width: 800, Height: 600},
		Rand:     rand.New(rand.NewSource(1)),
		Log:      log,
	}
	return te
}

// stubEntity is a square entity with scripted behaviour.
type stubEntity struct {
	body     Body
	kind     Kind
	collides bool
	onUpdate func() Action

	updates   int
	destroyed int
	draws     int
}

func newStub(kind Kind, position Vector2) *stubEntity {
	return &stubEntity{
		body: newBody(fakeTexture{w: 10, h: 10}, position),
		kind: kind,
	}
}

func (s *stubEntity) Kind() Kind  { return s.kind }
func (s *stubEntity) Body() *Body { return &s.body }

func (s *stubEntity) Update(dt float64) Action {
	s.updates++
	if s.onUpdate != nil {
		return s.onUpdate()
	}
	return nil
}

func (s *stubEntity) Collides(other Entity) bool {
	return s.collides && CircleTest(&s.body, other.Body())
}

func (s *stubEntity) Destroy() Action {
	s.destroyed++
	return nil
}

func (s *stubEntity) Draw(r Renderer) { s.draws++ }
