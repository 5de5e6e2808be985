package host

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/ggueyraud/Asteroids"
)

const SampleRate = 44100

type Texture struct {
	name  string
	Image *ebiten.Image
}

func (t *Texture) Name() string    { return t.name }
func (t *Texture) Width() float64  { return float64(t.Image.Bounds().Dx()) }
func (t *Texture) Height() float64 { return float64(t.Image.Bounds().Dy()) }

// Sound holds decoded 16-bit stereo PCM at SampleRate.
type Sound struct {
	name string
	data []byte
}

func (s *Sound) Name() string { return s.name }

type Font struct {
	name  string
	font  *opentype.Font
	mutex sync.Mutex
	faces map[float64]font.Face
}

func (f *Font) Name() string { return f.name }

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float64) (font.Face, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %s size %v: %w", f.name, size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Loader reads assets from a file system. Names are slash separated paths
// inside it.
type Loader struct {
	fsys fs.FS
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) LoadTexture(name string) (asteroids.Texture, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return &Texture{name: name, Image: ebiten.NewImageFromImage(img)}, nil
}

func (l *Loader) LoadSound(name string) (asteroids.Sound, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("audio file %s is empty", name)
	}

	pcm, err := decodeAudio(data, name)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("decoded audio data for %s is empty", name)
	}

	return &Sound{name: name, data: pcm}, nil
}

func (l *Loader) LoadFont(name string) (asteroids.Font, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &Font{name: name, font: f, faces: make(map[float64]font.Face)}, nil
}

func decodeAudio(data []byte, name string) ([]byte, error) {
	reader := bytes.NewReader(data)

	var stream io.Reader
	var err error

	switch ext := path.Ext(name); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, reader)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %q", ext)
	}

	if err != nil {
		return nil, err
	}

	return io.ReadAll(stream)
}
