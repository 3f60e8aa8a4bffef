// Package scene holds the tutorial scenes. Each scene builds its GL objects
// once, draws a frame on request and releases everything in Delete.
package scene

import (
	"embed"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

//go:embed shaders
var embedded embed.FS

// Frame is the per-frame input to Draw.
type Frame struct {
	Time   float64 // seconds since start
	Delta  float64 // seconds since the previous frame
	Input  *learngl.InputState
	Aspect float32
}

// Scene is one tutorial program.
type Scene interface {
	Draw(f Frame)
	Delete()
}

// Env carries what scenes need from their host.
type Env struct {
	Driver learngl.Driver
	Logger logrus.FieldLogger

	// AssetDir is where texture images are looked up.
	AssetDir string

	// ShaderDir, when set, loads file-based shaders from disk instead of
	// the embedded copies and reloads them when they change.
	ShaderDir string
}

// Constructor builds a scene.
type Constructor func(env Env) (Scene, error)

// Scenes lists every scene by name.
var Scenes = map[string]Constructor{
	"hellotriangle": NewHelloTriangle,
	"uniformcolor":  NewUniformColor,
	"texturequad":   NewTextureQuad,
	"camera":        NewCamera,
}

func (env Env) logger() logrus.FieldLogger {
	if env.Logger == nil {
		return logrus.StandardLogger()
	}
	return env.Logger
}

// shader is a program loaded from files, reloaded from disk when watched.
type shader struct {
	*learngl.Program
	fsys       fs.FS
	vert, frag string
	watcher    *learngl.Watcher
	log        logrus.FieldLogger
}

func loadShader(env Env, vert, frag string) (*shader, error) {
	s := &shader{vert: vert, frag: frag, log: env.logger()}
	if env.ShaderDir != "" {
		s.fsys = os.DirFS(env.ShaderDir)
	} else {
		sub, err := fs.Sub(embedded, "shaders")
		if err != nil {
			return nil, err
		}
		s.fsys = sub
	}

	prog, err := learngl.Load(env.Driver, s.fsys, vert, frag, learngl.WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	s.Program = prog

	if env.ShaderDir != "" {
		w, err := learngl.NewWatcher(s.log,
			filepath.Join(env.ShaderDir, vert), filepath.Join(env.ShaderDir, frag))
		if err != nil {
			prog.Delete()
			return nil, err
		}
		s.watcher = w
	}
	return s, nil
}

// poll reloads the program if its sources changed and reports whether it
// did. Uniforms start from their defaults after a reload. A broken edit is
// logged and the previous program stays in use.
func (s *shader) poll() bool {
	if s.watcher == nil {
		return false
	}
	select {
	case <-s.watcher.Changed():
	default:
		return false
	}

	src, err := learngl.LoadSource(s.fsys, s.vert, s.frag)
	if err == nil {
		err = s.Reload(src)
	}
	if err != nil {
		s.log.WithError(err).Warn("shader reload failed, keeping previous program")
		return false
	}
	s.log.WithField("vertex", s.vert).WithField("fragment", s.frag).Info("shader reloaded")
	return true
}

func (s *shader) Delete() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.log.WithError(err).Warn("close shader watcher")
		}
		s.watcher = nil
	}
	s.Program.Delete()
}

var (
	checkerLight = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	checkerDark  = color.NRGBA{R: 200, G: 40, B: 200, A: 255}
)

// loadTexture uploads the named asset. A missing or broken image is
// reported and replaced by a checkerboard so sampling stays defined.
func loadTexture(env Env, name string, flipY bool) *opengl.Texture {
	path := filepath.Join(env.AssetDir, name)
	img, err := learngl.LoadImage(path, flipY)
	if err != nil {
		env.logger().WithError(err).Warn("failed to load texture, using checkerboard")
		return opengl.NewTexture(learngl.Checkerboard(64, 8, checkerLight, checkerDark))
	}
	return opengl.NewTexture(img)
}
