// Package app runs one scene in a window, the way every example executable
// does: open the window, build the scene, loop until closed, tear down.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/internal/scene"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitInit  = -1 // window or GL function loading failed
	ExitFatal = 1  // anything else, including shader compile and link errors
)

// AssetDir is where the examples look for texture images.
const AssetDir = "assets"

// ShaderDir is the in-repository copy of the file-based shaders. Examples
// run from the repository root load and hot-reload it; elsewhere the
// embedded copy is used.
const ShaderDir = "internal/scene/shaders"

// Config describes one example program.
type Config struct {
	Title   string
	Scene   scene.Constructor
	Logger  *logrus.Logger
	Window  []opengl.WindowOption
	Shaders string // on-disk shader directory, used when it exists

	// Verbose lowers the logger to debug level, which includes shader
	// compiler warnings and program handles.
	Verbose bool
}

// Main runs cfg and returns the process exit code. It must be called from
// the main goroutine with the OS thread locked.
func Main(cfg Config) int {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	err := Run(cfg)
	code := ExitCode(err)
	if err != nil {
		log.WithError(err).WithField("exit", code).Error(cfg.Title)
	}
	return code
}

// Run opens the window and drives the scene until the window closes.
func Run(cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := append([]opengl.WindowOption{
		opengl.WithTitle(cfg.Title),
		opengl.WithWindowLogger(log),
	}, cfg.Window...)
	win, err := opengl.NewWindow(opts...)
	if err != nil {
		return err
	}
	defer win.Close()

	shaderDir := cfg.Shaders
	if shaderDir != "" {
		if fi, err := os.Stat(shaderDir); err != nil || !fi.IsDir() {
			log.WithField("dir", shaderDir).Debug("shader directory not found, using embedded shaders")
			shaderDir = ""
		}
	}

	s, err := cfg.Scene(scene.Env{
		Driver:    opengl.NewDriver(),
		Logger:    log,
		AssetDir:  AssetDir,
		ShaderDir: shaderDir,
	})
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	// Runs before win.Close so GL objects go before the context.
	defer s.Delete()

	return win.Run(func(t, dt float64, in *learngl.InputState) error {
		s.Draw(scene.Frame{Time: t, Delta: dt, Input: in, Aspect: win.Aspect()})
		return nil
	})
}

// ExitCode maps an error from Run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, opengl.ErrInit):
		return ExitInit
	default:
		return ExitFatal
	}
}
