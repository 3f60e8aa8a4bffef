// Command gen renders every scene in a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/internal/app"
	"github.com/go-theft-auto/learngl/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.WithError(err).Error("screenshot generation failed")
		os.Exit(app.ExitCode(err))
	}
}

// frames is how many frames each scene draws before capture. The second
// frame makes sure nothing from setup is left in the back buffer.
const frames = 2

// captureTime is the scene time of the captured frame, chosen so the
// pulsing triangle is clearly green.
const captureTime = 1.0

func run() error {
	win, err := opengl.NewWindow(
		opengl.WithHidden(),
		opengl.WithTitle("screenshot-gen"),
		opengl.WithVSync(false),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	names := slices.Sorted(maps.Keys(scene.Scenes))

	env := scene.Env{
		Driver:   opengl.NewDriver(),
		Logger:   log.StandardLogger(),
		AssetDir: app.AssetDir,
	}
	for _, name := range names {
		path := filepath.Join(outDir, name+".jpg")
		if err := capture(win, env, scene.Scenes[name], path); err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		log.WithField("file", path).Info("screenshot written")
	}

	log.WithField("count", len(names)).WithField("dir", outDir).Info("screenshots generated")
	return nil
}

func capture(win *opengl.Window, env scene.Env, build scene.Constructor, path string) error {
	// Fresh scene per screenshot so no GL state leaks between captures.
	s, err := build(env)
	if err != nil {
		return err
	}
	defer s.Delete()

	width, height := win.FramebufferSize()
	for i := 0; i < frames; i++ {
		s.Draw(scene.Frame{Time: captureTime, Delta: 1.0 / 60.0, Aspect: win.Aspect()})
	}
	img := opengl.ReadPixels(width, height)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
