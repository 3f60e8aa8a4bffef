// Camera flies through ten textured cubes. W, A, S and D move, the mouse looks
// around and the scroll wheel zooms. Shader edits under
// internal/scene/shaders are reloaded live when run from the repository root.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/camera/
//
// Escape closes the window.
package main

import (
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/internal/app"
	"github.com/go-theft-auto/learngl/internal/scene"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(app.Config{
		Title:   "LearnOpenGL: camera",
		Scene:   scene.NewCamera,
		Logger:  log.StandardLogger(),
		Shaders: app.ShaderDir,
		Window:  []opengl.WindowOption{opengl.WithCursorDisabled()},
	}))
}
