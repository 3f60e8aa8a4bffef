// Texturequad maps assets/wall.png onto a quad. Run from the repository root
// to pick up the shaders in internal/scene/shaders; edits to them are
// reloaded while the program runs.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/texturequad/
//
// Escape closes the window.
package main

import (
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/go-theft-auto/learngl/internal/app"
	"github.com/go-theft-auto/learngl/internal/scene"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(app.Config{
		Title:   "LearnOpenGL: textures",
		Scene:   scene.NewTextureQuad,
		Logger:  log.StandardLogger(),
		Shaders: app.ShaderDir,
	}))
}
