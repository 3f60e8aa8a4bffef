// Hellotriangle draws an orange quad from two indexed triangles.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/hellotriangle/
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
		Title:  "LearnOpenGL: hello triangle",
		Scene:  scene.NewHelloTriangle,
		Logger: log.StandardLogger(),
	}))
}
