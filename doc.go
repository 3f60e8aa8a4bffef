/*
Package learngl provides the pieces shared by the LearnOpenGL-style example
programs: a shader Program wrapper, a fly Camera, per-frame InputState and
texture image loading.

# Overview

A Program is built from a vertex and a fragment stage and is either fully
linked or not returned at all. Compile and link failures come back as
*CompileError and *LinkError carrying the driver's diagnostic text:

	prog, err := learngl.New(driver, learngl.Source{
	    Vertex:   vertexSource,
	    Fragment: fragmentSource,
	})
	if err != nil {
	    var cerr *learngl.CompileError
	    if errors.As(err, &cerr) {
	        fmt.Println(cerr.Stage, cerr.Log)
	    }
	    return err
	}
	defer prog.Delete()

	for !window.ShouldClose() {
	    prog.Use()
	    prog.SetVec4("ourColor", mgl32.Vec4{0, green, 0, 1})
	    mesh.Draw()
	}

# Uniforms

Setters write into the program they are called on, whether or not it is the
current program. A name that is not an active uniform resolves to location
-1 and the write is silently dropped, as the driver does. Locations are cached
per name unless WithLocationCache(false) is given.

# Drivers

Program talks to the device through the Driver interface. The OpenGL 4.1
implementation lives in backend/opengl together with window creation, input,
meshes, textures and framebuffer readback.
*/
package learngl
