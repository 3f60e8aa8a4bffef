package learngl

import (
	"fmt"
	"io/fs"
)

// Source holds the text of a vertex and a fragment stage.
type Source struct {
	Vertex   string
	Fragment string
}

// LoadSource reads both stages from fsys. Use os.DirFS for files on disk or
// an embed.FS for sources compiled into the binary.
func LoadSource(fsys fs.FS, vertexPath, fragmentPath string) (Source, error) {
	vs, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return Source{}, fmt.Errorf("read vertex shader %q: %w", vertexPath, err)
	}
	fsrc, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return Source{}, fmt.Errorf("read fragment shader %q: %w", fragmentPath, err)
	}
	return Source{Vertex: string(vs), Fragment: string(fsrc)}, nil
}
