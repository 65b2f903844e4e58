package uniglsl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/uniglsl/binding"
	"github.com/gogpu/uniglsl/glsl"
)

// ErrInvalidFormat is returned when a shader file is not valid UTF-8 text.
var ErrInvalidFormat = errors.New("invalid shader format")

// Shader is a loaded and scanned shader file.
type Shader struct {
	Name         string
	Source       string
	Declarations []glsl.Declaration
}

// LoadShader reads name from fsys and scans its declarations.
func LoadShader(fsys fs.FS, name string) (*Shader, error) {
	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("load %s: %w", name, ErrInvalidFormat)
	}

	source := string(buf)
	decls, err := Scan(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	Logger().Debug("uniglsl: shader loaded", "name", name, "bytes", len(buf), "declarations", len(decls))

	return &Shader{Name: name, Source: source, Declarations: decls}, nil
}

// Program is a loaded vertex/fragment pair with its linked interface.
type Program struct {
	Vertex   *Shader
	Fragment *Shader
	Binding  *binding.Program
}

// LoadProgram loads both stages concurrently, reflects them and links
// their interfaces. The first failure cancels the other load.
func LoadProgram(ctx context.Context, fsys fs.FS, vertex, fragment string) (*Program, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		shaders [2]*Shader
		stages  [2]*binding.StageInfo
	)
	load := func(i int, stage binding.Stage, name string) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sh, err := LoadShader(fsys, name)
			if err != nil {
				return err
			}
			info, err := binding.Reflect(stage, sh.Declarations)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			shaders[i], stages[i] = sh, info
			return nil
		}
	}
	g.Go(load(0, binding.StageVertex, vertex))
	g.Go(load(1, binding.StageFragment, fragment))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	linked, err := binding.Link(stages[0], stages[1])
	if err != nil {
		return nil, fmt.Errorf("link %s + %s: %w", vertex, fragment, err)
	}
	Logger().Debug("uniglsl: program linked",
		"vertex", vertex, "fragment", fragment,
		"attributes", len(linked.Attributes), "uniforms", len(linked.Uniforms), "varyings", len(linked.Varyings))

	return &Program{Vertex: shaders[0], Fragment: shaders[1], Binding: linked}, nil
}
