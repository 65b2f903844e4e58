package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// tomlManifest is the glslc.toml file as it is encoded in TOML.
type tomlManifest struct {
	// Root is the shader directory. A relative root is resolved against
	// the manifest's directory.
	Root     string         `toml:"root,omitempty"`
	Programs []*tomlProgram `toml:"program"`
}

// tomlProgram is one vertex/fragment pair.
type tomlProgram struct {
	Name     string `toml:"name"`
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// loadManifest reads and validates the manifest at path. The returned root
// directory is absolute or relative to the working directory.
func loadManifest(path string) (*tomlManifest, string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	m := &tomlManifest{}
	if err := toml.Unmarshal(buf, m); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	if len(m.Programs) == 0 {
		return nil, "", fmt.Errorf("%s: no [[program]] entries", path)
	}
	seen := make(map[string]bool)
	for i, p := range m.Programs {
		if p.Name == "" {
			return nil, "", fmt.Errorf("%s: program %d has no name", path, i+1)
		}
		if seen[p.Name] {
			return nil, "", fmt.Errorf("%s: duplicate program %q", path, p.Name)
		}
		seen[p.Name] = true
		if p.Vertex == "" || p.Fragment == "" {
			return nil, "", fmt.Errorf("%s: program %q needs both vertex and fragment", path, p.Name)
		}
	}

	root := m.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}
	return m, root, nil
}
