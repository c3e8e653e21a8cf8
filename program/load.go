package program

import (
	"os"
	"path/filepath"
	"strings"
)

// Load reads a definition file, choosing the parser by extension:
// .yaml/.yml for YAML, .star for Starlark.
func Load(path string, opts Options) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		prog, err = ParseYAML(path, inf, opts)
	case ".star":
		prog, err = ParseStarlark(path, inf, opts)
	default:
		err = &ErrSyntax{Source: path, Err: ErrFormat}
	}

	if err == nil && prog.Name == "" {
		prog.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return
}
