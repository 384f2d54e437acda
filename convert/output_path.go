package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"svgray/config"
	"svgray/state"
)

// buildOutputPath returns constructed output file path/name. It appends the
// configured suffix to the base name, optionally transliterates it and takes
// into account whether to preserve source directory structure on the output.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}

	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + env.Cfg.Document.OutputNameSuffix
	if env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}

	return filepath.Join(outDir, config.CleanFileName(baseName)+".svg")
}
