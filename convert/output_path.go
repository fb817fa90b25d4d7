package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"formtree/config"
	"formtree/state"
)

// buildOutputPath returns output file path for the form "src" (relative to
// processed source). It uses either default naming scheme or user-defined
// template, keeps source directory structure unless asked not to, cleans up
// names and transliterates them if requested.
func buildOutputPath(v Values, src, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	ext := env.Format.Ext()

	if env.Cfg.Output.OutputNameTemplate == "" {
		return filepath.Join(outDir, cleanPathSegment(v.SourceFile, env)+ext)
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Output.OutputNameTemplate, v)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		expanded = ""
	}
	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		// fallback to default name
		return filepath.Join(outDir, cleanPathSegment(v.SourceFile, env)+ext)
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, s := range segments[:len(segments)-1] {
		parts = append(parts, cleanPathSegment(s, env))
	}
	parts = append(parts, cleanPathSegment(segments[len(segments)-1], env)+ext)
	return filepath.Join(parts...)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func splitPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
