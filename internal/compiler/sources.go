package compiler

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"c3c/internal/project"
	"c3c/internal/source"
)

// stdlibModules are the six files a configured lib dir must provide;
// prepended to user sources in this order (spec.md §6's standard-library
// layout).
var stdlibModules = []string{"runtime", "builtin", "io", "mem", "array", "math"}

// ResolveSources expands entries (plain paths, "dir/*", "dir/**") into a
// deterministic, deduplicated list of .c3 file paths (spec.md §6's source
// list syntax).
func ResolveSources(entries []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}

	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry, "/**"):
			dir := strings.TrimSuffix(entry, "/**")
			matches, err := expandRecursive(dir)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		case strings.HasSuffix(entry, "/*"):
			dir := strings.TrimSuffix(entry, "/*")
			matches, err := filepath.Glob(filepath.Join(dir, "*.c3"))
			if err != nil {
				return nil, fmt.Errorf("compiler: expanding %q: %w", entry, err)
			}
			sort.Strings(matches)
			for _, m := range matches {
				add(m)
			}
		default:
			if filepath.Ext(entry) != ".c3" {
				return nil, fmt.Errorf("compiler: invalid source name %q: must end in .c3", entry)
			}
			add(entry)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("compiler: no input files")
	}
	return out, nil
}

func expandRecursive(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "**", "*.c3")
	top, err := filepath.Glob(filepath.Join(dir, "*.c3"))
	if err != nil {
		return nil, fmt.Errorf("compiler: expanding %q: %w", pattern, err)
	}
	nested, err := filepath.Glob(filepath.Join(dir, "*", "*.c3"))
	if err != nil {
		return nil, fmt.Errorf("compiler: expanding %q: %w", pattern, err)
	}
	// filepath.Glob's "*" only matches one path segment; walk one level
	// deeper repeatedly until no new matches appear, covering arbitrary
	// nesting without pulling in a third-party glob library.
	all := append(append([]string{}, top...), nested...)
	frontier := nested
	depth := strings.Count(pattern, string(filepath.Separator))
	for i := 0; i < depth+8 && len(frontier) > 0; i++ {
		var next []string
		seenDirs := make(map[string]bool)
		for _, f := range frontier {
			d := filepath.Dir(f)
			if seenDirs[d] {
				continue
			}
			seenDirs[d] = true
			deeper, err := filepath.Glob(filepath.Join(d, "*", "*.c3"))
			if err != nil {
				return nil, err
			}
			next = append(next, deeper...)
		}
		if len(next) == 0 {
			break
		}
		all = append(all, next...)
		frontier = next
	}
	sort.Strings(all)
	return all, nil
}

// StdlibSources returns the six mandatory lib_dir/std/<name>.c3 paths, in
// the fixed prepend order.
func StdlibSources(libDir string) []string {
	out := make([]string, len(stdlibModules))
	for i, name := range stdlibModules {
		out[i] = filepath.Join(libDir, "std", name+".c3")
	}
	return out
}

// LoadSources loads every path in order into fs, deduplicating by absolute
// path via LoadDedup (spec.md §8 property 7: loading the same path twice
// yields the same FileID).
//
// memo additionally content-hashes every path newly loaded this call
// (HashOnce, so a path FileSet already served from its own path cache is
// never re-hashed); passing nil skips hashing entirely. contentDuplicates
// counts paths whose content digest matches an earlier path's in this same
// load — e.g. a project source directory that shadows a stdlib module
// under a different path than lib_dir/std — surfaced so --timings can
// report it instead of silently hashing the same bytes twice under two
// names. It does not affect ids or newlyLoaded: path identity, not content
// identity, still governs FileID assignment and the lex_only/parse_only
// "first newly-loaded file" rule.
func LoadSources(fs *source.FileSet, paths []string, memo *project.Memo) (ids []source.FileID, newlyLoaded []bool, contentDuplicates int, err error) {
	ids = make([]source.FileID, len(paths))
	newlyLoaded = make([]bool, len(paths))
	seenDigest := make(map[project.Digest]bool)
	for i, p := range paths {
		id, cached, loadErr := fs.LoadDedup(p)
		if loadErr != nil {
			return nil, nil, 0, fmt.Errorf("compiler: loading %q: %w", p, loadErr)
		}
		ids[i] = id
		newlyLoaded[i] = !cached

		if !cached && memo != nil {
			if digest, hashErr := memo.HashOnce(p); hashErr == nil {
				if seenDigest[digest] {
					contentDuplicates++
				}
				seenDigest[digest] = true
			}
		}
	}
	return ids, newlyLoaded, contentDuplicates, nil
}
