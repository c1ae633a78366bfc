package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const sourceExt = ".c3"

// ExpandSources turns a list of CLI-supplied source arguments into a
// sorted, deduplicated list of concrete .c3 file paths.
//
// Three shapes are recognized, tried in this order for each argument:
//
//   - "dir/*"  expands to every *.c3 file directly inside dir (no recursion).
//   - "dir/**" expands to every *.c3 file inside dir, recursively.
//   - anything else must already end in .c3 and name a single file.
//
// Any other shape — a bare directory, a file with the wrong extension, or
// a path that does not exist — is a fatal input error.
func ExpandSources(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, arg := range args {
		switch {
		case strings.HasSuffix(arg, "/**"):
			dir := strings.TrimSuffix(arg, "/**")
			files, err := expandRecursive(dir)
			if err != nil {
				return nil, err
			}
			appendUnique(&out, seen, files)

		case strings.HasSuffix(arg, "/*"):
			dir := strings.TrimSuffix(arg, "/*")
			files, err := expandFlat(dir)
			if err != nil {
				return nil, err
			}
			appendUnique(&out, seen, files)

		default:
			if !strings.HasSuffix(arg, sourceExt) {
				return nil, fmt.Errorf("invalid source name %q: expected a %s file or a dir/* or dir/** wildcard", arg, sourceExt)
			}
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid source name %q: %w", arg, err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("invalid source name %q: is a directory", arg)
			}
			appendUnique(&out, seen, []string{arg})
		}
	}

	sort.Strings(out)
	return out, nil
}

func expandFlat(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("expand %s/*: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), sourceExt) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func expandRecursive(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), sourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expand %s/**: %w", dir, err)
	}
	return files, nil
}

func appendUnique(out *[]string, seen map[string]struct{}, files []string) {
	for _, f := range files {
		norm := normalizePath(f)
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		*out = append(*out, f)
	}
}
