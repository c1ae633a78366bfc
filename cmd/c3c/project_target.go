package main

import (
	"errors"
	"path/filepath"
	"strings"

	"c3c/internal/project"
)

const noManifestMessage = "no c3c.toml found; pass an explicit .c3 file or create c3c.toml"

// compileTarget resolves what to compile and link as: a project manifest
// when one is found above cwd, or an explicit single file/directory entry
// named on the command line.
type compileTarget struct {
	sources    []string
	libDir     string
	targetName string
	baseDir    string
}

func resolveTarget(args []string) (compileTarget, error) {
	manifest, found, err := project.LoadManifest(".")
	if err != nil {
		return compileTarget{}, err
	}
	if found {
		main, err := project.ResolveRunTarget(manifest)
		if err != nil {
			return compileTarget{}, err
		}
		sources := manifest.Config.Package.Sources
		if len(sources) == 0 {
			sources = []string{main}
		}
		return compileTarget{
			sources:    resolveAgainstRoot(manifest.Root, sources),
			libDir:     resolveLibDir(manifest.Root, manifest.Config.Package.LibDir),
			targetName: manifest.Config.Run.TargetName,
			baseDir:    manifest.Root,
		}, nil
	}

	if len(args) == 0 {
		return compileTarget{}, errors.New(noManifestMessage)
	}
	entry := args[0]
	return compileTarget{
		sources:    []string{entry},
		targetName: targetNameFromPath(entry),
	}, nil
}

func resolveAgainstRoot(root string, entries []string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		if filepath.IsAbs(e) || strings.HasPrefix(e, root) {
			out[i] = e
			continue
		}
		out[i] = filepath.Join(root, e)
	}
	return out
}

func resolveLibDir(root, libDir string) string {
	if libDir == "" {
		return ""
	}
	if filepath.IsAbs(libDir) {
		return libDir
	}
	return filepath.Join(root, libDir)
}

func targetNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
