package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// perFile is invoked once per regular file the input path resolves to,
// receiving the resolved input path and the corresponding output path
// (joined from outputDir when the input is a directory or wildcard pattern).
type perFile func(inPath, outPath string) error

// dispatch resolves inputPath the same way the original driver did: a
// directory is walked non-recursively, a path that does not exist and whose
// last element contains '*', '?' or '[' is expanded as a wildcard pattern
// relative to its containing directory via doublestar, and a plain path is
// used as-is. For a directory or wildcard input, outputPath must name an
// existing directory.
func dispatch(inputPath, outputPath string, fn perFile) error {
	info, err := os.Stat(inputPath)
	if err == nil && info.IsDir() {
		return walkDirectory(inputPath, outputPath, fn)
	}
	if err == nil {
		return fn(inputPath, outputPath)
	}

	base := filepath.Base(inputPath)
	if containsWildcard(base) {
		return walkWildcard(inputPath, outputPath, fn)
	}
	return err
}

func containsWildcard(name string) bool {
	for _, r := range name {
		if r == '*' || r == '?' || r == '[' {
			return true
		}
	}
	return false
}

func walkDirectory(dir, outputDir string, fn perFile) error {
	if err := requireOutputDir(outputDir); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		in := filepath.Join(dir, e.Name())
		out := filepath.Join(outputDir, e.Name())
		if err := fn(in, out); err != nil {
			return err
		}
	}
	return nil
}

func walkWildcard(pattern, outputDir string, fn perFile) error {
	if err := requireOutputDir(outputDir); err != nil {
		return err
	}
	dir := filepath.Dir(pattern)
	base := filepath.Base(pattern)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		matched, err := doublestar.Match(base, e.Name())
		if err != nil {
			return err
		}
		if !matched {
			continue
		}
		in := filepath.Join(dir, e.Name())
		out := filepath.Join(outputDir, e.Name())
		if err := fn(in, out); err != nil {
			return err
		}
	}
	return nil
}

func requireOutputDir(outputDir string) error {
	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %q does not exist", outputDir)
	}
	return nil
}
