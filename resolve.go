package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var errNoSource = errors.New("no source file")

// Lister returns the file names in a directory.
type Lister interface {
	List(dir string) ([]string, error)
}

type dirLister struct{}

func (dirLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Source files are numbered from 1, so index i is found under "-{i+1}".
func sourceSuffix(index int) string {
	return fmt.Sprintf("-%02d", index+1)
}

func ResolveSource(lister Lister, dir string, index int) (string, error) {
	names, err := lister.List(dir)
	if err != nil {
		return "", errors.Wrapf(err, "list %s", dir)
	}
	suffix := sourceSuffix(index)
	for _, name := range names {
		if strings.Contains(name, suffix) {
			return filepath.Join(dir, name), nil
		}
	}
	return "", errors.Wrapf(errNoSource, "no file matching %q in %s", suffix, dir)
}
