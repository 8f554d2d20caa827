// Package store provides the byte-addressable content store the sync engine
// reads sources from and materializes targets into. It wraps an afero
// filesystem so production code runs against the OS filesystem while tests
// run against an in-memory one.
package store

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// Store is a byte-addressable content store rooted at an afero filesystem.
type Store struct {
	fs afero.Fs
}

// New creates a store backed by the given filesystem.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS creates a store backed by the operating system filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Exists reports whether a file or directory exists at path.
func (s *Store) Exists(path string) bool {
	_, err := s.fs.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (s *Store) IsDir(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && info.IsDir()
}

// Read returns the contents of the file at path.
func (s *Store) Read(path string) ([]byte, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("file", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return content, nil
}

// Write writes content to path, creating parent directories as needed.
func (s *Store) Write(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.MkdirAll(dir); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(s.fs, path, content, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// List returns the names of the immediate entries of dir, sorted.
func (s *Store) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("directory", dir)
		}
		return nil, errors.WrapIO("list", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}

// MkdirAll creates dir and any missing parents.
func (s *Store) MkdirAll(dir string) error {
	if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}

// Copy copies the file at from to to, creating parent directories as needed.
func (s *Store) Copy(from, to string) error {
	src, err := s.fs.Open(from)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("file", from)
		}
		return errors.WrapIO("open", from, err)
	}
	defer src.Close()

	if dir := filepath.Dir(to); dir != "." {
		if err := s.MkdirAll(dir); err != nil {
			return err
		}
	}

	dst, err := s.fs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", to, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.WrapIO("copy", to, err)
	}
	return nil
}

// WalkFiles returns the relative paths of every file under root, sorted.
// Traversal uses an explicit worklist so depth is bounded regardless of the
// tree's shape. A missing root yields an empty result.
func (s *Store) WalkFiles(root string) ([]string, error) {
	if !s.Exists(root) {
		return nil, nil
	}

	var files []string
	pending := []string{root}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		names, err := s.List(dir)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			full := filepath.Join(dir, name)
			if s.IsDir(full) {
				pending = append(pending, full)
				continue
			}
			rel, err := filepath.Rel(root, full)
			if err != nil {
				return nil, errors.WrapIO("walk", full, err)
			}
			files = append(files, rel)
		}
	}

	sort.Strings(files)
	return files, nil
}
