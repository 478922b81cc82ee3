// Package fstree lists asset directories as typed entries.
package fstree

import (
	"io/fs"
	"path"
	"strings"
)

// Kind is the type of a directory entry.
type Kind int

const (
	KindOther Kind = iota // symlinks, devices, sockets
	KindDir
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// Entry is one child of a listed directory.
type Entry struct {
	Kind Kind
	Name string
}

// SupportedExtensions are the image extensions the site can display,
// lowercase with leading dot.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Ext returns the extension of name. A name whose only dot is the leading
// one (".jpg") has no extension.
func Ext(name string) string {
	ext := path.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}

// BaseName returns name without its extension.
func BaseName(name string) string {
	return strings.TrimSuffix(name, Ext(name))
}

// IsImage reports whether name has a supported image extension.
// The comparison is case-insensitive.
func IsImage(name string) bool {
	ext := strings.ToLower(Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// List returns the entries of dir within fsys in the order fs.ReadDir
// returns them (sorted by name).
func List(fsys fs.FS, dir string) ([]Entry, error) {
	dirents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Kind: kindOf(d), Name: d.Name()})
	}
	return entries, nil
}

func kindOf(d fs.DirEntry) Kind {
	switch {
	case d.IsDir():
		return KindDir
	case d.Type().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Names returns the names of entries of the given kind, in order.
func Names(entries []Entry, kind Kind) []string {
	var names []string
	for _, e := range entries {
		if e.Kind == kind {
			names = append(names, e.Name)
		}
	}
	return names
}

// Dirs lists the names of the immediate subdirectories of dir.
func Dirs(fsys fs.FS, dir string) ([]string, error) {
	entries, err := List(fsys, dir)
	if err != nil {
		return nil, err
	}
	return Names(entries, KindDir), nil
}

// Files lists the names of the regular files directly inside dir.
func Files(fsys fs.FS, dir string) ([]string, error) {
	entries, err := List(fsys, dir)
	if err != nil {
		return nil, err
	}
	return Names(entries, KindFile), nil
}

// Exists reports whether dir exists within fsys.
func Exists(fsys fs.FS, dir string) bool {
	_, err := fs.Stat(fsys, dir)
	return err == nil
}

// Join joins path elements for use with an fs.FS.
func Join(elem ...string) string {
	return path.Join(elem...)
}
