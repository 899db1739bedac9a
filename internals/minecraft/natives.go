package minecraft

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"
	"github.com/pkg/errors"
)

// Native is a jar containing platform specific libraries
type Native struct {
	// Path is the absolute path of the jar
	Path string
	// Exclude contains path prefixes that are not extracted (usually META-INF/)
	Exclude []string
}

// NativeCollection contains all native jars a version needs on the current platform
type NativeCollection struct {
	Natives []Native
}

// Len returns the number of native jars
func (n *NativeCollection) Len() int {
	return len(n.Natives)
}

// ExtractTo extracts every native jar into dir and returns the names of the written files.
// It stops at the first error. Files written until then are not removed
func (n *NativeCollection) ExtractTo(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(n.Natives))
	for _, native := range n.Natives {
		files, err := native.extractTo(dir)
		written = append(written, files...)
		if err != nil {
			return written, errors.Wrapf(err, "extracting %s", filepath.Base(native.Path))
		}
	}
	return written, nil
}

func (n Native) excluded(name string) bool {
	for _, prefix := range n.Exclude {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (n Native) extractTo(dir string) ([]string, error) {
	root := filepath.Clean(dir) + string(os.PathSeparator)
	written := make([]string, 0)

	err := archiver.NewZip().Walk(n.Path, func(f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		header, ok := f.Header.(zip.FileHeader)
		if !ok {
			return errors.Errorf("unexpected header type %T", f.Header)
		}
		name := header.Name
		if n.excluded(name) {
			return nil
		}

		target := filepath.Join(dir, filepath.FromSlash(name))
		if !strings.HasPrefix(target, root) {
			return errors.Errorf("illegal file path in jar: %s", name)
		}
		if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
			return err
		}

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, f)
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return err
		}

		written = append(written, name)
		return nil
	})
	return written, err
}
