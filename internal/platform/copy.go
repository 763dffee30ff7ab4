package platform

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"runtime"
)

// ErrSameFile is returned when the source and destination of a copy are the
// same file on disk.
var ErrSameFile = errors.New("source and destination must not be the same file")

// CopyFile copies the file name from fsys to dst, truncating dst if it
// exists. The destination gets the source's permission bits, always
// including owner write so a later run can overwrite it. Copying a file onto
// itself fails with ErrSameFile and leaves it untouched.
func CopyFile(fsys fs.FS, name, dst string) error {
	in, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if existing, err := os.Stat(dst); err == nil && os.SameFile(info, existing) {
		return ErrSameFile
	}
	perm := info.Mode().Perm() | 0o200

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return Chmod(dst, perm)
}

// Exists reports whether path exists. Errors other than "not exist" count as
// existing so callers never overwrite something they could not inspect.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil || !os.IsNotExist(err)
}

// Chmod sets permission bits. Windows has no Unix permission bits, so it is a
// no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
