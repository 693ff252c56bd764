package exec

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"

	errUtils "github.com/soliterra/markfile/errors"
	"github.com/soliterra/markfile/pkg/filesystem"
	log "github.com/soliterra/markfile/pkg/logger"
	"github.com/soliterra/markfile/pkg/platform"
)

// Marker is the exact payload written into the target file: the output of the
// legacy Python fixture script this tool replaces, with no trailing newline.
const Marker = "Hello from Python script"

type markExec struct {
	fs   filesystem.FileSystem
	goos string
}

// NewMarkExec returns an executor for the mark operation.
func NewMarkExec() *markExec {
	return &markExec{
		fs:   filesystem.NewOSFileSystem(),
		goos: runtime.GOOS,
	}
}

// Execute overwrites the file at path with the marker payload. It fails
// before touching the filesystem when the platform is unsupported, and it
// never creates files: path must name an existing regular file.
//
// The write is in-place (open with O_TRUNC), not an atomic rename. The
// contract is "overwrite the contents of this inode"; the check-then-open
// window is accepted, the same as in the script this replaces.
func (e *markExec) Execute(path string) error {
	if !platform.Supported(e.goos) {
		return errUtils.WithExitCode(errUtils.ErrUnsupportedPlatform, 1)
	}

	info, err := e.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		// Missing paths, directories, special files and stat failures are
		// deliberately indistinguishable to the caller.
		return errUtils.WithExitCode(errUtils.ErrFileNotFound, 1)
	}

	f, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Wrapf(err, "open '%s' for writing", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error("Failed to close file", "file", path, "error", closeErr)
		}
	}()

	if _, err := f.Write([]byte(Marker)); err != nil {
		return errors.Wrapf(err, "write marker to '%s'", path)
	}

	log.Debug("Wrote marker", "file", path, "bytes", len(Marker))
	return nil
}
