package errors

import (
	"os"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Sentinel errors for the two handled failure categories. Their Error()
// strings are the exact diagnostics the legacy fixture script printed, and
// downstream test harnesses assert on them verbatim.
var (
	// ErrUnsupportedPlatform is returned when the tool runs on anything but Linux.
	ErrUnsupportedPlatform = errors.New("This script only works on Linux")

	// ErrFileNotFound is returned when the target path is not an existing regular file.
	// Directories, missing paths, and stat failures all collapse into this one error.
	ErrFileNotFound = errors.New("File not found")
)

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
