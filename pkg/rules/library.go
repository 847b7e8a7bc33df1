package rules

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// MinLibraryMajorVersion is the lowest predicate-library major version the
// engine accepts. Older libraries changed lookup semantics and are rejected
// with ErrUnsupportedLibraryVersion.
const MinLibraryMajorVersion = 11

// Library is the pluggable predicate library: an external catalog of named
// boolean checks plus a semantic version identifier. It is loaded lazily on
// the first by-name predicate reference.
type Library interface {
	// Version returns the library's semantic version, e.g. "13.1.0".
	Version() string

	// Predicate looks up a named check. The second return value reports
	// whether the name is known.
	Predicate(name string) (Predicate, bool)
}

// LibraryLoader produces the predicate library on first use. Returning an
// error or a nil Library marks the library unavailable for the rest of the
// process; by-name lookups then fail with ErrMissingPredicate instead of
// crashing the load step.
type LibraryLoader func() (Library, error)

type libStatus int

const (
	libUnloaded libStatus = iota
	libLoaded
	libUnavailable
	libUnsupported
)

// libraryState memoizes the one-time load. A plain sync.Once is not enough:
// an unsupported version must not be cached as loaded, and registering a new
// loader must reset the outcome.
type libraryState struct {
	mu      sync.Mutex
	status  libStatus
	loader  LibraryLoader
	lib     Library
	version string // detected version when status is libUnsupported
}

var library libraryState

// RegisterLibraryLoader installs the loader for the pluggable predicate
// library and discards any memoized load outcome. Importing pkg/checks
// installs the default loader; call this to substitute another library.
func RegisterLibraryLoader(loader LibraryLoader) {
	library.mu.Lock()
	defer library.mu.Unlock()
	library.loader = loader
	library.status = libUnloaded
	library.lib = nil
	library.version = ""
}

// lookupPredicate resolves a by-name predicate reference, loading the library
// on first use. A nil predicate with a nil error means the name is unknown or
// the library is unavailable; the caller reports ErrMissingPredicate when the
// rule is actually evaluated.
func lookupPredicate(name string) (Predicate, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	switch library.status {
	case libUnloaded:
		if library.loader == nil {
			library.status = libUnavailable
			return nil, nil
		}
		lib, err := library.loader()
		if err != nil || lib == nil {
			library.status = libUnavailable
			return nil, nil
		}
		version := lib.Version()
		if major, ok := majorVersion(version); !ok || major < MinLibraryMajorVersion {
			library.status = libUnsupported
			library.version = version
			return nil, unsupportedVersionError(version)
		}
		library.status = libLoaded
		library.lib = lib
	case libUnavailable:
		return nil, nil
	case libUnsupported:
		return nil, unsupportedVersionError(library.version)
	}

	p, ok := library.lib.Predicate(name)
	if !ok {
		return nil, nil
	}
	return p, nil
}

func unsupportedVersionError(detected string) error {
	return fmt.Errorf("%w: detected %s, minimum supported %d.0.0",
		ErrUnsupportedLibraryVersion, detected, MinLibraryMajorVersion)
}

func majorVersion(version string) (int, bool) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if idx := strings.IndexByte(version, '.'); idx != -1 {
		version = version[:idx]
	}
	major, err := strconv.Atoi(version)
	if err != nil {
		return 0, false
	}
	return major, true
}
