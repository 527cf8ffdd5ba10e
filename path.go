package jsontable

import (
	"fmt"
	"strings"
)

// PathSeparator separates the segments of a dotted field path.
const PathSeparator = "."

// Path is a parsed dotted field path like "dashboard.nama".
// Each element is the key of a nested JSON object.
// A valid Path has at least one non-empty segment.
type Path []string

// ParsePath parses a dotted field path.
// An empty path or a path with an empty segment
// returns an error wrapping ErrInvalidPath.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(s, PathSeparator)
	for i, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrInvalidPath, i, s)
		}
	}
	return Path(segments), nil
}

// MustParsePath parses a dotted field path
// and panics if it is invalid.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate returns an error wrapping ErrInvalidPath
// if the path has no segments or an empty segment.
func (p Path) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for i, seg := range p {
		if seg == "" {
			return fmt.Errorf("%w: empty segment %d in %q", ErrInvalidPath, i, p.String())
		}
	}
	return nil
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}
