package iceandfire

import (
	"net/url"
	"strings"
)

// EntityID returns the local id of an entity reference URL: the last non-empty
// path segment, ignoring any query or fragment. It returns "" when there is
// no such segment.
//
//	https://anapioficeandfire.com/api/houses/362      -> 362
//	https://anapioficeandfire.com/api/houses/362/?x=1 -> 362
func EntityID(ref string) string {
	path := ref
	if u, err := url.Parse(ref); err == nil {
		path = u.Path
	} else if i := strings.IndexAny(ref, "?#"); i >= 0 {
		path = ref[:i]
	}

	path = strings.TrimRight(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}

	return path
}
