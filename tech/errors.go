package tech

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is matched by every UnsupportedError.
var ErrUnsupported = errors.New("unsupported for this technology node")

// UnsupportedError is returned by a model that has no validated equations
// for the selected node. It is never a zero result.
type UnsupportedError struct {
	Node      Node
	Model     string
	Supported []Node
}

func (e *UnsupportedError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("%s is not supported for %s", e.Model, e.Node)
	}

	names := make([]string, len(e.Supported))
	for i, n := range e.Supported {
		names[i] = n.String()
	}

	var list string
	if len(names) == 1 {
		list = names[0]
	} else {
		list = strings.Join(names[:len(names)-1], ", ") +
			" and " + names[len(names)-1]
	}

	return fmt.Sprintf("%s are only supported for %s, not %s",
		e.Model, list, e.Node)
}

// Is makes errors.Is(err, ErrUnsupported) succeed.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
