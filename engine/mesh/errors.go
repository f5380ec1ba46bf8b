package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedBuffer  = errors.New("malformed buffer")
	ErrInvalidIndex     = errors.New("index out of range")
	ErrInvalidFace      = errors.New("face references the same vertex more than once")
	ErrNonManifoldEdge  = errors.New("non-manifold edge")
	ErrDuplicateEdge    = errors.New("collapse would duplicate an existing edge")
	ErrDegenerateFace   = errors.New("collapse would create a degenerate face")
	ErrFaceInversion    = errors.New("collapse would flip a face")
	ErrCorruptTopology  = errors.New("corrupt topology")
	ErrNothingCollapsed = errors.New("no collapsible edge")
)

// CollapseError reports why CollapseEdge rejected an edge. The mesh is unchanged when it is
// returned. Reason is one of the collapse sentinels and is matched by errors.Is.
type CollapseError struct {
	Reason error
	// Edge is the edge that was asked to collapse.
	Edge int
	// Element is the offending edge or face id, depending on Reason.
	Element int
}

func (e *CollapseError) Error() string {
	return fmt.Sprintf("collapse of edge %d rejected: %v (element %d)", e.Edge, e.Reason, e.Element)
}

func (e *CollapseError) Unwrap() error {
	return e.Reason
}

func rejectCollapse(reason error, eid, element int) *CollapseError {
	return &CollapseError{Reason: reason, Edge: eid, Element: element}
}
