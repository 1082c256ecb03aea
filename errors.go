package geopath

import "fmt"

// GeometryError is implemented by every error type geopath's geometric predicates
// and path engines can return. It exists so callers can distinguish "this input
// violated a documented precondition" from an ordinary Go error via a type switch
// or [errors.As], without depending on the concrete error types directly.
type GeometryError interface {
	error
	geometryError()
}

// DegeneratedCaseError reports that an operation was asked to build a geometric
// object from degenerate input, such as a line through two coincident points.
type DegeneratedCaseError struct {
	Reason string
}

func (e *DegeneratedCaseError) Error() string {
	return fmt.Sprintf("geopath: degenerated case: %s", e.Reason)
}

func (*DegeneratedCaseError) geometryError() {}

// NotInGeneralPositionError reports that an algorithm requiring general-position
// input (no two polygon vertices sharing an x-coordinate, a query point not
// falling exactly on a polygon edge, ...) encountered input that violates that
// assumption.
type NotInGeneralPositionError struct {
	Reason string
}

func (e *NotInGeneralPositionError) Error() string {
	if e.Reason == "" {
		return "geopath: input is not in general position"
	}
	return fmt.Sprintf("geopath: input is not in general position: %s", e.Reason)
}

func (*NotInGeneralPositionError) geometryError() {}

// ThreePointsAreCollinearError is a specialisation of [NotInGeneralPositionError]
// reporting that three specific points, expected to form a non-degenerate
// triangle, were found to be collinear.
type ThreePointsAreCollinearError struct {
	A, B, C fmt.Stringer
}

func (e *ThreePointsAreCollinearError) Error() string {
	return fmt.Sprintf("geopath: points %s, %s, %s are collinear", e.A, e.B, e.C)
}

func (*ThreePointsAreCollinearError) geometryError() {}

// Unwrap returns a [NotInGeneralPositionError] describing the same three
// points, so [errors.As] with a *NotInGeneralPositionError target matches a
// ThreePointsAreCollinearError too.
func (e *ThreePointsAreCollinearError) Unwrap() error {
	return &NotInGeneralPositionError{Reason: fmt.Sprintf("points %s, %s, %s are collinear", e.A, e.B, e.C)}
}

// BoundedFunnelConcaveError reports that a BoundedFunnel's three boundary points
// (cusp, first, second) would form a concave wedge, which a bounded funnel must
// never do by construction.
type BoundedFunnelConcaveError struct {
	Cusp, First, Second fmt.Stringer
}

func (e *BoundedFunnelConcaveError) Error() string {
	return fmt.Sprintf("geopath: bounded funnel at cusp %s with boundary %s, %s would be concave",
		e.Cusp, e.First, e.Second)
}

func (*BoundedFunnelConcaveError) geometryError() {}

// TooFewPointsError reports that a polygon was constructed from fewer than three
// points.
type TooFewPointsError struct {
	Count int
}

func (e *TooFewPointsError) Error() string {
	return fmt.Sprintf("geopath: a polygon needs at least 3 points, got %d", e.Count)
}

func (*TooFewPointsError) geometryError() {}
