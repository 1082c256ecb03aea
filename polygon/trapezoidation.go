package polygon

import (
	"github.com/geopath/geopath"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/segment"
)

// findEdgesAboveAndBelow returns the indices of the polygon edges nearest
// above and below q (in that order), or ok=false if either cannot be found
// (q lies outside the polygon).
func (p *Polygon) findEdgesAboveAndBelow(q point.Point) (topEdgeIndex, botEdgeIndex int, ok bool, err error) {
	var distanceBelow, distanceAbove *float64
	var topIndex, botIndex *int
	var topNode, botNode *Vertex

	n := p.Len()
	for i := 0; i < n; i++ {
		curr := p.Point(i)
		next := p.Point(i + 1)

		if q.X() < min(curr.X(), next.X()) || q.X() > max(curr.X(), next.X()) {
			continue
		}

		if q.X() == curr.X() {
			if curr.Y() < q.Y() && (botNode == nil || curr.Y() > botNode.Y()) {
				v := curr
				botNode = &v
			} else if curr.Y() > q.Y() && (topNode == nil || curr.Y() > topNode.Y()) {
				v := curr
				topNode = &v
			}
		}

		if curr.X() == next.X() {
			continue
		}
		yOnEdge := segment.NewLine(curr.Point, next.Point).Y(q.X())

		if yOnEdge < q.Y() && (distanceBelow == nil || q.Y()-yOnEdge < *distanceBelow) {
			if curr.X() < next.X() {
				ix := i
				botIndex = &ix
				d := q.Y() - yOnEdge
				distanceBelow = &d
			} else {
				botIndex = nil
			}
		}
		if yOnEdge > q.Y() && (distanceAbove == nil || yOnEdge-q.Y() < *distanceAbove) {
			if curr.X() > next.X() {
				ix := i
				topIndex = &ix
				d := yOnEdge - q.Y()
				distanceAbove = &d
			} else {
				topIndex = nil
			}
		}
	}

	if topNode != nil && botNode != nil {
		return 0, 0, false, &geopath.NotInGeneralPositionError{
			Reason: "query point shares an x-coordinate with two polygon vertices on opposite sides",
		}
	}

	if topIndex == nil && topNode != nil {
		if point.Turn(topNode.Point, p.SuccVertex(*topNode).Point, q) != point.Clockwise {
			ix := *topNode.Index
			topIndex = &ix
		} else {
			ix := p.Prev(*topNode.Index)
			topIndex = &ix
		}
	}

	if botIndex == nil && botNode != nil {
		if point.Turn(p.PredVertex(*botNode).Point, botNode.Point, q) != point.Clockwise {
			ix := p.Prev(*botNode.Index)
			botIndex = &ix
		} else {
			ix := *botNode.Index
			botIndex = &ix
		}
	}

	if topIndex == nil || botIndex == nil {
		return 0, 0, false, nil
	}

	return *topIndex, *botIndex, true, nil
}

// TrapezoidAt returns the trapezoid containing q, and true, or ok=false if q
// lies outside the polygon.
func (p *Polygon) TrapezoidAt(q point.Point) (Trapezoid, bool, error) {
	topEdgeIx, botEdgeIx, ok, err := p.findEdgesAboveAndBelow(q)
	if err != nil {
		return Trapezoid{}, false, err
	}
	if !ok {
		return Trapezoid{}, false, nil
	}

	vTopLeft := p.Point(topEdgeIx + 1)
	vTopRight := p.Point(topEdgeIx)
	vBotLeft := p.Point(botEdgeIx)
	vBotRight := p.Point(botEdgeIx + 1)

	var left, right Vertex
	var topLeftIx, botLeftIx, topRightIx, botRightIx *int

	switch {
	case vTopLeft.X() > vBotLeft.X():
		left = vTopLeft
		topLeftIx = vTopLeft.Index
	case vBotLeft.X() > vTopLeft.X():
		left = vBotLeft
		botLeftIx = vBotLeft.Index
	default:
		left = vBotLeft
		topLeftIx = vTopLeft.Index
		botLeftIx = vBotLeft.Index
	}

	switch {
	case vTopRight.X() < vBotRight.X():
		right = vTopRight
		topRightIx = vTopRight.Index
	case vBotRight.X() < vTopRight.X():
		right = vBotRight
		botRightIx = vBotRight.Index
	default:
		right = vBotRight
		topRightIx = vTopRight.Index
		botRightIx = vBotRight.Index
	}

	topLine := segment.NewLine(vTopLeft.Point, vTopRight.Point)
	botLine := segment.NewLine(vBotLeft.Point, vBotRight.Point)

	n := p.Len()
	for i := 0; i < n; i++ {
		curr := p.Point(i)

		withinBand := botLine.Y(curr.X()) <= curr.Y() && curr.Y() <= topLine.Y(curr.X())

		if curr.X() > left.X() && curr.X() < q.X() &&
			p.Point(p.Prev(i)).X() <= curr.X() && p.Point(p.Next(i)).X() <= curr.X() &&
			withinBand {
			left = curr
			topLeftIx, botLeftIx = nil, nil
		}
		if curr.X() < right.X() && curr.X() > q.X() &&
			p.Point(p.Prev(i)).X() >= curr.X() && p.Point(p.Next(i)).X() >= curr.X() &&
			withinBand {
			right = curr
			topRightIx, botRightIx = nil, nil
		}
	}

	xLeft, xRight := left.X(), right.X()
	yLeft1 := vTopLeft.Y()
	if xLeft != vTopLeft.X() {
		yLeft1 = topLine.Y(xLeft)
	}
	yRight1 := vTopRight.Y()
	if xRight != vTopRight.X() {
		yRight1 = topLine.Y(xRight)
	}
	yLeft2 := vBotLeft.Y()
	if xLeft != vBotLeft.X() {
		yLeft2 = botLine.Y(xLeft)
	}
	yRight2 := vBotRight.Y()
	if xRight != vBotRight.X() {
		yRight2 = botLine.Y(xRight)
	}

	return Trapezoid{
		XLeft: xLeft, XRight: xRight,
		YLeft1: yLeft1, YRight1: yRight1,
		YLeft2: yLeft2, YRight2: yRight2,
		TopEdgeIndex: topEdgeIx, BotEdgeIndex: botEdgeIx,
		TopLeftIndex: topLeftIx, BotLeftIndex: botLeftIx,
		TopRightIndex: topRightIx, BotRightIndex: botRightIx,
	}, true, nil
}

// NeighbourSide selects which side(s) of a trapezoid [Polygon.NeighbourTrapezoids]
// should report.
type NeighbourSide uint8

const (
	// NeighbourLeft selects the trapezoid(s) to the left.
	NeighbourLeft NeighbourSide = 0b10
	// NeighbourRight selects the trapezoid(s) to the right.
	NeighbourRight NeighbourSide = 0b01
	// NeighbourBoth selects trapezoids on both sides.
	NeighbourBoth = NeighbourLeft | NeighbourRight
)

// edgeLine builds the line through a and b, reporting
// [geopath.NotInGeneralPositionError] instead of constructing a line that
// would panic on a later Y query, for the case where a and b are the two
// endpoints of a vertical polygon edge.
func edgeLine(a, b point.Point) (segment.Line, error) {
	if a.X() == b.X() {
		return segment.Line{}, &geopath.NotInGeneralPositionError{
			Reason: "a polygon edge bordering a trapezoid corner is vertical",
		}
	}
	return segment.NewLine(a, b), nil
}

// NeighbourTrapezoids returns the trapezoids neighbouring t on the requested
// side(s).
//
// This runs in O(n): at most four neighbours are probed, one per corner, and
// each probe is one [Polygon.TrapezoidAt] call costing O(n).
func (p *Polygon) NeighbourTrapezoids(t Trapezoid, which NeighbourSide) ([]Trapezoid, error) {
	const dist = 1e-6

	var topLeft, botLeft, topRight, botRight *Trapezoid

	if which&NeighbourLeft != 0 {
		var line segment.Line
		var err error
		if t.TopLeftIndex == nil {
			line, err = edgeLine(p.Point(t.TopEdgeIndex).Point, p.Point(t.TopEdgeIndex+1).Point)
		} else {
			line, err = edgeLine(p.Point(*t.TopLeftIndex).Point, p.Point(*t.TopLeftIndex+1).Point)
		}
		if err != nil {
			return nil, err
		}
		probe := point.New(t.XLeft-dist, line.Y(t.XLeft-dist)-dist)
		tr, ok, err := p.TrapezoidAt(probe)
		if err != nil {
			return nil, err
		}
		if ok {
			topLeft = &tr
		}

		if t.BotLeftIndex == nil {
			line, err = edgeLine(p.Point(t.BotEdgeIndex).Point, p.Point(t.BotEdgeIndex+1).Point)
		} else {
			line, err = edgeLine(p.Point(*t.BotLeftIndex-1).Point, p.Point(*t.BotLeftIndex).Point)
		}
		if err != nil {
			return nil, err
		}
		probe = point.New(t.XLeft-dist, line.Y(t.XLeft-dist)+dist)
		tr, ok, err = p.TrapezoidAt(probe)
		if err != nil {
			return nil, err
		}
		if ok {
			botLeft = &tr
		}
	}

	if which&NeighbourRight != 0 {
		var line segment.Line
		var err error
		if t.TopRightIndex == nil {
			line, err = edgeLine(p.Point(t.TopEdgeIndex).Point, p.Point(t.TopEdgeIndex+1).Point)
		} else {
			line, err = edgeLine(p.Point(*t.TopRightIndex-1).Point, p.Point(*t.TopRightIndex).Point)
		}
		if err != nil {
			return nil, err
		}
		probe := point.New(t.XRight+dist, line.Y(t.XRight+dist)-dist)
		tr, ok, err := p.TrapezoidAt(probe)
		if err != nil {
			return nil, err
		}
		if ok {
			topRight = &tr
		}

		if t.BotRightIndex == nil {
			line, err = edgeLine(p.Point(t.BotEdgeIndex).Point, p.Point(t.BotEdgeIndex+1).Point)
		} else {
			line, err = edgeLine(p.Point(*t.BotRightIndex).Point, p.Point(*t.BotRightIndex+1).Point)
		}
		if err != nil {
			return nil, err
		}
		probe = point.New(t.XRight+dist, line.Y(t.XRight+dist)+dist)
		tr, ok, err = p.TrapezoidAt(probe)
		if err != nil {
			return nil, err
		}
		if ok {
			botRight = &tr
		}
	}

	var res []Trapezoid
	if which&NeighbourLeft != 0 && topLeft != nil {
		res = append(res, *topLeft)
	}
	if which&NeighbourLeft != 0 && botLeft != nil && (topLeft == nil || !topLeft.Eq(*botLeft)) {
		res = append(res, *botLeft)
	}
	if which&NeighbourRight != 0 && botRight != nil {
		res = append(res, *botRight)
	}
	if which&NeighbourRight != 0 && topRight != nil && (botRight == nil || !topRight.Eq(*botRight)) {
		res = append(res, *topRight)
	}

	return res, nil
}
