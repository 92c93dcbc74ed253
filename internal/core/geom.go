// Package core provides the value types shared by levels, the controller and
// the presentation layer. It contains no external dependencies (especially no
// Bubble Tea) to keep level logic pure and testable.
package core

import "fmt"

// Position is a cell coordinate on a level grid. X grows to the right and Y
// grows downwards, so (0, 0) is the top-left tile.
type Position struct {
	X, Y int
}

// Pos creates a position from its coordinates.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position shifted by the given delta.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// ClampTo restricts each axis independently into [0, width-1] x [0, height-1].
func (p Position) ClampTo(width, height int) Position {
	return Position{
		X: Clamp(p.X, 0, width-1),
		Y: Clamp(p.Y, 0, height-1),
	}
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
