package geometry

// DistanceFromPointToLine calculates the perpendicular distance from a point to the line through lineStart and lineEnd
func DistanceFromPointToLine(point, lineStart, lineEnd Vector) float64 {
	// Vector from line start to end
	lineVec := lineEnd.Sub(lineStart)
	// Vector from line start to point
	pointVec := point.Sub(lineStart)
	return Rejection(pointVec, lineVec).Magnitude()
}
