package wheel

import "fmt"

// ComputeRotation returns the terminal rotation angle that parks the
// result's sector under the top pointer after fullRotations extra
// turns. Pure and reproducible for fixed inputs; the extra turns are
// visual only and carry no meaning. The returned angle is always
// strictly greater than prev so the wheel spins forward, never snaps
// back.
func ComputeRotation(prev float64, result int, fullRotations int) (float64, error) {
	idx := IndexOf(result)
	if idx < 0 {
		return 0, fmt.Errorf("result %d is not on the wheel", result)
	}
	if fullRotations < 1 {
		fullRotations = 1
	}
	targetAngle := float64(idx) * SectorAngle
	return prev + float64(fullRotations)*360 + (360 - targetAngle), nil
}
