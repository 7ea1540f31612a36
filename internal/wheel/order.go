package wheel

// Order is the fixed arrangement of the 37 sectors around a European
// wheel, clockwise from the top pointer. Display mapping only; it never
// influences the drawn result.
var Order = []int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23, 10, 5,
	24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

const SectorAngle = 360.0 / 37

type Color string

const (
	Green Color = "green"
	Red   Color = "red"
	Black Color = "black"
)

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

func ColorOf(n int) Color {
	switch {
	case n == 0:
		return Green
	case redNumbers[n]:
		return Red
	default:
		return Black
	}
}

// IndexOf returns the sector index of a number on the wheel, or -1 when
// the number is not on the wheel.
func IndexOf(n int) int {
	for i, v := range Order {
		if v == n {
			return i
		}
	}
	return -1
}
