package model

import "time"

// Draw represents a single historical drawing: a date plus the drawn numbers.
type Draw struct {
	Date    time.Time
	Numbers []int
}

// Contains reports whether the draw includes the given number.
func (d Draw) Contains(n int) bool {
	for _, v := range d.Numbers {
		if v == n {
			return true
		}
	}
	return false
}
