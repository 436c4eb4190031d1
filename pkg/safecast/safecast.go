package safecast

import (
	"math"
)

func Uint64ToInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		panic("out of bounds")
	}
	return int64(v)
}
