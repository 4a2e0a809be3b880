package symconvert_test

import "math"

func mustNaN() float64 { return math.NaN() }

func mustInf(sign int) float64 { return math.Inf(sign) }
