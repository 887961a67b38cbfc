package utils

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	p := pp
	if p < 0 {
		p = -p
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	if pp < 0 {
		y = 1 / y
	}
	return
}
