package hca

// athCurve is the per-band noise floor used during resolution calculation,
// built once from the stream's ath chunk and sample rate.
type athCurve [samplesPerSubframe]byte

func buildAthCurve(athType int, sampleRate int) (athCurve, error) {
	var c athCurve
	switch athType {
	case 0:
		// disabled: curve stays zero.
	case 1:
		acc := 0
		for i := range c {
			acc += sampleRate
			index := acc >> 13
			if index >= 654 {
				for j := i; j < len(c); j++ {
					c[j] = 0xFF
				}
				break
			}
			c[i] = athBaseCurve[index]
		}
	default:
		return c, errHeader("unsupported ATH type")
	}
	return c, nil
}
