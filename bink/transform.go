package bink

import "math"

// dctIII computes an unnormalized inverse DCT (type III) of coefs in
// place: y[n] = x[0] + 2*sum_{k=1}^{N-1} x[k]*cos(pi/N*k*(n+0.5)).
//
// The original decoder's transform_dct is a hand-unrolled butterfly
// network specialized per frame size (a separate function body for each
// power of two from 4 through 2048), which its own source comments
// describe as "over-optimized" and earmark for replacement with a
// standard implementation. This is that standard implementation: a
// direct evaluation of the same DCT-III definition, independent of frame
// size.
func dctIII(coefs []float32) {
	n := len(coefs)
	out := make([]float32, n)
	for nIdx := 0; nIdx < n; nIdx++ {
		sum := float64(coefs[0])
		for k := 1; k < n; k++ {
			angle := math.Pi / float64(n) * float64(k) * (float64(nIdx) + 0.5)
			sum += 2 * float64(coefs[k]) * math.Cos(angle)
		}
		out[nIdx] = float32(sum)
	}
	copy(coefs, out)
}

// idft computes an unnormalized inverse real DFT of coefs in place, used
// by Bink 1.1's older RDFT mode in place of the DCT. coefs holds len(coefs)/2
// real/imaginary coefficient pairs packed the way unpack_channel lays
// them out: coefs[0] and coefs[1] are the DC and Nyquist bins, and
// coefs[2k]/coefs[2k+1] for k>=1 are the real/imaginary parts of bin k.
func idft(coefs []float32) {
	n := len(coefs)
	half := n / 2

	out := make([]float32, n)
	for t := 0; t < n; t++ {
		sum := float64(coefs[0]) + float64(coefs[1])*math.Cos(math.Pi*float64(t))
		for k := 1; k < half; k++ {
			re := float64(coefs[2*k])
			im := float64(coefs[2*k+1])
			angle := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += 2 * (re*math.Cos(angle) - im*math.Sin(angle))
		}
		out[t] = float32(sum)
	}
	copy(coefs, out)
}
