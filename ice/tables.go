package ice

// dctTransformCoefs are the sixteen base cosine coefficients the DCT
// decoder scales by a block's init_scale and each band's fixed gain to
// build its transform matrix.
var dctTransformCoefs = [dctMaxBands]float32{
	0.25, 0.35185099, 0.34676, 0.33832899,
	0.32664099, 0.31180599, 0.29396901, 0.27329999,
	0.25, 0.224292, 0.19642401, 0.166664,
	0.135299, 0.102631, 0.068975002, 0.034653999,
}

// dctTransformScales are the per-band gains applied on top of
// dctTransformCoefs when building the transform matrix.
var dctTransformScales = [dctMaxBands]float32{
	4.0, 6.0, 8.0, 10.0, 12.0, 12.0, 13.0, 15.0,
	16.0, 16.0, 20.0, 24.0, 28.0, 35.0, 41.0, 41.0,
}

// dctTransformSteps is, per band, how many of the eight transform rows
// that band's coefficient contributes to.
var dctTransformSteps = [dctMaxBands]int{
	1, 8, 4, 8, 2, 8, 4, 8,
	1, 8, 4, 8, 2, 8, 4, 8,
}
