package hca

import "math"

// f32 reinterprets the bit pattern of a CRI-authored 32-bit float constant,
// the form these tables ship in upstream (as IEEE-754 hex, not decimal).
func f32(bits uint32) float32 {
	return math.Float32frombits(bits)
}

// crc16Table is CRI's CRC-16 lookup table, used both for the header
// checksum and the per-frame checksum.
var crc16Table = [256]uint16{
	0x0000, 0x8005, 0x800F, 0x000A, 0x801B, 0x001E, 0x0014, 0x8011, 0x8033, 0x0036, 0x003C, 0x8039, 0x0028, 0x802D, 0x8027, 0x0022,
	0x8063, 0x0066, 0x006C, 0x8069, 0x0078, 0x807D, 0x8077, 0x0072, 0x0050, 0x8055, 0x805F, 0x005A, 0x804B, 0x004E, 0x0044, 0x8041,
	0x80C3, 0x00C6, 0x00CC, 0x80C9, 0x00D8, 0x80DD, 0x80D7, 0x00D2, 0x00F0, 0x80F5, 0x80FF, 0x00FA, 0x80EB, 0x00EE, 0x00E4, 0x80E1,
	0x00A0, 0x80A5, 0x80AF, 0x00AA, 0x80BB, 0x00BE, 0x00B4, 0x80B1, 0x8093, 0x0096, 0x009C, 0x8099, 0x0088, 0x808D, 0x8087, 0x0082,
	0x8183, 0x0186, 0x018C, 0x8189, 0x0198, 0x819D, 0x8197, 0x0192, 0x01B0, 0x81B5, 0x81BF, 0x01BA, 0x81AB, 0x01AE, 0x01A4, 0x81A1,
	0x01E0, 0x81E5, 0x81EF, 0x01EA, 0x81FB, 0x01FE, 0x01F4, 0x81F1, 0x81D3, 0x01D6, 0x01DC, 0x81D9, 0x01C8, 0x81CD, 0x81C7, 0x01C2,
	0x0140, 0x8145, 0x814F, 0x014A, 0x815B, 0x015E, 0x0154, 0x8151, 0x8173, 0x0176, 0x017C, 0x8179, 0x0168, 0x816D, 0x8167, 0x0162,
	0x8123, 0x0126, 0x012C, 0x8129, 0x0138, 0x813D, 0x8137, 0x0132, 0x0110, 0x8115, 0x811F, 0x011A, 0x810B, 0x010E, 0x0104, 0x8101,
	0x8303, 0x0306, 0x030C, 0x8309, 0x0318, 0x831D, 0x8317, 0x0312, 0x0330, 0x8335, 0x833F, 0x033A, 0x832B, 0x032E, 0x0324, 0x8321,
	0x0360, 0x8365, 0x836F, 0x036A, 0x837B, 0x037E, 0x0374, 0x8371, 0x8353, 0x0356, 0x035C, 0x8359, 0x0348, 0x834D, 0x8347, 0x0342,
	0x03C0, 0x83C5, 0x83CF, 0x03CA, 0x83DB, 0x03DE, 0x03D4, 0x83D1, 0x83F3, 0x03F6, 0x03FC, 0x83F9, 0x03E8, 0x83ED, 0x83E7, 0x03E2,
	0x83A3, 0x03A6, 0x03AC, 0x83A9, 0x03B8, 0x83BD, 0x83B7, 0x03B2, 0x0390, 0x8395, 0x839F, 0x039A, 0x838B, 0x038E, 0x0384, 0x8381,
	0x0280, 0x8285, 0x828F, 0x028A, 0x829B, 0x029E, 0x0294, 0x8291, 0x82B3, 0x02B6, 0x02BC, 0x82B9, 0x02A8, 0x82AD, 0x82A7, 0x02A2,
	0x82E3, 0x02E6, 0x02EC, 0x82E9, 0x02F8, 0x82FD, 0x82F7, 0x02F2, 0x02D0, 0x82D5, 0x82DF, 0x02DA, 0x82CB, 0x02CE, 0x02C4, 0x82C1,
	0x8243, 0x0246, 0x024C, 0x8249, 0x0258, 0x825D, 0x8257, 0x0252, 0x0270, 0x8275, 0x827F, 0x027A, 0x826B, 0x026E, 0x0264, 0x8261,
	0x0220, 0x8225, 0x822F, 0x022A, 0x823B, 0x023E, 0x0234, 0x8231, 0x8213, 0x0216, 0x021C, 0x8219, 0x0208, 0x820D, 0x8207, 0x0202,
}

// checksum16 is CRC-16 over data, matching CRI's crc16_checksum: headers and
// frames are both constructed so that checksum(buf) == 0 when intact.
func checksum16(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum = (sum << 8) ^ crc16Table[(sum>>8)^uint16(b)]
	}
	return sum
}

// athBaseCurve is the base Absolute Threshold of Hearing curve, sampled for
// 41856Hz; ath_init1 rescales it by sample rate.
var athBaseCurve = [656]byte{
	0x78, 0x5F, 0x56, 0x51, 0x4E, 0x4C, 0x4B, 0x49, 0x48, 0x48, 0x47, 0x46, 0x46, 0x45, 0x45, 0x45,
	0x44, 0x44, 0x44, 0x44, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42,
	0x42, 0x42, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x40, 0x40, 0x40, 0x40,
	0x40, 0x40, 0x40, 0x40, 0x40, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F,
	0x3F, 0x3F, 0x3F, 0x3E, 0x3E, 0x3E, 0x3E, 0x3E, 0x3E, 0x3D, 0x3D, 0x3D, 0x3D, 0x3D, 0x3D, 0x3D,
	0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B,
	0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B,
	0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3B, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C,
	0x3D, 0x3D, 0x3D, 0x3D, 0x3D, 0x3D, 0x3D, 0x3D, 0x3E, 0x3E, 0x3E, 0x3E, 0x3E, 0x3E, 0x3E, 0x3F,
	0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F, 0x3F,
	0x3F, 0x3F, 0x3F, 0x3F, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40,
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41,
	0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41,
	0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42,
	0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x43, 0x43, 0x43,
	0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x44, 0x44,
	0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x45, 0x45, 0x45, 0x45,
	0x45, 0x45, 0x45, 0x45, 0x45, 0x45, 0x45, 0x45, 0x46, 0x46, 0x46, 0x46, 0x46, 0x46, 0x46, 0x46,
	0x46, 0x46, 0x47, 0x47, 0x47, 0x47, 0x47, 0x47, 0x47, 0x47, 0x47, 0x47, 0x48, 0x48, 0x48, 0x48,
	0x48, 0x48, 0x48, 0x48, 0x49, 0x49, 0x49, 0x49, 0x49, 0x49, 0x49, 0x49, 0x4A, 0x4A, 0x4A, 0x4A,
	0x4A, 0x4A, 0x4A, 0x4A, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4C, 0x4C, 0x4C, 0x4C, 0x4C,
	0x4C, 0x4D, 0x4D, 0x4D, 0x4D, 0x4D, 0x4D, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4F, 0x4F, 0x4F,
	0x4F, 0x4F, 0x4F, 0x50, 0x50, 0x50, 0x50, 0x50, 0x51, 0x51, 0x51, 0x51, 0x51, 0x52, 0x52, 0x52,
	0x52, 0x52, 0x53, 0x53, 0x53, 0x53, 0x54, 0x54, 0x54, 0x54, 0x54, 0x55, 0x55, 0x55, 0x55, 0x56,
	0x56, 0x56, 0x56, 0x57, 0x57, 0x57, 0x57, 0x57, 0x58, 0x58, 0x58, 0x59, 0x59, 0x59, 0x59, 0x5A,
	0x5A, 0x5A, 0x5A, 0x5B, 0x5B, 0x5B, 0x5B, 0x5C, 0x5C, 0x5C, 0x5D, 0x5D, 0x5D, 0x5D, 0x5E, 0x5E,
	0x5E, 0x5F, 0x5F, 0x5F, 0x60, 0x60, 0x60, 0x61, 0x61, 0x61, 0x61, 0x62, 0x62, 0x62, 0x63, 0x63,
	0x63, 0x64, 0x64, 0x64, 0x65, 0x65, 0x66, 0x66, 0x66, 0x67, 0x67, 0x67, 0x68, 0x68, 0x68, 0x69,
	0x69, 0x6A, 0x6A, 0x6A, 0x6B, 0x6B, 0x6B, 0x6C, 0x6C, 0x6D, 0x6D, 0x6D, 0x6E, 0x6E, 0x6F, 0x6F,
	0x70, 0x70, 0x70, 0x71, 0x71, 0x72, 0x72, 0x73, 0x73, 0x73, 0x74, 0x74, 0x75, 0x75, 0x76, 0x76,
	0x77, 0x77, 0x78, 0x78, 0x78, 0x79, 0x79, 0x7A, 0x7A, 0x7B, 0x7B, 0x7C, 0x7C, 0x7D, 0x7D, 0x7E,
	0x7E, 0x7F, 0x7F, 0x80, 0x80, 0x81, 0x81, 0x82, 0x83, 0x83, 0x84, 0x84, 0x85, 0x85, 0x86, 0x86,
	0x87, 0x88, 0x88, 0x89, 0x89, 0x8A, 0x8A, 0x8B, 0x8C, 0x8C, 0x8D, 0x8D, 0x8E, 0x8F, 0x8F, 0x90,
	0x90, 0x91, 0x92, 0x92, 0x93, 0x94, 0x94, 0x95, 0x95, 0x96, 0x97, 0x97, 0x98, 0x99, 0x99, 0x9A,
	0x9B, 0x9B, 0x9C, 0x9D, 0x9D, 0x9E, 0x9F, 0xA0, 0xA0, 0xA1, 0xA2, 0xA2, 0xA3, 0xA4, 0xA5, 0xA5,
	0xA6, 0xA7, 0xA7, 0xA8, 0xA9, 0xAA, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAE, 0xAF, 0xB0, 0xB1, 0xB1,
	0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB6, 0xB7, 0xB8, 0xB9, 0xBA, 0xBA, 0xBB, 0xBC, 0xBD, 0xBE, 0xBF,
	0xC0, 0xC1, 0xC1, 0xC2, 0xC3, 0xC4, 0xC5, 0xC6, 0xC7, 0xC8, 0xC9, 0xC9, 0xCA, 0xCB, 0xCC, 0xCD,
	0xCE, 0xCF, 0xD0, 0xD1, 0xD2, 0xD3, 0xD4, 0xD5, 0xD6, 0xD7, 0xD8, 0xD9, 0xDA, 0xDB, 0xDC, 0xDD,
	0xDE, 0xDF, 0xE0, 0xE1, 0xE2, 0xE3, 0xE4, 0xE5, 0xE6, 0xE7, 0xE8, 0xE9, 0xEA, 0xEB, 0xED, 0xEE,
	0xEF, 0xF0, 0xF1, 0xF2, 0xF3, 0xF4, 0xF5, 0xF7, 0xF8, 0xF9, 0xFA, 0xFB, 0xFC, 0xFD, 0xFF, 0xFF,
}

// scaleToResolutionCurve maps a clamped noise-curve position to a
// resolution (bit-depth class) for dequantization.
var scaleToResolutionCurve = [64]byte{
	0x0E, 0x0E, 0x0E, 0x0E, 0x0E, 0x0E, 0x0D, 0x0D,
	0x0D, 0x0D, 0x0D, 0x0D, 0x0C, 0x0C, 0x0C, 0x0C,
	0x0C, 0x0C, 0x0B, 0x0B, 0x0B, 0x0B, 0x0B, 0x0B,
	0x0A, 0x0A, 0x0A, 0x0A, 0x0A, 0x0A, 0x0A, 0x09,
	0x09, 0x09, 0x09, 0x09, 0x09, 0x08, 0x08, 0x08,
	0x08, 0x08, 0x08, 0x07, 0x06, 0x06, 0x05, 0x04,
	0x04, 0x04, 0x03, 0x03, 0x03, 0x02, 0x02, 0x02,
	0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// dequantizerScalingTable converts a 6-bit scalefactor index into a scale,
// generated from sqrt(128) * (2^(53/128))^(scale_factor-63).
var dequantizerScalingTable = [64]float32{
	f32(0x342A8D26), f32(0x34633F89), f32(0x3497657D), f32(0x34C9B9BE), f32(0x35066491), f32(0x353311C4), f32(0x356E9910), f32(0x359EF532),
	f32(0x35D3CCF1), f32(0x360D1ADF), f32(0x363C034A), f32(0x367A83B3), f32(0x36A6E595), f32(0x36DE60F5), f32(0x371426FF), f32(0x3745672A),
	f32(0x37838359), f32(0x37AF3B79), f32(0x37E97C38), f32(0x381B8D3A), f32(0x384F4319), f32(0x388A14D5), f32(0x38B7FBF0), f32(0x38F5257D),
	f32(0x3923520F), f32(0x39599D16), f32(0x3990FA4D), f32(0x39C12C4D), f32(0x3A00B1ED), f32(0x3A2B7A3A), f32(0x3A647B6D), f32(0x3A9837F0),
	f32(0x3ACAD226), f32(0x3B071F62), f32(0x3B340AAF), f32(0x3B6FE4BA), f32(0x3B9FD228), f32(0x3BD4F35B), f32(0x3C0DDF04), f32(0x3C3D08A4),
	f32(0x3C7BDFED), f32(0x3CA7CD94), f32(0x3CDF9613), f32(0x3D14F4F0), f32(0x3D467991), f32(0x3D843A29), f32(0x3DB02F0E), f32(0x3DEAC0C7),
	f32(0x3E1C6573), f32(0x3E506334), f32(0x3E8AD4C6), f32(0x3EB8FBAF), f32(0x3EF67A41), f32(0x3F243516), f32(0x3F5ACB94), f32(0x3F91C3D3),
	f32(0x3FC238D2), f32(0x400164D2), f32(0x402C6897), f32(0x4065B907), f32(0x40990B88), f32(0x40CBEC15), f32(0x4107DB35), f32(0x413504F3),
}

// quantizerStepSize converts a resolution index into a dequantization step.
var quantizerStepSize = [16]float32{
	f32(0x00000000), f32(0x3F2AAAAB), f32(0x3ECCCCCD), f32(0x3E924925), f32(0x3E638E39), f32(0x3E3A2E8C), f32(0x3E1D89D9), f32(0x3E088889),
	f32(0x3D842108), f32(0x3D020821), f32(0x3C810204), f32(0x3C008081), f32(0x3B804020), f32(0x3B002008), f32(0x3A801002), f32(0x3A000801),
}

// quantizedSpectrumMaxBits gives, per resolution, the number of bits the raw
// prefix code occupies before codebook-specific trimming.
var quantizedSpectrumMaxBits = [16]byte{0, 2, 3, 3, 4, 4, 4, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// quantizedSpectrumBits gives the actual bit-length of the prefix code
// indexed by (resolution<<4 | raw_code), for resolution < 8.
var quantizedSpectrumBits = [128]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	2, 2, 2, 2, 2, 2, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0,
	2, 2, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4,
	3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
}

// quantizedSpectrumValue gives the dequantized codebook value matching
// quantizedSpectrumBits, for resolution < 8.
var quantizedSpectrumValue = [128]float32{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, 1, -1, -1, 2, -2, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, -1, 2, -2, 3, -3, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, 1, -1, -1, 2, 2, -2, -2, 3, 3, -3, -3, 4, -4,
	0, 0, 1, 1, -1, -1, 2, 2, -2, -2, 3, -3, 4, -4, 5, -5,
	0, 0, 1, 1, -1, -1, 2, -2, 3, -3, 4, -4, 5, -5, 6, -6,
	0, 0, 1, -1, 2, -2, 3, -3, 4, -4, 5, -5, 6, -6, 7, -7,
}

// scaleConversionTable reconstructs a high-frequency band's scale from the
// difference between its target and its source low-band scalefactor.
var scaleConversionTable = [128]float32{
	f32(0x00000000), f32(0x00000000), f32(0x32A0B051), f32(0x32D61B5E), f32(0x330EA43A), f32(0x333E0F68), f32(0x337D3E0C), f32(0x33A8B6D5),
	f32(0x33E0CCDF), f32(0x3415C3FF), f32(0x34478D75), f32(0x3484F1F6), f32(0x34B123F6), f32(0x34EC0719), f32(0x351D3EDA), f32(0x355184DF),
	f32(0x358B95C2), f32(0x35B9FCD2), f32(0x35F7D0DF), f32(0x36251958), f32(0x365BFBB8), f32(0x36928E72), f32(0x36C346CD), f32(0x370218AF),
	f32(0x372D583F), f32(0x3766F85B), f32(0x3799E046), f32(0x37CD078C), f32(0x3808980F), f32(0x38360094), f32(0x38728177), f32(0x38A18FAF),
	f32(0x38D744FD), f32(0x390F6A81), f32(0x393F179A), f32(0x397E9E11), f32(0x39A9A15B), f32(0x39E2055B), f32(0x3A16942D), f32(0x3A48A2D8),
	f32(0x3A85AAC3), f32(0x3AB21A32), f32(0x3AED4F30), f32(0x3B1E196E), f32(0x3B52A81E), f32(0x3B8C57CA), f32(0x3BBAFF5B), f32(0x3BF9295A),
	f32(0x3C25FED7), f32(0x3C5D2D82), f32(0x3C935A2B), f32(0x3CC4563F), f32(0x3D02CD87), f32(0x3D2E4934), f32(0x3D68396A), f32(0x3D9AB62B),
	f32(0x3DCE248C), f32(0x3E0955EE), f32(0x3E36FD92), f32(0x3E73D290), f32(0x3EA27043), f32(0x3ED87039), f32(0x3F1031DC), f32(0x3F40213B),
	f32(0x3F800000), f32(0x3FAA8D26), f32(0x3FE33F89), f32(0x4017657D), f32(0x4049B9BE), f32(0x40866491), f32(0x40B311C4), f32(0x40EE9910),
	f32(0x411EF532), f32(0x4153CCF1), f32(0x418D1ADF), f32(0x41BC034A), f32(0x41FA83B3), f32(0x4226E595), f32(0x425E60F5), f32(0x429426FF),
	f32(0x42C5672A), f32(0x43038359), f32(0x432F3B79), f32(0x43697C38), f32(0x439B8D3A), f32(0x43CF4319), f32(0x440A14D5), f32(0x4437FBF0),
	f32(0x4475257D), f32(0x44A3520F), f32(0x44D99D16), f32(0x4510FA4D), f32(0x45412C4D), f32(0x4580B1ED), f32(0x45AB7A3A), f32(0x45E47B6D),
	f32(0x461837F0), f32(0x464AD226), f32(0x46871F62), f32(0x46B40AAF), f32(0x46EFE4BA), f32(0x471FD228), f32(0x4754F35B), f32(0x478DDF04),
	f32(0x47BD08A4), f32(0x47FBDFED), f32(0x4827CD94), f32(0x485F9613), f32(0x4894F4F0), f32(0x48C67991), f32(0x49043A29), f32(0x49302F0E),
	f32(0x496AC0C7), f32(0x499C6573), f32(0x49D06334), f32(0x4A0AD4C6), f32(0x4A38FBAF), f32(0x4A767A41), f32(0x4AA43516), f32(0x4ADACB94),
	f32(0x4B11C3D3), f32(0x4B4238D2), f32(0x4B8164D2), f32(0x4BAC6897), f32(0x4BE5B907), f32(0x4C190B88), f32(0x4C4BEC15), f32(0x00000000),
}

// intensityRatioTable converts a 4-bit intensity index into a joint-stereo
// mixing ratio for the primary channel; ratio-2.0 gives the secondary's.
var intensityRatioTable = [16]float32{
	f32(0x40000000), f32(0x3FEDB6DB), f32(0x3FDB6DB7), f32(0x3FC92492), f32(0x3FB6DB6E), f32(0x3FA49249), f32(0x3F924925), f32(0x3F800000),
	f32(0x3F5B6DB7), f32(0x3F36DB6E), f32(0x3F124925), f32(0x3EDB6DB7), f32(0x3E924925), f32(0x3E124925), f32(0x00000000), f32(0x00000000),
}

// mdctBits is log2(samplesPerSubframe): 128 = 1<<7.
const mdctBits = 7

// sinTables and cosTables are the 7 DCT-IV butterfly stages (64 entries
// each) used by runIMDCT in decoder.go.
var sinTables = [7][64]float32{
	{
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
		f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75), f32(0x3DA73D75),
	},
	{
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
		f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31), f32(0x3F7B14BE), f32(0x3F54DB31),
	},
	{
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
		f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403), f32(0x3F7EC46D), f32(0x3F74FA0B), f32(0x3F61C598), f32(0x3F45E403),
	},
	{
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
		f32(0x3F7FB10F), f32(0x3F7D3AAC), f32(0x3F7853F8), f32(0x3F710908), f32(0x3F676BD8), f32(0x3F5B941A), f32(0x3F4D9F02), f32(0x3F3DAEF9),
	},
	{
		f32(0x3F7FEC43), f32(0x3F7F4E6D), f32(0x3F7E1324), f32(0x3F7C3B28), f32(0x3F79C79D), f32(0x3F76BA07), f32(0x3F731447), f32(0x3F6ED89E),
		f32(0x3F6A09A7), f32(0x3F64AA59), f32(0x3F5EBE05), f32(0x3F584853), f32(0x3F514D3D), f32(0x3F49D112), f32(0x3F41D870), f32(0x3F396842),
		f32(0x3F7FEC43), f32(0x3F7F4E6D), f32(0x3F7E1324), f32(0x3F7C3B28), f32(0x3F79C79D), f32(0x3F76BA07), f32(0x3F731447), f32(0x3F6ED89E),
		f32(0x3F6A09A7), f32(0x3F64AA59), f32(0x3F5EBE05), f32(0x3F584853), f32(0x3F514D3D), f32(0x3F49D112), f32(0x3F41D870), f32(0x3F396842),
		f32(0x3F7FEC43), f32(0x3F7F4E6D), f32(0x3F7E1324), f32(0x3F7C3B28), f32(0x3F79C79D), f32(0x3F76BA07), f32(0x3F731447), f32(0x3F6ED89E),
		f32(0x3F6A09A7), f32(0x3F64AA59), f32(0x3F5EBE05), f32(0x3F584853), f32(0x3F514D3D), f32(0x3F49D112), f32(0x3F41D870), f32(0x3F396842),
		f32(0x3F7FEC43), f32(0x3F7F4E6D), f32(0x3F7E1324), f32(0x3F7C3B28), f32(0x3F79C79D), f32(0x3F76BA07), f32(0x3F731447), f32(0x3F6ED89E),
		f32(0x3F6A09A7), f32(0x3F64AA59), f32(0x3F5EBE05), f32(0x3F584853), f32(0x3F514D3D), f32(0x3F49D112), f32(0x3F41D870), f32(0x3F396842),
	},
	{
		f32(0x3F7FFB11), f32(0x3F7FD397), f32(0x3F7F84AB), f32(0x3F7F0E58), f32(0x3F7E70B0), f32(0x3F7DABCC), f32(0x3F7CBFC9), f32(0x3F7BACCD),
		f32(0x3F7A7302), f32(0x3F791298), f32(0x3F778BC5), f32(0x3F75DEC6), f32(0x3F740BDD), f32(0x3F721352), f32(0x3F6FF573), f32(0x3F6DB293),
		f32(0x3F6B4B0C), f32(0x3F68BF3C), f32(0x3F660F88), f32(0x3F633C5A), f32(0x3F604621), f32(0x3F5D2D53), f32(0x3F59F26A), f32(0x3F5695E5),
		f32(0x3F531849), f32(0x3F4F7A1F), f32(0x3F4BBBF8), f32(0x3F47DE65), f32(0x3F43E200), f32(0x3F3FC767), f32(0x3F3B8F3B), f32(0x3F373A23),
		f32(0x3F7FFB11), f32(0x3F7FD397), f32(0x3F7F84AB), f32(0x3F7F0E58), f32(0x3F7E70B0), f32(0x3F7DABCC), f32(0x3F7CBFC9), f32(0x3F7BACCD),
		f32(0x3F7A7302), f32(0x3F791298), f32(0x3F778BC5), f32(0x3F75DEC6), f32(0x3F740BDD), f32(0x3F721352), f32(0x3F6FF573), f32(0x3F6DB293),
		f32(0x3F6B4B0C), f32(0x3F68BF3C), f32(0x3F660F88), f32(0x3F633C5A), f32(0x3F604621), f32(0x3F5D2D53), f32(0x3F59F26A), f32(0x3F5695E5),
		f32(0x3F531849), f32(0x3F4F7A1F), f32(0x3F4BBBF8), f32(0x3F47DE65), f32(0x3F43E200), f32(0x3F3FC767), f32(0x3F3B8F3B), f32(0x3F373A23),
	},
	{
		f32(0x3F7FFEC4), f32(0x3F7FF4E6), f32(0x3F7FE129), f32(0x3F7FC38F), f32(0x3F7F9C18), f32(0x3F7F6AC7), f32(0x3F7F2F9D), f32(0x3F7EEA9D),
		f32(0x3F7E9BC9), f32(0x3F7E4323), f32(0x3F7DE0B1), f32(0x3F7D7474), f32(0x3F7CFE73), f32(0x3F7C7EB0), f32(0x3F7BF531), f32(0x3F7B61FC),
		f32(0x3F7AC516), f32(0x3F7A1E84), f32(0x3F796E4E), f32(0x3F78B47B), f32(0x3F77F110), f32(0x3F772417), f32(0x3F764D97), f32(0x3F756D97),
		f32(0x3F748422), f32(0x3F73913F), f32(0x3F7294F8), f32(0x3F718F57), f32(0x3F708066), f32(0x3F6F6830), f32(0x3F6E46BE), f32(0x3F6D1C1D),
		f32(0x3F6BE858), f32(0x3F6AAB7B), f32(0x3F696591), f32(0x3F6816A8), f32(0x3F66BECC), f32(0x3F655E0B), f32(0x3F63F473), f32(0x3F628210),
		f32(0x3F6106F2), f32(0x3F5F8327), f32(0x3F5DF6BE), f32(0x3F5C61C7), f32(0x3F5AC450), f32(0x3F591E6A), f32(0x3F577026), f32(0x3F55B993),
		f32(0x3F53FAC3), f32(0x3F5233C6), f32(0x3F5064AF), f32(0x3F4E8D90), f32(0x3F4CAE79), f32(0x3F4AC77F), f32(0x3F48D8B3), f32(0x3F46E22A),
		f32(0x3F44E3F5), f32(0x3F42DE29), f32(0x3F40D0DA), f32(0x3F3EBC1B), f32(0x3F3CA003), f32(0x3F3A7CA4), f32(0x3F385216), f32(0x3F36206C),
	},
}

var cosTables = [7][64]float32{
	{
		f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4),
		f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4),
		f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4),
		f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4),
		f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4),
		f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4),
		f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4),
		f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4), f32(0x3D0A8BD4), f32(0x3D0A8BD4), f32(0xBD0A8BD4),
	},
	{
		f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA),
		f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA),
		f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA),
		f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA),
		f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA),
		f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA),
		f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA),
		f32(0x3E47C5C2), f32(0x3F0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0xBE47C5C2), f32(0xBF0E39DA), f32(0x3E47C5C2), f32(0x3F0E39DA),
	},
	{
		f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799), f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799),
		f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799), f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799),
		f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799), f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799),
		f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799), f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799),
		f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799), f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799),
		f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799), f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799),
		f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799), f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799),
		f32(0x3DC8BD36), f32(0x3E94A031), f32(0x3EF15AEA), f32(0x3F226799), f32(0xBDC8BD36), f32(0xBE94A031), f32(0xBEF15AEA), f32(0xBF226799),
	},
	{
		f32(0xBD48FB30), f32(0xBE164083), f32(0xBE78CFCC), f32(0xBEAC7CD4), f32(0xBEDAE880), f32(0xBF039C3D), f32(0xBF187FC0), f32(0xBF2BEB4A),
		f32(0x3D48FB30), f32(0x3E164083), f32(0x3E78CFCC), f32(0x3EAC7CD4), f32(0x3EDAE880), f32(0x3F039C3D), f32(0x3F187FC0), f32(0x3F2BEB4A),
		f32(0x3D48FB30), f32(0x3E164083), f32(0x3E78CFCC), f32(0x3EAC7CD4), f32(0x3EDAE880), f32(0x3F039C3D), f32(0x3F187FC0), f32(0x3F2BEB4A),
		f32(0xBD48FB30), f32(0xBE164083), f32(0xBE78CFCC), f32(0xBEAC7CD4), f32(0xBEDAE880), f32(0xBF039C3D), f32(0xBF187FC0), f32(0xBF2BEB4A),
		f32(0x3D48FB30), f32(0x3E164083), f32(0x3E78CFCC), f32(0x3EAC7CD4), f32(0x3EDAE880), f32(0x3F039C3D), f32(0x3F187FC0), f32(0x3F2BEB4A),
		f32(0xBD48FB30), f32(0xBE164083), f32(0xBE78CFCC), f32(0xBEAC7CD4), f32(0xBEDAE880), f32(0xBF039C3D), f32(0xBF187FC0), f32(0xBF2BEB4A),
		f32(0xBD48FB30), f32(0xBE164083), f32(0xBE78CFCC), f32(0xBEAC7CD4), f32(0xBEDAE880), f32(0xBF039C3D), f32(0xBF187FC0), f32(0xBF2BEB4A),
		f32(0x3D48FB30), f32(0x3E164083), f32(0x3E78CFCC), f32(0x3EAC7CD4), f32(0x3EDAE880), f32(0x3F039C3D), f32(0x3F187FC0), f32(0x3F2BEB4A),
	},
	{
		f32(0xBCC90AB0), f32(0xBD96A905), f32(0xBDFAB273), f32(0xBE2F10A2), f32(0xBE605C13), f32(0xBE888E93), f32(0xBEA09AE5), f32(0xBEB8442A),
		f32(0xBECF7BCA), f32(0xBEE63375), f32(0xBEFC5D27), f32(0xBF08F59B), f32(0xBF13682A), f32(0xBF1D7FD1), f32(0xBF273656), f32(0xBF3085BB),
		f32(0x3CC90AB0), f32(0x3D96A905), f32(0x3DFAB273), f32(0x3E2F10A2), f32(0x3E605C13), f32(0x3E888E93), f32(0x3EA09AE5), f32(0x3EB8442A),
		f32(0x3ECF7BCA), f32(0x3EE63375), f32(0x3EFC5D27), f32(0x3F08F59B), f32(0x3F13682A), f32(0x3F1D7FD1), f32(0x3F273656), f32(0x3F3085BB),
		f32(0x3CC90AB0), f32(0x3D96A905), f32(0x3DFAB273), f32(0x3E2F10A2), f32(0x3E605C13), f32(0x3E888E93), f32(0x3EA09AE5), f32(0x3EB8442A),
		f32(0x3ECF7BCA), f32(0x3EE63375), f32(0x3EFC5D27), f32(0x3F08F59B), f32(0x3F13682A), f32(0x3F1D7FD1), f32(0x3F273656), f32(0x3F3085BB),
		f32(0xBCC90AB0), f32(0xBD96A905), f32(0xBDFAB273), f32(0xBE2F10A2), f32(0xBE605C13), f32(0xBE888E93), f32(0xBEA09AE5), f32(0xBEB8442A),
		f32(0xBECF7BCA), f32(0xBEE63375), f32(0xBEFC5D27), f32(0xBF08F59B), f32(0xBF13682A), f32(0xBF1D7FD1), f32(0xBF273656), f32(0xBF3085BB),
	},
	{
		f32(0xBC490E90), f32(0xBD16C32C), f32(0xBD7B2B74), f32(0xBDAFB680), f32(0xBDE1BC2E), f32(0xBE09CF86), f32(0xBE22ABB6), f32(0xBE3B6ECF),
		f32(0xBE541501), f32(0xBE6C9A7F), f32(0xBE827DC0), f32(0xBE8E9A22), f32(0xBE9AA086), f32(0xBEA68F12), f32(0xBEB263EF), f32(0xBEBE1D4A),
		f32(0xBEC9B953), f32(0xBED53641), f32(0xBEE0924F), f32(0xBEEBCBBB), f32(0xBEF6E0CB), f32(0xBF00E7E4), f32(0xBF064B82), f32(0xBF0B9A6B),
		f32(0xBF10D3CD), f32(0xBF15F6D9), f32(0xBF1B02C6), f32(0xBF1FF6CB), f32(0xBF24D225), f32(0xBF299415), f32(0xBF2E3BDE), f32(0xBF32C8C9),
		f32(0x3C490E90), f32(0x3D16C32C), f32(0x3D7B2B74), f32(0x3DAFB680), f32(0x3DE1BC2E), f32(0x3E09CF86), f32(0x3E22ABB6), f32(0x3E3B6ECF),
		f32(0x3E541501), f32(0x3E6C9A7F), f32(0x3E827DC0), f32(0x3E8E9A22), f32(0x3E9AA086), f32(0x3EA68F12), f32(0x3EB263EF), f32(0x3EBE1D4A),
		f32(0x3EC9B953), f32(0x3ED53641), f32(0x3EE0924F), f32(0x3EEBCBBB), f32(0x3EF6E0CB), f32(0x3F00E7E4), f32(0x3F064B82), f32(0x3F0B9A6B),
		f32(0x3F10D3CD), f32(0x3F15F6D9), f32(0x3F1B02C6), f32(0x3F1FF6CB), f32(0x3F24D225), f32(0x3F299415), f32(0x3F2E3BDE), f32(0x3F32C8C9),
	},
	{
		f32(0xBBC90F88), f32(0xBC96C9B6), f32(0xBCFB49BA), f32(0xBD2FE007), f32(0xBD621469), f32(0xBD8A200A), f32(0xBDA3308C), f32(0xBDBC3AC3),
		f32(0xBDD53DB9), f32(0xBDEE3876), f32(0xBE039502), f32(0xBE1008B7), f32(0xBE1C76DE), f32(0xBE28DEFC), f32(0xBE354098), f32(0xBE419B37),
		f32(0xBE4DEE60), f32(0xBE5A3997), f32(0xBE667C66), f32(0xBE72B651), f32(0xBE7EE6E1), f32(0xBE8586CE), f32(0xBE8B9507), f32(0xBE919DDD),
		f32(0xBE97A117), f32(0xBE9D9E78), f32(0xBEA395C5), f32(0xBEA986C4), f32(0xBEAF713A), f32(0xBEB554EC), f32(0xBEBB31A0), f32(0xBEC1071E),
		f32(0xBEC6D529), f32(0xBECC9B8B), f32(0xBED25A09), f32(0xBED8106B), f32(0xBEDDBE79), f32(0xBEE363FA), f32(0xBEE900B7), f32(0xBEEE9479),
		f32(0xBEF41F07), f32(0xBEF9A02D), f32(0xBEFF17B2), f32(0xBF0242B1), f32(0xBF04F484), f32(0xBF07A136), f32(0xBF0A48AD), f32(0xBF0CEAD0),
		f32(0xBF0F8784), f32(0xBF121EB0), f32(0xBF14B039), f32(0xBF173C07), f32(0xBF19C200), f32(0xBF1C420C), f32(0xBF1EBC12), f32(0xBF212FF9),
		f32(0xBF239DA9), f32(0xBF26050A), f32(0xBF286605), f32(0xBF2AC082), f32(0xBF2D1469), f32(0xBF2F61A5), f32(0xBF31A81D), f32(0xBF33E7BC),
	},
}

// imdctWindow is HCA's synthesis window, close to a KBD window with an
// alpha of around 3.82.
var imdctWindow = [128]float32{
	f32(0x3A3504F0), f32(0x3B0183B8), f32(0x3B70C538), f32(0x3BBB9268), f32(0x3C04A809), f32(0x3C308200), f32(0x3C61284C), f32(0x3C8B3F17),
	f32(0x3CA83992), f32(0x3CC77FBD), f32(0x3CE91110), f32(0x3D0677CD), f32(0x3D198FC4), f32(0x3D2DD35C), f32(0x3D434643), f32(0x3D59ECC1),
	f32(0x3D71CBA8), f32(0x3D85741E), f32(0x3D92A413), f32(0x3DA078B4), f32(0x3DAEF522), f32(0x3DBE1C9E), f32(0x3DCDF27B), f32(0x3DDE7A1D),
	f32(0x3DEFB6ED), f32(0x3E00D62B), f32(0x3E0A2EDA), f32(0x3E13E72A), f32(0x3E1E00B1), f32(0x3E287CF2), f32(0x3E335D55), f32(0x3E3EA321),
	f32(0x3E4A4F75), f32(0x3E56633F), f32(0x3E62DF37), f32(0x3E6FC3D1), f32(0x3E7D1138), f32(0x3E8563A2), f32(0x3E8C72B7), f32(0x3E93B561),
	f32(0x3E9B2AEF), f32(0x3EA2D26F), f32(0x3EAAAAAB), f32(0x3EB2B222), f32(0x3EBAE706), f32(0x3EC34737), f32(0x3ECBD03D), f32(0x3ED47F46),
	f32(0x3EDD5128), f32(0x3EE6425C), f32(0x3EEF4EFF), f32(0x3EF872D7), f32(0x3F00D4A9), f32(0x3F0576CA), f32(0x3F0A1D3B), f32(0x3F0EC548),
	f32(0x3F136C25), f32(0x3F180EF2), f32(0x3F1CAAC2), f32(0x3F213CA2), f32(0x3F25C1A5), f32(0x3F2A36E7), f32(0x3F2E9998), f32(0x3F32E705),
	f32(0xBF371C9E), f32(0xBF3B37FE), f32(0xBF3F36F2), f32(0xBF431780), f32(0xBF46D7E6), f32(0xBF4A76A4), f32(0xBF4DF27C), f32(0xBF514A6F),
	f32(0xBF547DC5), f32(0xBF578C03), f32(0xBF5A74EE), f32(0xBF5D3887), f32(0xBF5FD707), f32(0xBF6250DA), f32(0xBF64A699), f32(0xBF66D908),
	f32(0xBF68E90E), f32(0xBF6AD7B1), f32(0xBF6CA611), f32(0xBF6E5562), f32(0xBF6FE6E7), f32(0xBF715BEF), f32(0xBF72B5D1), f32(0xBF73F5E6),
	f32(0xBF751D89), f32(0xBF762E13), f32(0xBF7728D7), f32(0xBF780F20), f32(0xBF78E234), f32(0xBF79A34C), f32(0xBF7A5397), f32(0xBF7AF439),
	f32(0xBF7B8648), f32(0xBF7C0ACE), f32(0xBF7C82C8), f32(0xBF7CEF26), f32(0xBF7D50CB), f32(0xBF7DA88E), f32(0xBF7DF737), f32(0xBF7E3D86),
	f32(0xBF7E7C2A), f32(0xBF7EB3CC), f32(0xBF7EE507), f32(0xBF7F106C), f32(0xBF7F3683), f32(0xBF7F57CA), f32(0xBF7F74B6), f32(0xBF7F8DB6),
	f32(0xBF7FA32E), f32(0xBF7FB57B), f32(0xBF7FC4F6), f32(0xBF7FD1ED), f32(0xBF7FDCAD), f32(0xBF7FE579), f32(0xBF7FEC90), f32(0xBF7FF22E),
	f32(0xBF7FF688), f32(0xBF7FF9D0), f32(0xBF7FFC32), f32(0xBF7FFDDA), f32(0xBF7FFEED), f32(0xBF7FFF8F), f32(0xBF7FFFDF), f32(0xBF7FFFFC),
}
