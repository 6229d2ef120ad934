package reedsolomon

// workingBufferSize bounds the codeword buffer used by GenerateECCodewords.
// 30 is the largest EC word count used by any QR version/level and 123 the
// largest data codeword count for a single block (versions 27, 37 and 38),
// so 123 holds every block's data codewords and its EC codewords.
const workingBufferSize = 123

// generatorWordCounts lists every distinct EC-word-per-block count that
// appears across QR versions 1-40 and levels L/M/Q/H.
var generatorWordCounts = []int{7, 10, 13, 15, 16, 17, 18, 20, 22, 24, 26, 28, 30}

// generatorLogTables holds, for each EC word count k, the discrete logarithm
// (exponent, base the field's generator) of each of the k coefficients of
// the monic degree-k Reed-Solomon generator polynomial over QRCodeField256.
// Built once at init so GenerateECCodewords never recomputes a divisor.
var generatorLogTables = buildGeneratorLogTables()

func buildGeneratorLogTables() map[int][]int {
	tables := make(map[int][]int, len(generatorWordCounts))
	for _, k := range generatorWordCounts {
		divisor := generatorPolynomial(QRCodeField256, k)
		logs := make([]int, k)
		for i, coefficient := range divisor {
			logs[i] = QRCodeField256.Log(int(coefficient))
		}
		tables[k] = logs
	}
	return tables
}

// generatorPolynomial computes the coefficients of the monic degree-k
// generator polynomial prod_{i=0}^{k-1} (x - alpha^i) over field, as the
// standard LFSR divisor-construction: starting from x^k, repeatedly
// multiply by (x - alpha^i) via a fused multiply-XOR sweep.
func generatorPolynomial(field *GenericGF, degree int) []byte {
	result := make([]byte, degree)
	result[degree-1] = 1
	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = byte(field.Multiply(int(result[j]), int(root)))
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = byte(field.Multiply(int(root), 2))
	}
	return result
}

// GenerateECCodewords computes the ecWords error-correction codewords for a
// single block's data codewords. It operates on a fixed-size working buffer:
// the data codewords are loaded at the front, then shifted left one position
// at a time, feeding the byte that falls off the front through the
// precomputed generator coefficients (in exponent form) into the first
// ecWords buffer slots -- the standard shift-register realization of
// polynomial division over GF(256).
func GenerateECCodewords(data []byte, ecWords int) []byte {
	gen, ok := generatorLogTables[ecWords]
	if !ok {
		gen = func() []int {
			divisor := generatorPolynomial(QRCodeField256, ecWords)
			logs := make([]int, ecWords)
			for i, c := range divisor {
				logs[i] = QRCodeField256.Log(int(c))
			}
			return logs
		}()
	}

	var buffer [workingBufferSize]byte
	copy(buffer[:], data)

	for i := 0; i < len(data); i++ {
		lead := buffer[0]
		copy(buffer[:workingBufferSize-1], buffer[1:])
		buffer[workingBufferSize-1] = 0
		if lead != 0 {
			e := QRCodeField256.Log(int(lead))
			for m := 0; m < ecWords; m++ {
				buffer[m] ^= byte(QRCodeField256.Exp((gen[m] + e) % 255))
			}
		}
	}

	ec := make([]byte, ecWords)
	copy(ec, buffer[:ecWords])
	return ec
}
