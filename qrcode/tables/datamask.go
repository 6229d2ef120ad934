package tables

// DataMaskFunc reports whether the module at spec position (i, j) -- row i,
// column j, top-left origin -- is flipped by a given mask pattern.
type DataMaskFunc func(i, j int) bool

// DataMasks contains the 8 QR code data mask patterns, indexed by mask
// pattern number.
var DataMasks = [8]DataMaskFunc{
	func(i, j int) bool { return (i+j)&0x01 == 0 },                       // 000
	func(i, j int) bool { return i&0x01 == 0 },                           // 001
	func(i, j int) bool { return j%3 == 0 },                              // 010
	func(i, j int) bool { return (i+j)%3 == 0 },                          // 011
	func(i, j int) bool { return ((i/2)+(j/3))&0x01 == 0 },               // 100
	func(i, j int) bool { return (i*j)%6 == 0 },                          // 101
	func(i, j int) bool { return ((i * j) % 6) < 3 },                     // 110
	func(i, j int) bool { return ((i + j + ((i*j)%3)) & 0x01) == 0 },     // 111
}
