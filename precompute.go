package secp256k1

// Windowed multiples of the generator for fast public-scalar base
// multiplication: baseTable[w][d] = d · 16^w · G for 4-bit windows, built
// once at startup from the generator. 64 windows cover all 256 scalar bits.
const (
	baseWindowBits  = 4
	baseWindowCount = 256 / baseWindowBits
	baseWindowSize  = 1 << baseWindowBits
)

var baseTable = buildBaseTable()

func buildBaseTable() [baseWindowCount][baseWindowSize]Point {
	var table [baseWindowCount][baseWindowSize]Point
	base := generator
	for w := 0; w < baseWindowCount; w++ {
		table[w][0] = PointAtInfinity()
		for d := 1; d < baseWindowSize; d++ {
			table[w][d] = table[w][d-1].Add(base)
		}
		// Advance the window base: 16^(w+1)·G = 15·16^w·G + 16^w·G.
		base = table[w][baseWindowSize-1].Add(base)
	}
	return table
}

// ScalarBaseMult returns k·G using the precomputed window table. The table
// lookups depend on the scalar's digits, so this path is restricted to
// public scalars; secret material uses ScalarBaseMultConstTime.
func ScalarBaseMult(k Scalar) Point {
	acc := PointAtInfinity()
	for w := 0; w < baseWindowCount; w++ {
		digit := (k.n.limbs[w/16] >> ((uint(w) % 16) * baseWindowBits)) & (baseWindowSize - 1)
		if digit != 0 {
			acc = acc.Add(baseTable[w][digit])
		}
	}
	return acc
}
