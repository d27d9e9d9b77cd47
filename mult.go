package secp256k1

// ScalarMult returns k·P by variable-time double-and-add, scanning the
// scalar from least to most significant bit. Its running time correlates
// with the bit pattern of k, so it is permitted only for public scalars
// (signature verification, displaying public multiples). Secret scalars
// must go through ScalarMultConstTime.
func ScalarMult(k Scalar, p Point) Point {
	acc := PointAtInfinity()
	cur := p
	for i := uint(0); i < 256; i++ {
		if k.n.Bit(i) == 1 {
			acc = acc.Add(cur)
		}
		cur = cur.Double()
	}
	return acc
}

// ScalarMultConstTime returns k·P by a Montgomery ladder. Both ladder legs
// are updated on every bit through ladderAdd, which executes the same field
// operation sequence for every input and resolves the identity and doubling
// cases with masks, and the legs are routed through constant-time conditional
// swaps. The group operations and memory accesses are therefore identical for
// every 256-bit scalar, including its leading-zero run. This is the mandatory
// path whenever k is secret: private keys, ECDSA nonces, ECDH inputs.
func ScalarMultConstTime(k Scalar, p Point) Point {
	r0 := PointAtInfinity()
	r1 := p
	for i := 255; i >= 0; i-- {
		bit := k.n.Bit(uint(i))
		pointCondSwap(&r0, &r1, bit)
		r1 = ladderAdd(r0, r1)
		r0 = ladderAdd(r0, r0)
		pointCondSwap(&r0, &r1, bit)
	}
	return r0
}

// ladderAdd returns a+b with a fixed field-operation sequence regardless of
// input. The branchy affine Add and Double skip all field work on their
// identity early-returns, which would make ladder time track the secret
// scalar's bit pattern. Here every call evaluates both the chord and tangent
// slopes through one Fermat inversion (a fixed 256-bit exponent chain that
// maps 0 to 0), then resolves the special cases with masked selects:
//
//	a = b          -> tangent slope (doubling)
//	a = -b, 2y = 0 -> identity
//	a or b identity -> the other operand
func ladderAdd(a, b Point) Point {
	sameX := a.x.n.eqWord(b.x.n)
	sameY := a.y.n.eqWord(b.y.n)
	doubling := sameX & sameY

	chordNum := b.y.Sub(a.y)
	chordDen := b.x.Sub(a.x)
	tanNum := a.x.Square().MulInt(3)
	tanDen := a.y.Add(a.y)

	num := fieldSelect(tanNum, chordNum, doubling)
	den := fieldSelect(tanDen, chordDen, doubling)

	lambda := num.Mul(den.pow(fieldExpInvert))
	x3 := lambda.Square().Sub(a.x).Sub(b.x)
	y3 := lambda.Mul(a.x.Sub(x3)).Sub(a.y)

	// Same x with different y is a = -b; a doubled 2-torsion point (2y = 0)
	// also has no finite sum. Both collapse to the identity, with the garbage
	// coordinates masked back to zero.
	infOut := (sameX & (1 - sameY)) | (doubling & tanDen.n.isZeroWord())
	r := Point{
		x:        FieldElement{n: ctSelect(Uint256{}, x3.n, infOut)},
		y:        FieldElement{n: ctSelect(Uint256{}, y3.n, infOut)},
		infinity: infOut == 1,
	}
	r = pointSelect(a, r, boolToWord(b.infinity))
	r = pointSelect(b, r, boolToWord(a.infinity))
	return r
}

func fieldSelect(a, b FieldElement, choice uint64) FieldElement {
	return FieldElement{n: ctSelect(a.n, b.n, choice)}
}

// pointSelect returns a when choice is 1 and b when choice is 0, without
// branching on choice.
func pointSelect(a, b Point, choice uint64) Point {
	mask := -choice
	return Point{
		x:        fieldSelect(a.x, b.x, choice),
		y:        fieldSelect(a.y, b.y, choice),
		infinity: (boolToWord(a.infinity)&mask)|(boolToWord(b.infinity)&^mask) == 1,
	}
}

// ScalarBaseMultConstTime returns k·G on the constant-time ladder.
func ScalarBaseMultConstTime(k Scalar) Point {
	return ScalarMultConstTime(k, generator)
}

// pointCondSwap exchanges a and b when bit is 1, leaving them untouched when
// bit is 0, without a data-dependent branch or memory-access pattern.
func pointCondSwap(a, b *Point, bit uint64) {
	mask := -bit
	for i := 0; i < 4; i++ {
		t := mask & (a.x.n.limbs[i] ^ b.x.n.limbs[i])
		a.x.n.limbs[i] ^= t
		b.x.n.limbs[i] ^= t

		t = mask & (a.y.n.limbs[i] ^ b.y.n.limbs[i])
		a.y.n.limbs[i] ^= t
		b.y.n.limbs[i] ^= t
	}
	ai := boolToWord(a.infinity)
	bi := boolToWord(b.infinity)
	t := mask & (ai ^ bi)
	a.infinity = ai^t == 1
	b.infinity = bi^t == 1
}

func boolToWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
