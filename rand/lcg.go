/*package rand implements the reproducible random streams used for particle
tracking.

A stream is nothing more than a uint64 state owned by a single particle track
and advanced in place by Sample. Independent streams for new tracks are
derived from an existing one with Spawn. None of the functions in this
package are safe to call on the same state from multiple goroutines: give
each goroutine its own spawned state instead.
*/
package rand

const (
	lcgMultiplier = 2862933555777941757
	lcgIncrement  = 3037000493

	// 2^-64. Maps the full uint64 range onto the unit interval.
	lcgScale = 5.4210108624275222e-20

	desRounds = 2
)

var (
	desC1 = [4]uint32{0xbaa96887, 0x1e17d32c, 0x03bcdc3c, 0x0f33d1b2}
	desC2 = [4]uint32{0x4b0f3b58, 0xe874f0c3, 0x6955c5a6, 0x55a7ca46}
)

// Sample advances the 64 bit linear congruential generator with state seed
// and returns the new state mapped onto [0, 1].
func Sample(seed *uint64) float64 {
	*seed = lcgMultiplier*(*seed) + lcgIncrement
	return lcgScale * float64(*seed)
}

// Spawn returns the seed for a new stream derived from parent. The parent
// stream is advanced by one sample, so consecutive calls give different
// children.
func Spawn(parent *uint64) uint64 {
	child := HashState(*parent)
	Sample(parent)
	return child
}

// HashState scrambles a 64 bit state by running PseudoDES on its high and low
// words.
func HashState(state uint64) uint64 {
	hi, lo := uint32(state>>32), uint32(state)
	PseudoDES(&hi, &lo)
	return uint64(hi)<<32 | uint64(lo)
}

// PseudoDES is the pseudo-DES word hash from Numerical Recipes. It is a
// keyed bit mixer, not a cipher: its only job is to decorrelate the seeds of
// sibling streams.
func PseudoDES(lword, irword *uint32) {
	for i := 0; i < desRounds; i++ {
		iswap := *irword
		ia := iswap ^ desC1[i]
		lo, hi := ia&0xffff, ia>>16
		ib := lo*lo + ^(hi * hi)
		ia = ib>>16 | (ib&0xffff)<<16
		*irword = *lword ^ ((ia ^ desC2[i]) + lo*hi)
		*lword = iswap
	}
}
