package simd

// Ranks maps every byte value to a frequency rank. Lower rank means rarer,
// which makes the byte a better anchor for Memchr.
type Ranks [256]byte

// TextRanks ranks bytes for free text such as names, tags and barcodes.
// Letters follow English frequency order, uppercase below lowercase;
// digits and common punctuation sit in the middle, and control and
// non-ASCII bytes are treated as rare.
var TextRanks = func() Ranks {
	const letters = "etaoinshrdlcumwfgypbvkjxqz"
	var r Ranks
	for i := range r {
		r[i] = 5
	}
	for c := 0; c < 0x20; c++ {
		r[c] = 0
	}
	r['\t'], r['\n'], r['\r'] = 1, 1, 1
	for c := '!'; c <= '~'; c++ {
		r[c] = 40
	}
	for _, c := range ",.-_/:;()\"'=" {
		r[c] = 110
	}
	for c := '0'; c <= '9'; c++ {
		r[c] = 130
	}
	for i := 0; i < len(letters); i++ {
		// 'e' 230 down to 'z' 105 in steps of 5.
		lower := byte(230 - 5*i)
		r[letters[i]] = lower
		r[letters[i]-'a'+'A'] = lower - 100
	}
	r[' '] = 255
	return r
}()

// ReadRanks is tuned for sequencing reads: the four bases dominate, with G
// and C slightly rarer than A and T in most genomes. N and lowercase
// (soft-masked) bases are uncommon, anything else is noise.
var ReadRanks = func() Ranks {
	var r Ranks
	for i := range r {
		r[i] = 1
	}
	r['A'], r['T'] = 250, 250
	r['C'], r['G'] = 240, 240
	r['a'], r['t'] = 60, 60
	r['c'], r['g'] = 55, 55
	r['N'], r['n'] = 20, 20
	r['U'], r['u'] = 10, 10
	r['\n'] = 30
	return r
}()

// RareByte returns the rarest byte of needle under ranks and its index.
// Ties keep the rightmost candidate. It returns (0, -1) for an empty needle.
func (r *Ranks) RareByte(needle []byte) (byte, int) {
	if len(needle) == 0 {
		return 0, -1
	}
	idx := len(needle) - 1
	for i := idx - 1; i >= 0; i-- {
		if r[needle[i]] < r[needle[idx]] {
			idx = i
		}
	}
	return needle[idx], idx
}
