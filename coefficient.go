package bigdecimal

import (
	"math"
	"math/big"
	"math/bits"
	"sync"
	"sync/atomic"
)

// coef is the significand of a decimal.
// It is compact when big is nil, in which case small holds the value.
// Otherwise big holds the value and small is unused.
// A value that fits into int64 is always kept compact, except [math.MinInt64],
// which is always inflated so that negation and absolute value never overflow.
// The big.Int of an inflated coef is never modified after construction.
type coef struct {
	small int64
	big   *big.Int
}

// maxCompactDigits is the number of decimal digits that always fit into int64.
const maxCompactDigits = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

func coefOf(x int64) coef {
	if x == math.MinInt64 {
		return coef{big: new(big.Int).SetInt64(x)}
	}
	return coef{small: x}
}

// coefOfBig takes ownership of b.
func coefOfBig(b *big.Int) coef {
	if b.IsInt64() {
		if x := b.Int64(); x != math.MinInt64 {
			return coef{small: x}
		}
	}
	return coef{big: b}
}

func (c coef) isCompact() bool {
	return c.big == nil
}

func (c coef) sign() int {
	if c.big != nil {
		return c.big.Sign()
	}
	switch {
	case c.small < 0:
		return -1
	case c.small > 0:
		return 1
	}
	return 0
}

// bigInt returns the significand as a big.Int.
// The result must not be modified.
func (c coef) bigInt() *big.Int {
	if c.big != nil {
		return c.big
	}
	return big.NewInt(c.small)
}

// copyBigInt returns the significand as a big.Int that the caller owns.
func (c coef) copyBigInt() *big.Int {
	if c.big != nil {
		return new(big.Int).Set(c.big)
	}
	return big.NewInt(c.small)
}

func (c coef) neg() coef {
	if c.big != nil {
		return coefOfBig(new(big.Int).Neg(c.big))
	}
	return coef{small: -c.small}
}

func (c coef) abs() coef {
	if c.sign() < 0 {
		return c.neg()
	}
	return c
}

func (c coef) isOdd() bool {
	if c.big != nil {
		return c.big.Bit(0) != 0
	}
	return c.small&1 != 0
}

// isOne reports whether |c| == 1.
func (c coef) isOne() bool {
	return c.big == nil && (c.small == 1 || c.small == -1)
}

func (c coef) equal(d coef) bool {
	switch {
	case c.big == nil && d.big == nil:
		return c.small == d.small
	case c.big != nil && d.big != nil:
		return c.big.Cmp(d.big) == 0
	}
	return false
}

// cmpAbs compares |c| and |d|.
func (c coef) cmpAbs(d coef) int {
	if c.big == nil && d.big == nil {
		x, y := uabs(c.small), uabs(d.small)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return c.bigInt().CmpAbs(d.bigInt())
}

// prec returns the number of decimal digits in c.
// The precision of zero is 1.
func (c coef) prec() int {
	if c.big != nil {
		return bigPrec(c.big)
	}
	return int64Prec(c.small)
}

// int64Prec returns the number of decimal digits in x.
func int64Prec(x int64) int {
	u := uabs(x)
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if u < uint64(pow10[mid]) {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return max(left, 1)
}

// bigPrec returns the number of decimal digits in b.
// The estimate floor((bitlen+1) * log10(2)) is off by at most one digit.
func bigPrec(b *big.Int) int {
	if b.Sign() == 0 {
		return 1
	}
	r := int(((int64(b.BitLen()) + 1) * 646456993) >> 31)
	if b.CmpAbs(bigPow10(r)) < 0 {
		return r
	}
	return r + 1
}

// add calculates c + d.
func (c coef) add(d coef) coef {
	if c.big == nil && d.big == nil {
		if z, ok := add64(c.small, d.small); ok {
			return coef{small: z}
		}
	}
	return coefOfBig(new(big.Int).Add(c.bigInt(), d.bigInt()))
}

// sub calculates c - d.
func (c coef) sub(d coef) coef {
	return c.add(d.neg())
}

// mul calculates c * d.
func (c coef) mul(d coef) coef {
	if c.big == nil && d.big == nil {
		if z, ok := mul64(c.small, d.small); ok {
			return coef{small: z}
		}
		return coefOfBig(mul128(c.small, d.small))
	}
	return coefOfBig(new(big.Int).Mul(c.bigInt(), d.bigInt()))
}

// lsh calculates c * 10^n.
func (c coef) lsh(n int) coef {
	if n <= 0 || c.sign() == 0 {
		return c
	}
	if c.big == nil && n < len(pow10) {
		if z, ok := mul64(c.small, pow10[n]); ok {
			return coef{small: z}
		}
	}
	return coefOfBig(new(big.Int).Mul(c.bigInt(), bigPow10(n)))
}

// rsh calculates c / 10^n rounded according to the mode.
func (c coef) rsh(n int, mode RoundingMode) (coef, error) {
	if n <= 0 || c.sign() == 0 {
		return c, nil
	}
	if c.big == nil && n < len(pow10) {
		z, err := quoRound64(c.small, pow10[n], mode)
		if err != nil {
			return coef{}, err
		}
		return coef{small: z}, nil
	}
	z, err := quoRoundBig(c.bigInt(), bigPow10(n), mode)
	if err != nil {
		return coef{}, err
	}
	return coefOfBig(z), nil
}

// trunc calculates c / 10^n rounded towards zero.
func (c coef) trunc(n int) coef {
	z, _ := c.rsh(n, RoundDown)
	return z
}

// quo calculates c / d rounded according to the mode.
// It also reports whether the division was exact.
func (c coef) quo(d coef, mode RoundingMode) (coef, bool, error) {
	if c.big == nil && d.big == nil {
		q, r := c.small/d.small, c.small%d.small
		if r == 0 {
			return coef{small: q}, true, nil
		}
		q, err := adjustQuo64(q, r, c.small, d.small, mode)
		if err != nil {
			return coef{}, false, err
		}
		return coefOf(q), false, nil
	}
	x, y := c.bigInt(), d.bigInt()
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() == 0 {
		return coefOfBig(q), true, nil
	}
	if err := adjustQuoBig(q, r, x, y, mode); err != nil {
		return coef{}, false, err
	}
	return coefOfBig(q), false, nil
}

// stripZeros removes at most n trailing zeros from c.
// It returns the stripped significand and the number of removed zeros.
func (c coef) stripZeros(n int64) (coef, int64) {
	var k int64
	if c.big != nil {
		b := c.big
		// Every factor of 10 contributes a factor of 2.
		n = min(n, int64(b.TrailingZeroBits()))
		q, r := new(big.Int), new(big.Int)
		for k < n && !b.IsInt64() {
			q.QuoRem(b, bigTen, r)
			if r.Sign() != 0 {
				return coefOfBig(b), k
			}
			b, q = q, new(big.Int)
			k++
		}
		c = coefOfBig(b)
		if c.big != nil {
			return c, k
		}
	}
	x := c.small
	for k < n && x != 0 && x%10 == 0 {
		x /= 10
		k++
	}
	return coef{small: x}, k
}

// bytes returns |c| as big-endian bytes without leading zeros.
func (c coef) bytes() []byte {
	if c.big != nil {
		return c.big.Bytes()
	}
	u := uabs(c.small)
	var buf [8]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte(u)
		u >>= 8
	}
	return buf[i:]
}

// appendAbs appends the decimal digits of |c| to buf.
func (c coef) appendAbs(buf []byte) []byte {
	if c.big != nil {
		return new(big.Int).Abs(c.big).Append(buf, 10)
	}
	u := uabs(c.small)
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return append(buf, tmp[i:]...)
}

func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// add64 calculates x + y and checks overflow.
func add64(x, y int64) (int64, bool) {
	z := x + y
	if (x^z)&(y^z) < 0 || z == math.MinInt64 {
		return 0, false
	}
	return z, true
}

// mul64 calculates x * y and checks overflow.
func mul64(x, y int64) (int64, bool) {
	hi, lo := bits.Mul64(uabs(x), uabs(y))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	z := int64(lo)
	if (x < 0) != (y < 0) {
		z = -z
	}
	return z, true
}

// mul128 calculates the full 128-bit product x * y.
func mul128(x, y int64) *big.Int {
	hi, lo := bits.Mul64(uabs(x), uabs(y))
	z := new(big.Int).SetUint64(hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(lo))
	if (x < 0) != (y < 0) {
		z.Neg(z)
	}
	return z
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

const (
	initialPow10Len = 20
	// maxCachedPow10 bounds the size of the shared cache.
	// Larger powers are computed on every request.
	maxCachedPow10 = 1 << 10
)

// pow10Cache is a process-wide table of powers of ten.
// Readers load the current table without locking.
// Writers grow it under mu by publishing a longer copy, so a
// published table is never modified.
type pow10Cache struct {
	mu    sync.Mutex
	table atomic.Pointer[[]*big.Int]
}

var bigPow10Cache = newPow10Cache()

func newPow10Cache() *pow10Cache {
	t := make([]*big.Int, initialPow10Len)
	t[0] = big.NewInt(1)
	for i := 1; i < len(t); i++ {
		t[i] = new(big.Int).Mul(t[i-1], bigTen)
	}
	c := &pow10Cache{}
	c.table.Store(&t)
	return c
}

// get returns 10^n.
// The result is shared and must not be modified.
func (c *pow10Cache) get(n int) *big.Int {
	t := *c.table.Load()
	if n < len(t) {
		return t[n]
	}
	if n >= maxCachedPow10 {
		return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t = *c.table.Load()
	if n < len(t) {
		return t[n]
	}
	size := min(max(2*len(t), n+1), maxCachedPow10)
	g := make([]*big.Int, size)
	copy(g, t)
	for i := len(t); i < size; i++ {
		g[i] = new(big.Int).Mul(g[i-1], bigTen)
	}
	c.table.Store(&g)
	return g[n]
}

// bigPow10 returns 10^n for n >= 0.
// The result is shared and must not be modified.
func bigPow10(n int) *big.Int {
	return bigPow10Cache.get(n)
}
