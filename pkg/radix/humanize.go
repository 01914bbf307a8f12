package radix

import (
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/oisee/bignum/pkg/ubig"
)

// FormatGrouped renders u in base 10 with thousands separators, for
// CLI-facing output only (cmd/bignum). Besides arith's FFT multiply, this
// is the one place in the module that bridges to math/big, purely to reuse go-humanize's
// *big.Int comma-grouping instead of hand-rolling digit-group insertion.
func FormatGrouped(u ubig.UBig) string {
	n := new(big.Int)
	n.SetString(Format(u, 10), 10)
	return humanize.BigComma(n)
}
