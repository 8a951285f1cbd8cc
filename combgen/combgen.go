// Package combgen emits binomial-coefficient lookup tables as source text
// for an external test harness. The K table is Pascal's triangle row by
// row; the L table is ceil(log2(C(n-1, i))), the bit width needed to
// enumerate i-of-(n-1) combinations.
package combgen

import (
	"fmt"
	"io"
	"math/big"
)

// Rows is the table height used by the harness.
const Rows = 64

// WriteK writes the K table: rows 0..n-1 of Pascal's triangle as nested
// slice literals.
func WriteK(w io.Writer, n int) error {
	if _, err := fmt.Fprintln(w, "K = &["); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		line := ""
		sep := "&["
		for j := 0; j <= i; j++ {
			line += sep + new(big.Int).Binomial(int64(i), int64(j)).String()
			sep = ", "
		}
		line += "],"
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "]")
	return err
}

// WriteL writes the L table: ceil(log2(C(n-1, i))) for i in 0..n-1, one
// entry per line.
func WriteL(w io.Writer, n int) error {
	if _, err := fmt.Fprintln(w, "L = &["); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		c := new(big.Int).Binomial(int64(n-1), int64(i))
		if _, err := fmt.Fprintln(w, ceilLog2(c)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "]")
	return err
}

// WriteTables writes both tables in harness order.
func WriteTables(w io.Writer, n int) error {
	if err := WriteK(w, n); err != nil {
		return err
	}
	return WriteL(w, n)
}

// ceilLog2 returns ceil(log2(x)) for x >= 1.
func ceilLog2(x *big.Int) int {
	return new(big.Int).Sub(x, big.NewInt(1)).BitLen()
}
