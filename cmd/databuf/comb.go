package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/databuf-xyz/go-databuf/combgen"
)

func comb(args []string) error {
	fs := flag.NewFlagSet("comb", flag.ExitOnError)
	rows := fs.Int("rows", combgen.Rows, "Number of table rows")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf comb [options]

Print the binomial coefficient tables consumed by the test harness.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rows < 1 {
		return fmt.Errorf("rows must be positive")
	}

	return combgen.WriteTables(os.Stdout, *rows)
}
