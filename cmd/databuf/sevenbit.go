package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/databuf-xyz/go-databuf/tuplekey"
)

func sevenbit(args []string) error {
	fs := flag.NewFlagSet("7bit", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf 7bit <byte>...

Create 7-bit coded bytes from a listing of 8-bit integers, one output
byte per line. The low bit of each output byte marks continuation.

Examples:
  databuf 7bit 97 98 99
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("at least one byte required")
	}

	data := make([]byte, 0, fs.NArg())
	for _, arg := range fs.Args() {
		n, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return fmt.Errorf("byte %q out of range", arg)
		}
		data = append(data, byte(n))
	}

	for _, b := range tuplekey.Encode7(data) {
		fmt.Printf("0b%08b\n", b)
	}
	return nil
}
