package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/databuf-xyz/go-databuf/schema"
)

func check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf check <schema.databuf>

Parse a schema file and report the first lexical, syntax, or semantic
error, or OK when the file is valid.

Examples:
  databuf check lsm.databuf
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("schema file required")
	}

	source, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	defs, err := schema.Parse(string(source))
	if err != nil {
		var perr *schema.ParseError
		if errors.As(err, &perr) {
			fmt.Printf("%s: %v\n", fs.Arg(0), perr)
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("%s: OK (%d definitions)\n", fs.Arg(0), len(defs))
	return nil
}
