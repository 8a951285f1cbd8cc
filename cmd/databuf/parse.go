package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/databuf-xyz/go-databuf/schema"
)

func parse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	outputFile := fs.String("output", "", "Write output to file instead of stdout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf parse <schema.databuf> [options]

Parse a schema file and print its abstract syntax tree as JSON.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  databuf parse lsm.databuf
  databuf parse lsm.databuf --output lsm.json
`)
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
		return err
	}

	data, err := schema.MarshalDefinitions(defs)
	if err != nil {
		return fmt.Errorf("marshal AST: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("indent JSON: %w", err)
	}
	indented.WriteByte('\n')

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, indented.Bytes(), 0644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "AST written to %s\n", *outputFile)
		return nil
	}
	_, err = os.Stdout.Write(indented.Bytes())
	return err
}
