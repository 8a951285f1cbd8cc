package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		if err := check(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := parse(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "register":
		if err := register(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "show":
		if err := show(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "revisions":
		if err := revisions(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "7bit":
		if err := sevenbit(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "comb":
		if err := comb(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("databuf version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`databuf - schema definition language compiler

Usage:
  databuf <command> [options]

Commands:
  check      Parse a schema file and report diagnostics
  parse      Parse a schema file and print its AST
  register   Register a schema revision in a catalog
  show       Show the latest revision of a schema
  revisions  List all revisions of a schema
  7bit       Re-encode 8-bit bytes as 7-bit coded bytes
  comb       Print the binomial coefficient tables
  help       Show this help message
  version    Show version information

Examples:
  # Check a schema for errors
  databuf check lsm.databuf

  # Print the AST as JSON
  databuf parse lsm.databuf --output lsm.json

  # Register a schema revision
  databuf register lsm.databuf --name lsm --db catalog.db

  # Inspect the registered schema
  databuf show --name lsm --db catalog.db

For command-specific help, run:
  databuf <command> --help`)
}
