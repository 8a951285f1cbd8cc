package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/databuf-xyz/go-databuf/catalog"
)

func register(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	dbPath := fs.String("db", "catalog.db", "Catalog database path")
	name := fs.String("name", "", "Schema name (defaults to the file name without extension)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf register <schema.databuf> [options]

Compile a schema file and store it as the newest revision under its name.
Invalid schemas are rejected.

Options:
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

	file := fs.Arg(0)
	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if *name == "" {
		base := filepath.Base(file)
		*name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	c, err := catalog.Open(*dbPath)
	if err != nil {
		return err
	}
	defer c.Close()

	rev, err := c.Put(context.Background(), *name, string(source))
	if err != nil {
		return err
	}
	fmt.Printf("registered %s revision %s\n", rev.Name, rev.ID)
	return nil
}

func show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	dbPath := fs.String("db", "catalog.db", "Catalog database path")
	name := fs.String("name", "", "Schema name")
	showAST := fs.Bool("ast", false, "Print the stored AST JSON instead of the source")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf show --name <schema> [options]

Print the latest registered revision of a schema.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		fs.Usage()
		return fmt.Errorf("schema name required")
	}

	c, err := catalog.Open(*dbPath)
	if err != nil {
		return err
	}
	defer c.Close()

	rev, err := c.Get(context.Background(), *name)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "revision %s (%s)\n", rev.ID, rev.CreatedAt.Format("2006-01-02 15:04:05"))
	if *showAST {
		fmt.Println(string(rev.AST))
	} else {
		fmt.Print(rev.Source)
		if !strings.HasSuffix(rev.Source, "\n") {
			fmt.Println()
		}
	}
	return nil
}

func revisions(args []string) error {
	fs := flag.NewFlagSet("revisions", flag.ExitOnError)
	dbPath := fs.String("db", "catalog.db", "Catalog database path")
	name := fs.String("name", "", "Schema name (omit to list all schema names)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: databuf revisions [--name <schema>] [options]

List the revisions of one schema, or every schema name in the catalog.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := catalog.Open(*dbPath)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := context.Background()
	if *name == "" {
		names, err := c.Names(ctx)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	revs, err := c.Revisions(ctx, *name)
	if err != nil {
		return err
	}
	for _, rev := range revs {
		fmt.Printf("%s  %s\n", rev.CreatedAt.Format("2006-01-02 15:04:05"), rev.ID)
	}
	return nil
}
