package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/databuf-xyz/go-databuf/catalog"
	"github.com/databuf-xyz/go-databuf/schema"
)

const sstsSchema = `
table SSTs (id) {
    bytes32 id = 1;
    bytes first = 2;
    bytes last = 3;
}`

func openCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Open(":memory:")
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalog_PutGet(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	rev, err := c.Put(ctx, "lsm", sstsSchema)
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if rev.ID == "" {
		t.Error("expected a revision id")
	}

	got, err := c.Get(ctx, "lsm")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != rev.ID {
		t.Errorf("expected revision %s, got %s", rev.ID, got.ID)
	}
	if got.Source != sstsSchema {
		t.Errorf("source mismatch: %q", got.Source)
	}

	defs, err := got.Definitions()
	if err != nil {
		t.Fatalf("decode ast: %v", err)
	}
	tab, ok := defs[0].(schema.Table)
	if !ok || tab.Name != "SSTs" {
		t.Errorf("expected table SSTs, got %+v", defs[0])
	}
}

func TestCatalog_InvalidSchemaRejected(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	_, err := c.Put(ctx, "bad", `table T (missing) { int32 k = 1; }`)
	if !errors.Is(err, schema.ErrSemantic) {
		t.Errorf("expected semantic error, got %v", err)
	}
	if _, err := c.Get(ctx, "bad"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected not found after rejected put, got %v", err)
	}
}

func TestCatalog_Revisions(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	v1, err := c.Put(ctx, "lsm", `table A KV;`)
	if err != nil {
		t.Fatalf("put v1: %v", err)
	}
	v2, err := c.Put(ctx, "lsm", `table A KV; table B KV;`)
	if err != nil {
		t.Fatalf("put v2: %v", err)
	}

	revs, err := c.Revisions(ctx, "lsm")
	if err != nil {
		t.Fatalf("revisions failed: %v", err)
	}
	if len(revs) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(revs))
	}
	if revs[0].ID != v1.ID || revs[1].ID != v2.ID {
		t.Errorf("expected oldest first: %s %s, got %s %s",
			v1.ID, v2.ID, revs[0].ID, revs[1].ID)
	}

	latest, err := c.Get(ctx, "lsm")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if latest.ID != v2.ID {
		t.Errorf("expected latest %s, got %s", v2.ID, latest.ID)
	}
}

func TestCatalog_Names(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "alpha"} {
		if _, err := c.Put(ctx, name, `table A KV;`); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}

	names, err := c.Names(ctx)
	if err != nil {
		t.Fatalf("names failed: %v", err)
	}
	want := []string{"alpha", "zeta"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestCatalog_MissingName(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	if _, err := c.Get(ctx, "nope"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := c.Revisions(ctx, "nope"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
