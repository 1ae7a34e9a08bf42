// Shared helpers for nvgcat CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/nvgcat/pkg/catalog"
	"github.com/mesh-intelligence/nvgcat/pkg/sqlite"
	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

// attachCatalog resolves the data directory, creates a SQLite catalog, and
// attaches it. The caller must defer cat.Detach().
func attachCatalog() (catalog.Catalog, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cat := sqlite.NewCatalog()
	if err := cat.Attach(types.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach catalog: %w", err)
	}

	return cat, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// findEntry resolves an entry reference that is either a numeric catalog id
// or an archive path.
func findEntry(cat catalog.Catalog, ref string) (*types.Entry, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return cat.GetEntry(id)
	}
	return cat.GetEntryByPath(ref)
}

// isUserError reports whether err stems from bad input rather than a
// backend failure: validation rejects, missing records, alias cycles.
func isUserError(err error) bool {
	var (
		validation *types.ValidationError
		notFound   *types.NotFoundError
		cycle      *types.CycleError
		render     *types.RenderError
	)
	return errors.As(err, &validation) || errors.As(err, &notFound) ||
		errors.As(err, &cycle) || errors.As(err, &render)
}

// fail prints err prefixed with the command name and exits with the
// appropriate code.
func fail(name string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}
