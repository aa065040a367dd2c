// Package catalog serves the internship posting catalog. The default
// catalog is embedded at compile time; deployments can point at an
// external JSON file instead to swap postings without a rebuild.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

//go:embed data/internships.json
var embeddedCatalog []byte

// ErrNotFound is returned by Get when no posting carries the requested ID.
var ErrNotFound = fmt.Errorf("internship posting not found")

// Catalog holds an immutable set of internship postings. Safe for
// concurrent use once constructed.
type Catalog struct {
	postings []types.InternshipPosting
	byID     map[string]int
}

// Load builds the catalog from the embedded posting data.
func Load() (*Catalog, error) {
	return parse(embeddedCatalog)
}

// LoadFile builds the catalog from an external JSON file. The file must
// hold a JSON array of postings in the same shape as the embedded catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var postings []types.InternshipPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(postings) == 0 {
		return nil, fmt.Errorf("catalog contains no postings")
	}

	byID := make(map[string]int, len(postings))
	for i, posting := range postings {
		if posting.ID == "" {
			return nil, fmt.Errorf("catalog posting at index %d has no id", i)
		}
		if _, exists := byID[posting.ID]; exists {
			return nil, fmt.Errorf("catalog contains duplicate posting id %q", posting.ID)
		}
		byID[posting.ID] = i
	}

	return &Catalog{postings: postings, byID: byID}, nil
}

// List returns all postings in catalog order. The returned slice is a
// copy; callers may reorder it freely.
func (c *Catalog) List(ctx context.Context) ([]types.InternshipPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]types.InternshipPosting, len(c.postings))
	copy(out, c.postings)
	return out, nil
}

// Get returns the posting with the given ID, or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (types.InternshipPosting, error) {
	if err := ctx.Err(); err != nil {
		return types.InternshipPosting{}, err
	}
	i, ok := c.byID[id]
	if !ok {
		return types.InternshipPosting{}, ErrNotFound
	}
	return c.postings[i], nil
}

// Len reports the number of postings in the catalog.
func (c *Catalog) Len() int {
	return len(c.postings)
}
