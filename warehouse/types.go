// Package warehouse is a small document-store provider used by the sample
// store package. Generated conversion functions receive a *Client as the
// provider handle and a *Repository as the repository handle.
package warehouse

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"codec-generator/rawconv"
)

// Client is the provider handle. It names the project documents live in.
type Client struct {
	Project string
}

// NewClient creates a Client for the given project.
func NewClient(project string) *Client {
	return &Client{Project: project}
}

// Repository stores raw documents by path.
type Repository struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{docs: make(map[string]map[string]any)}
}

// Put stores doc under path, replacing any previous document.
func (r *Repository) Put(path string, doc map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[path] = doc
}

// Get returns the document stored under path.
func (r *Repository) Get(ctx context.Context, path string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[path]
	if !ok {
		return nil, fmt.Errorf("document %q not found", path)
	}

	return doc, nil
}

// Fetch returns a Future delivering the document stored under path. The
// lookup runs on its own goroutine.
func (r *Repository) Fetch(ctx context.Context, path string) *rawconv.Future[map[string]any] {
	return rawconv.Go(ctx, func(ctx context.Context) (map[string]any, error) {
		return r.Get(ctx, path)
	})
}

// Paths returns the stored document paths, sorted.
func (r *Repository) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.docs))
	for path := range r.docs {
		out = append(out, path)
	}

	sort.Strings(out)

	return out
}
