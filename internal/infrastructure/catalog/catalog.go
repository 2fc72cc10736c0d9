// Package catalog provides the read-only product catalog: a JSON file when
// one is configured, otherwise the embedded demo catalog. The file is watched
// and re-read on change; a bad edit keeps the previous products in place.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/techoutlet/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Repository is a file-backed implementation of domain.CatalogRepository.
type Repository struct {
	mu       sync.RWMutex
	products []domain.Product
	path     string
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewRepository loads the catalog from path, or the embedded demo catalog
// when path is empty.
func NewRepository(path string, tracer trace.Tracer, logger *slog.Logger) (*Repository, error) {
	r := &Repository{path: path, tracer: tracer, logger: logger}

	if path == "" {
		products, err := parseCatalog(embeddedCatalog)
		if err != nil {
			return nil, fmt.Errorf("embedded catalog is invalid: %w", err)
		}
		r.products = products
		logger.Info("Loaded embedded demo catalog", slog.Int("products", len(products)))
		return r, nil
	}

	if err := r.reload(); err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return r, nil
}

func parseCatalog(data []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repository) reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}
	products, err := parseCatalog(data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.products = products
	r.mu.Unlock()

	r.logger.Info("Catalog loaded",
		slog.String("path", r.path),
		slog.Int("products", len(products)),
	)
	return nil
}

// Watch re-reads the catalog file whenever it changes, until ctx is done.
// A reload failure logs and keeps the previous catalog. No-op for the
// embedded catalog.
func (r *Repository) Watch(ctx context.Context) error {
	if r.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}

	// Watch the directory: editors replace files on save, which drops the
	// watch when it targets the file itself.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(r.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := r.reload(); err != nil {
					r.logger.Warn("Catalog reload failed, keeping previous catalog",
						slog.String("error", err.Error()),
					)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Warn("Catalog watcher error", slog.String("error", err.Error()))
			}
		}
	}()

	return nil
}

// FindAll returns the catalog products in catalog order.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Product, error) {
	_, span := r.tracer.Start(ctx, "CatalogRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)

	span.SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}

// FindByName returns the named product and its catalog position. Position 0
// is the featured entry.
func (r *Repository) FindByName(ctx context.Context, name string) (domain.Product, int, error) {
	_, span := r.tracer.Start(ctx, "CatalogRepository.FindByName")
	defer span.End()

	span.SetAttributes(attribute.String("product.name", name))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, p := range r.products {
		if p.Name == name {
			return p, i, nil
		}
	}

	span.RecordError(domain.ErrProductNotFound)
	span.SetStatus(codes.Error, "Product not found")
	return domain.Product{}, -1, domain.ErrProductNotFound
}
