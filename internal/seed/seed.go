package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/iis-mfg/precision-site/internal/content"
	"github.com/iis-mfg/precision-site/internal/types"
)

// Store is the subset of the content store the importer writes through.
type Store interface {
	UpsertPage(ctx context.Context, page types.Page) error
	SaveNavigation(ctx context.Context, nav types.Navigation) error
}

// defaultConcurrency bounds the parallel upserts during an import.
const defaultConcurrency = 4

// Importer bulk-loads content documents from a directory.
type Importer struct {
	Store       Store
	DryRun      bool // validate and report without writing
	Concurrency int
}

// FileResult reports the outcome for one document file.
type FileResult struct {
	File     string
	Kind     string // "page" or "navigation"
	Slug     string
	Sections int
	Err      error
}

var (
	compiledPageSchema = gojsonschema.NewStringLoader(pageSchema)
	compiledNavSchema  = gojsonschema.NewStringLoader(navigationSchema)
)

// ImportDir validates and imports every .json/.yaml/.yml document under dir.
// Files are processed concurrently with a bounded group; results come back
// in file order. A per-file failure is reported in its FileResult rather
// than aborting the rest of the import.
func (imp *Importer) ImportDir(ctx context.Context, dir string) ([]FileResult, error) {
	files, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}

	concurrency := imp.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, file := range files {
		g.Go(func() error {
			results[i] = imp.importFile(gctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// importFile loads, validates and writes a single document.
func (imp *Importer) importFile(ctx context.Context, path string) FileResult {
	result := FileResult{File: path}

	data, err := normalizeDocument(path)
	if err != nil {
		result.Err = err
		return result
	}

	var probe struct {
		Navigation json.RawMessage `json:"navigation"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		result.Err = fmt.Errorf("invalid document: %w", err)
		return result
	}

	if probe.Navigation != nil {
		result.Kind = "navigation"
		result.Err = imp.importNavigation(ctx, data)
		return result
	}

	result.Kind = "page"
	page, err := decodePage(data)
	if err != nil {
		result.Err = err
		return result
	}
	result.Slug = page.Slug
	result.Sections = len(page.Sections)

	if imp.DryRun {
		return result
	}
	result.Err = imp.Store.UpsertPage(ctx, *page)
	return result
}

func (imp *Importer) importNavigation(ctx context.Context, data []byte) error {
	if err := validateSchema(compiledNavSchema, data); err != nil {
		return err
	}

	var doc struct {
		Navigation []types.NavItem `json:"navigation"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid navigation document: %w", err)
	}

	if imp.DryRun {
		return nil
	}
	return imp.Store.SaveNavigation(ctx, types.Navigation{Items: doc.Navigation})
}

// DecodePageFile loads a page document from disk, validating it the same way
// the importer does. Used by the compose command to render local documents.
func DecodePageFile(path string) (*types.Page, error) {
	data, err := normalizeDocument(path)
	if err != nil {
		return nil, err
	}
	return decodePage(data)
}

// decodePage validates a page document against the schema and converts it
// into the store's page shape.
func decodePage(data []byte) (*types.Page, error) {
	if err := validateSchema(compiledPageSchema, data); err != nil {
		return nil, err
	}

	var doc struct {
		Slug     string          `json:"slug"`
		Title    string          `json:"title"`
		SEO      types.SEO       `json:"seo"`
		Sections json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid page document: %w", err)
	}

	sections, err := content.DecodeSections(doc.Sections)
	if err != nil {
		return nil, err
	}

	return &types.Page{
		ID:       uuid.New(),
		Slug:     doc.Slug,
		Title:    doc.Title,
		SEO:      doc.SEO,
		Sections: sections,
	}, nil
}

// validateSchema runs a document through a JSON Schema and flattens the
// failures into one error.
func validateSchema(schema gojsonschema.JSONLoader, data []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return fmt.Errorf("document is not valid: %s", strings.Join(messages, "; "))
}

// normalizeDocument reads a document file and returns its contents as JSON,
// converting YAML when necessary.
func normalizeDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		jsonData, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to JSON: %w", path, err)
		}
		return jsonData, nil
	default:
		return data, nil
	}
}

// listDocuments returns the importable files under dir in sorted order.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
