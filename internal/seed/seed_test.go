package seed

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iis-mfg/precision-site/internal/types"
)

// fakeStore records writes in memory.
type fakeStore struct {
	mu    sync.Mutex
	pages map[string]types.Page
	nav   *types.Navigation
}

func newFakeStore() *fakeStore {
	return &fakeStore{pages: make(map[string]types.Page)}
}

func (f *fakeStore) UpsertPage(_ context.Context, page types.Page) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[page.Slug] = page
	return nil
}

func (f *fakeStore) SaveNavigation(_ context.Context, nav types.Navigation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nav = &nav
	return nil
}

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const validPageJSON = `{
  "slug": "services/cnc-machining",
  "title": "CNC Machining",
  "seo": {"description": "5-axis milling and turning"},
  "sections": [
    {"variant": "hero", "title": "CNC Machining"},
    {"variant": "cta"}
  ]
}`

func TestImportDir_WritesPagesAndNavigation(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "cnc.json", validPageJSON)
	writeDoc(t, dir, "nav.json", `{"navigation": [{"name": "Services", "href": "/services"}]}`)

	store := newFakeStore()
	imp := &Importer{Store: store}

	results, err := imp.ImportDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.NoError(t, r.Err, "file %s", r.File)
	}

	page, ok := store.pages["services/cnc-machining"]
	require.True(t, ok)
	assert.Equal(t, "CNC Machining", page.Title)
	assert.Len(t, page.Sections, 2)
	assert.Equal(t, "hero", page.Sections[0].Variant)
	assert.NotZero(t, page.ID)

	require.NotNil(t, store.nav)
	assert.Equal(t, "Services", store.nav.Items[0].Name)
}

func TestImportDir_YAMLDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "about.yaml", `
slug: about
title: About Us
sections:
  - variant: richText
    content: "<p>Founded in 1982.</p>"
`)

	store := newFakeStore()
	imp := &Importer{Store: store}

	results, err := imp.ImportDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	page := store.pages["about"]
	assert.Equal(t, "About Us", page.Title)
	require.Len(t, page.Sections, 1)
	assert.Equal(t, "richText", page.Sections[0].Variant)
}

func TestImportDir_SchemaRejection(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing title", `{"slug": "about"}`},
		{"bad slug", `{"slug": "About Us!", "title": "About"}`},
		{"section without discriminator", `{"slug": "about", "title": "About", "sections": [{"title": "x"}]}`},
		{"unknown top-level key", `{"slug": "about", "title": "About", "body": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeDoc(t, dir, "doc.json", tt.doc)

			store := newFakeStore()
			imp := &Importer{Store: store}

			results, err := imp.ImportDir(context.Background(), dir)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Error(t, results[0].Err)
			assert.Empty(t, store.pages, "invalid documents must not be written")
		})
	}
}

func TestImportDir_UnknownVariantIsLegalContent(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "page.json", `{
		"slug": "labs", "title": "Labs",
		"sections": [{"variant": "holo-banner", "title": "future"}]
	}`)

	store := newFakeStore()
	imp := &Importer{Store: store}

	results, err := imp.ImportDir(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "holo-banner", store.pages["labs"].Sections[0].Variant)
}

func TestImportDir_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "cnc.json", validPageJSON)
	writeDoc(t, dir, "broken.json", `{"slug": "x"}`)

	imp := &Importer{DryRun: true}

	results, err := imp.ImportDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results come back in file order regardless of worker scheduling.
	assert.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "services/cnc-machining", results[1].Slug)
	assert.Equal(t, 2, results[1].Sections)
}

func TestImportDir_PerFileFailureDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a-broken.json", `not json at all`)
	writeDoc(t, dir, "b-good.json", validPageJSON)

	store := newFakeStore()
	imp := &Importer{Store: store, Concurrency: 1}

	results, err := imp.ImportDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Len(t, store.pages, 1)
}

func TestImportDir_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "README.md", "# not content")
	writeDoc(t, dir, "page.json", validPageJSON)

	imp := &Importer{DryRun: true}
	results, err := imp.ImportDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestDecodePageFile(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "page.yml", "slug: contact\ntitle: Contact\n")

	page, err := DecodePageFile(filepath.Join(dir, "page.yml"))
	require.NoError(t, err)
	assert.Equal(t, "contact", page.Slug)

	_, err = DecodePageFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
