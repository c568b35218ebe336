package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// mockDiffProvider returns canned changed files or an error.
type mockDiffProvider struct {
	files []string
	err   error
}

func (m *mockDiffProvider) ChangedFiles(_ context.Context, _ string) ([]string, error) {
	return m.files, m.err
}

func TestResolveChangedFiles_AppliesFilters(t *testing.T) {
	diff := &mockDiffProvider{files: []string{
		"src/a.ts",
		"src/b.go",
		"docs/readme.md",
		"src/nested/c.tsx",
		"tools/d.ts",
	}}

	files := ResolveChangedFiles(context.Background(), diff, ResolveOptions{
		BaseBranch:   "main",
		FilePatterns: []string{".ts", ".tsx"},
		SourceDir:    "src",
	})

	assert.Equal(t, []string{"src/a.ts", "src/nested/c.tsx"}, files)
}

func TestResolveChangedFiles_DiffFailureDegradesToEmpty(t *testing.T) {
	diff := &mockDiffProvider{err: fmt.Errorf("%w: base unreachable", model.ErrGit)}

	files := ResolveChangedFiles(context.Background(), diff, ResolveOptions{BaseBranch: "origin/gone"})

	assert.Empty(t, files)
}

func TestFilterFiles_NoFiltersKeepsEverything(t *testing.T) {
	in := []string{"a.ts", "b.go", "c.md"}

	assert.Equal(t, in, FilterFiles(in, nil, ""))
}

func TestFilterFiles_ExtensionThenPrefix(t *testing.T) {
	in := []string{"src/a.ts", "lib/b.ts", "src/c.go"}

	out := FilterFiles(in, []string{".ts"}, "src")

	assert.Equal(t, []string{"src/a.ts"}, out)
}

func TestFilterFiles_PrefixMatchesWholeSegment(t *testing.T) {
	// "src" must not match "srclib/".
	in := []string{"srclib/a.ts", "src/b.ts"}

	out := FilterFiles(in, []string{".ts"}, "src")

	assert.Equal(t, []string{"src/b.ts"}, out)
}

func TestFilterFiles_KeepsInputOrder(t *testing.T) {
	in := []string{"src/z.ts", "src/a.ts", "src/m.ts"}

	out := FilterFiles(in, []string{".ts"}, "src")

	assert.Equal(t, in, out)
}
