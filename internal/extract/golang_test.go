package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

func TestExtractGoGroupedImportBlock(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "internal/util.go", Name: "util.go"}})
	content := `
import (
	"fmt"
	"./internal/util"
)
`
	deps := ExtractGo("main.go", content, files)
	assert.Len(t, deps, 1)
	assert.Equal(t, "internal/util.go", deps[0].To)
}

func TestExtractGoSingleImportForm(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "lib.go", Name: "lib.go"}})
	deps := ExtractGo("cmd/main.go", `import "../lib"`, files)
	assert.Len(t, deps, 1)
	assert.Equal(t, "lib.go", deps[0].To)
}

func TestExtractGoStandardLibraryImportIsIgnored(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractGo("main.go", `import "fmt"`, files)
	assert.Empty(t, deps)
}

func TestExtractGoUnresolvedRelativeImportYieldsNoEdge(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractGo("main.go", `import "./nope"`, files)
	assert.Empty(t, deps)
}
