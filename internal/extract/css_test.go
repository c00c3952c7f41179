package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

func TestExtractCSSImportResolves(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "styles/base.css", Name: "base.css"}})
	deps := ExtractCSS("styles/main.css", `@import "./base.css";`, files)
	assert.Equal(t, []types.Dependency{
		{From: "styles/main.css", To: "styles/base.css", Kind: types.KindImport},
	}, deps)
}

func TestExtractCSSImportURLFormResolves(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "styles/base.css", Name: "base.css"}})
	deps := ExtractCSS("styles/main.css", `@import url("./base.css");`, files)
	assert.Len(t, deps, 1)
}

func TestExtractCSSAbsoluteURLIsSkipped(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractCSS("styles/main.css", `@import "https://fonts.googleapis.com/css";`, files)
	assert.Empty(t, deps)
}
