package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

func TestExtractPythonRelativeFromImportResolves(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "pkg/helper.py", Name: "helper.py"}})
	deps := ExtractPython("pkg/main.py", "from .helper import run\n", files)
	assert.Equal(t, []types.Dependency{
		{From: "pkg/main.py", To: "pkg/helper.py", Kind: types.KindImport},
	}, deps)
}

func TestExtractPythonNonRelativeImportIsSilentlyDropped(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractPython("pkg/main.py", "import os\nimport requests\n", files)
	assert.Empty(t, deps)
}

func TestExtractPythonUnresolvedRelativeImportIsDropped(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractPython("pkg/main.py", "from .nope import thing\n", files)
	assert.Empty(t, deps)
}

func TestExtractPythonDoubleDotStripsOnlyOneLeadingDot(t *testing.T) {
	// ResolvePythonDotted strips exactly one leading '.', so "..utils.io"
	// resolves under the importing file's own directory, not its parent.
	files := NewFileSet([]*types.FileNode{{Path: "pkg/sub/utils/io.py", Name: "io.py"}})
	deps := ExtractPython("pkg/sub/main.py", "from ..utils.io import read\n", files)
	assert.Equal(t, []types.Dependency{
		{From: "pkg/sub/main.py", To: "pkg/sub/utils/io.py", Kind: types.KindImport},
	}, deps)
}
