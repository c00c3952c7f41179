package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

func TestExtractJSTSBareExternalSpecifier(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractJSTS("src/index.ts", `import React from "react";`, files)
	assert.Equal(t, []types.Dependency{
		{From: "src/index.ts", To: "[External] react", Kind: types.KindImport},
	}, deps)
}

func TestExtractJSTSMissingRelativeSpecifier(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractJSTS("src/index.ts", `import "./nope";`, files)
	assert.Equal(t, []types.Dependency{
		{From: "src/index.ts", To: "[Missing] src/nope", Kind: types.KindImport},
	}, deps)
}

func TestExtractJSTSResolvedRelativeSpecifier(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "src/utils/helper.js", Name: "helper.js"}})
	deps := ExtractJSTS("src/index.js", `import { helper } from "./utils/helper";`, files)
	assert.Equal(t, []types.Dependency{
		{From: "src/index.js", To: "src/utils/helper.js", Kind: types.KindImport},
	}, deps)
}

func TestExtractJSTSRequireAndDynamicImport(t *testing.T) {
	files := NewFileSet([]*types.FileNode{{Path: "src/utils/helper.js", Name: "helper.js"}})
	content := `
const h = require("./utils/helper");
async function load() { await import("lodash"); }
`
	deps := ExtractJSTS("src/index.js", content, files)
	assert.Len(t, deps, 2)
}

func TestExtractJSTSNoImportsYieldsNoEdges(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractJSTS("src/index.js", `console.log("hello");`, files)
	assert.Empty(t, deps)
}

func TestScenarioS1SimpleJSChain(t *testing.T) {
	files := NewFileSet([]*types.FileNode{
		{Path: "src/index.js", Name: "index.js"},
		{Path: "src/services/dataService.js", Name: "dataService.js"},
		{Path: "src/utils/helper.js", Name: "helper.js"},
		{Path: "src/views/Dashboard.js", Name: "Dashboard.js"},
	})

	indexDeps := ExtractJSTS("src/index.js", `
import helper from "./utils/helper";
import dataService from "./services/dataService";
`, files)
	dataServiceDeps := ExtractJSTS("src/services/dataService.js", `import helper from "../utils/helper";`, files)
	dashboardDeps := ExtractJSTS("src/views/Dashboard.js", `import dataService from "../services/dataService";`, files)

	assert.Len(t, indexDeps, 2)
	assert.Len(t, dataServiceDeps, 1)
	assert.Len(t, dashboardDeps, 1)

	all := append(append(indexDeps, dataServiceDeps...), dashboardDeps...)
	refCount := map[string]int{}
	for _, d := range all {
		refCount[d.To]++
	}
	assert.Equal(t, 2, refCount["src/utils/helper.js"])
	assert.Equal(t, 2, refCount["src/services/dataService.js"])
}

func TestScenarioS3MissingAndExternal(t *testing.T) {
	files := NewFileSet(nil)
	deps := ExtractJSTS("x.ts", `
import "./nope";
import "lodash";
`, files)
	assert.Len(t, deps, 2)
	kinds := map[string]bool{}
	for _, d := range deps {
		kinds[d.To] = true
	}
	assert.True(t, kinds["[Missing] nope"])
	assert.True(t, kinds["[External] lodash"])
}
