package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

func nodeFiles(paths ...string) []*types.FileNode {
	var out []*types.FileNode
	for _, p := range paths {
		out = append(out, &types.FileNode{Path: p})
	}
	return out
}

func TestClassifyNode(t *testing.T) {
	assert.Equal(t, Node{Kind: NodeExternal, Key: "lodash"}, ClassifyNode("[External] lodash"))
	assert.Equal(t, Node{Kind: NodeMissing, Key: "src/nope"}, ClassifyNode("[Missing] src/nope"))
	assert.Equal(t, Node{Kind: NodeDatabase, Key: "mongodb"}, ClassifyNode("[DB:mongodb]"))
	assert.Equal(t, Node{Kind: NodeProject, Key: "src/index.js"}, ClassifyNode("src/index.js"))
}

func TestScenarioS1ReferenceCountsAndUsage(t *testing.T) {
	files := nodeFiles("src/index.js", "src/services/dataService.js", "src/utils/helper.js", "src/views/Dashboard.js")
	deps := []types.Dependency{
		{From: "src/index.js", To: "src/utils/helper.js", Kind: types.KindImport},
		{From: "src/index.js", To: "src/services/dataService.js", Kind: types.KindImport},
		{From: "src/services/dataService.js", To: "src/utils/helper.js", Kind: types.KindImport},
		{From: "src/views/Dashboard.js", To: "src/services/dataService.js", Kind: types.KindImport},
	}
	result := Analyze(files, deps)

	assert.Equal(t, 2, result.ReferenceCount["src/utils/helper.js"])
	assert.Equal(t, 2, result.ReferenceCount["src/services/dataService.js"])
	assert.Equal(t, 0, result.ReferenceCount["src/index.js"])
	assert.Equal(t, 0, result.ReferenceCount["src/views/Dashboard.js"])

	for _, path := range []string{"src/index.js", "src/services/dataService.js", "src/utils/helper.js", "src/views/Dashboard.js"} {
		assert.True(t, result.IsUsed[path], "expected %s to be used", path)
	}
	assert.Empty(t, result.Cycles)
}

func TestScenarioS2ThreeFileCycle(t *testing.T) {
	files := nodeFiles("a.ts", "b.ts", "c.ts")
	deps := []types.Dependency{
		{From: "a.ts", To: "b.ts", Kind: types.KindImport},
		{From: "b.ts", To: "c.ts", Kind: types.KindImport},
		{From: "c.ts", To: "a.ts", Kind: types.KindImport},
	}
	result := Analyze(files, deps)

	require := assert.New(t)
	require.Len(result.Cycles, 1)
	require.Equal("a-b-c", canonicalKey(result.Cycles[0]))

	for _, path := range []string{"a.ts", "b.ts", "c.ts"} {
		require.Equal(1, result.ReferenceCount[path])
		require.True(result.IsUsed[path])
	}
}

func TestCycleDetectionIsStartNodeIndependent(t *testing.T) {
	files := nodeFiles("a.ts", "b.ts", "c.ts")
	deps := []types.Dependency{
		{From: "b.ts", To: "c.ts", Kind: types.KindImport},
		{From: "c.ts", To: "a.ts", Kind: types.KindImport},
		{From: "a.ts", To: "b.ts", Kind: types.KindImport},
	}
	result := Analyze(files, deps)
	assert.Len(t, result.Cycles, 1)
}

func TestScenarioS3MissingAndExternalDoNotAffectReferenceCounts(t *testing.T) {
	files := nodeFiles("x.ts")
	deps := []types.Dependency{
		{From: "x.ts", To: "[Missing] nope", Kind: types.KindImport},
		{From: "x.ts", To: "[External] lodash", Kind: types.KindImport},
	}
	result := Analyze(files, deps)
	assert.Equal(t, 0, result.ReferenceCount["x.ts"])
	assert.Empty(t, result.Cycles)
}

func TestFanInFanOutAndCoupling(t *testing.T) {
	files := nodeFiles("a.ts", "b.ts", "c.ts")
	deps := []types.Dependency{
		{From: "a.ts", To: "b.ts", Kind: types.KindImport},
		{From: "a.ts", To: "c.ts", Kind: types.KindImport},
		{From: "b.ts", To: "c.ts", Kind: types.KindImport},
	}
	result := Analyze(files, deps)
	assert.Equal(t, 2, result.FanOut["a.ts"])
	assert.Equal(t, 1, result.FanOut["b.ts"])
	assert.Equal(t, 2, result.FanIn["c.ts"])
	assert.Equal(t, 3, result.Coupling)
	assert.InDelta(t, 1.0, result.AverageCoupling, 0.0001)
}

func TestCriticalPathFindsLongestChain(t *testing.T) {
	files := nodeFiles("a.ts", "b.ts", "c.ts", "d.ts")
	deps := []types.Dependency{
		{From: "a.ts", To: "b.ts", Kind: types.KindImport},
		{From: "b.ts", To: "c.ts", Kind: types.KindImport},
		{From: "c.ts", To: "d.ts", Kind: types.KindImport},
	}
	result := Analyze(files, deps)
	assert.Equal(t, []string{"a.ts", "b.ts", "c.ts", "d.ts"}, result.CriticalPath)
}

func TestAnalyzeOnEmptyGraph(t *testing.T) {
	result := Analyze(nil, nil)
	assert.Empty(t, result.Cycles)
	assert.Empty(t, result.CriticalPath)
	assert.Equal(t, 0.0, result.AverageCoupling)
}
