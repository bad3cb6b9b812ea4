package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestNoDirectExit(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoDirectExit, "exitmain", "notmain")
}

func TestBuildAnalyzers(t *testing.T) {
	names := make(map[string]int)
	for _, a := range buildAnalyzers() {
		names[a.Name]++
	}

	for name, count := range names {
		assert.Equal(t, 1, count, "analyzer %s registered more than once", name)
	}
	for _, want := range []string{"nodirectexit", "printf", "SA1000", "ST1000", "S1002", "QF1001"} {
		assert.Contains(t, names, want)
	}
}
