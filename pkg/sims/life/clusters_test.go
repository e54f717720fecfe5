package life

import (
	"slices"
	"testing"
)

func TestCountClustersEmpty(t *testing.T) {
	b := emptyBoard(t, 10, 10)
	if got := b.CountClusters(); got != 0 {
		t.Fatalf("expected 0 clusters, got %d", got)
	}
}

func TestCountClustersFullBoard(t *testing.T) {
	b, err := New(5, 5, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.CountClusters(); got != 1 {
		t.Fatalf("expected 1 cluster, got %d", got)
	}
	if sizes := b.ClusterSizes(); !slices.Equal(sizes, []int{25}) {
		t.Fatalf("expected one cluster of 25, got %v", sizes)
	}
}

func TestClusterSizesSeparateBlocks(t *testing.T) {
	b := emptyBoard(t, 10, 10)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {6, 6}, {7, 6}, {6, 7}} {
		b.Set(c[0], c[1], true)
	}
	if sizes := b.ClusterSizes(); !slices.Equal(sizes, []int{4, 3}) {
		t.Fatalf("expected clusters [4 3], got %v", sizes)
	}
}

func TestClustersConnectDiagonallyAndAcrossEdges(t *testing.T) {
	b := emptyBoard(t, 10, 10)
	b.Set(0, 0, true)
	b.Set(9, 9, true)
	b.Set(4, 4, true)
	b.Set(5, 5, true)
	if got := b.CountClusters(); got != 2 {
		t.Fatalf("expected 2 clusters, got %d", got)
	}
}

func TestClustersDoNotMutateBoard(t *testing.T) {
	b, err := New(12, 9, 0.4, 5)
	if err != nil {
		t.Fatal(err)
	}
	before := slices.Clone(b.Cells())
	b.CountClusters()
	b.CountPatterns()
	if !slices.Equal(before, b.Cells()) {
		t.Fatal("analysis must not change the board")
	}
}

func TestClusterSizesCoverAllLiveCells(t *testing.T) {
	b, err := New(30, 20, 0.35, 8)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, s := range b.ClusterSizes() {
		total += s
	}
	if total != b.CountLiveCells() {
		t.Fatalf("clusters cover %d cells, board has %d live", total, b.CountLiveCells())
	}
}
