package cluster_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/circuits/point"
	"github.com/stretchr/testify/require"
)

// sampleInput is the 20-box puzzle sample: 10 bounded merges give 5·4·2 = 40,
// full connectivity closes on 216,146,977 and 117,168,530 giving 216·117 = 25272.
const sampleInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

// sampleNodes parses sampleInput.
func sampleNodes(t testing.TB) []point.Node {
	t.Helper()
	nodes, err := point.Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)

	return nodes
}

// onX places one node per x value on the X axis.
func onX(xs ...float64) []point.Node {
	nodes := make([]point.Node, len(xs))
	for i, x := range xs {
		nodes[i] = point.New(fmt.Sprintf("N%d", i), x, 0, 0)
	}

	return nodes
}

// randomCloud returns n nodes with integer coordinates in [0,1000) from a fixed seed.
func randomCloud(n int, seed int64) []point.Node {
	r := rand.New(rand.NewSource(seed))
	nodes := make([]point.Node, n)
	for i := range nodes {
		nodes[i] = point.New(fmt.Sprintf("R%d", i),
			float64(r.Intn(1000)), float64(r.Intn(1000)), float64(r.Intn(1000)))
	}

	return nodes
}
