package cluster_test

import (
	"testing"

	"github.com/katalvlaran/circuits/cluster"
)

// BenchmarkNewEngine measures edge generation and ordering for 500 nodes (124 750 edges).
func BenchmarkNewEngine(b *testing.B) {
	nodes := randomCloud(500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cluster.NewEngine(nodes)
	}
}

// BenchmarkFullyConnected compares both merge strategies on a prebuilt engine.
func BenchmarkFullyConnected(b *testing.B) {
	nodes := randomCloud(500, 42)
	for _, s := range strategies {
		e, err := cluster.NewEngine(nodes, cluster.WithStrategy(s))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(string(s), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = e.FullyConnected()
			}
		})
	}
}
