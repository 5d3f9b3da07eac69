// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/prim_kruskal"
)

// Algorithm names accepted by NewCarver.
const (
	AlgorithmKruskal     = "kruskal"
	AlgorithmPrim        = "prim"
	AlgorithmBacktracker = "backtracker"
)

// Algorithms lists every name NewCarver accepts.
var Algorithms = []string{AlgorithmKruskal, AlgorithmPrim, AlgorithmBacktracker}

// wallEdge is a graph edge between two rooms carrying the wall it crosses.
type wallEdge = core.EdgeWithData[Room, Wall]

// Carver decides which walls of a maze to remove.
type Carver interface {
	// ChooseWallsToRemove returns a subset of walls. Every wall it returns
	// must be one of the given walls.
	ChooseWallsToRemove(walls []Wall) ([]Wall, error)
}

// NewCarver returns the carver registered under algorithm, seeded with seed.
func NewCarver(algorithm string, seed int64) (Carver, error) {
	switch algorithm {
	case AlgorithmKruskal:
		return NewKruskalCarver(seed), nil
	case AlgorithmPrim:
		return NewPrimCarver(seed), nil
	case AlgorithmBacktracker:
		return NewBacktrackerCarver(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// randomEdges pairs each wall with a uniform weight in [0, 1).
func randomEdges(rng *rand.Rand, walls []Wall) []wallEdge {
	edges := make([]wallEdge, len(walls))
	for i, w := range walls {
		edges[i] = core.NewEdgeWithData(w.A, w.B, rng.Float64(), w)
	}
	return edges
}

// wallsOf reads the walls back out of spanning-tree edges.
func wallsOf(mst prim_kruskal.MinimumSpanningTree[Room, wallEdge]) ([]Wall, error) {
	if !mst.Exists() {
		return nil, ErrDisconnected
	}
	edges := mst.Edges()
	walls := make([]Wall, len(edges))
	for i, e := range edges {
		walls[i] = e.Data()
	}
	return walls, nil
}

// KruskalCarver removes the walls of a random minimum spanning tree found
// with Kruskal's algorithm.
type KruskalCarver struct {
	rng *rand.Rand
}

// NewKruskalCarver returns a KruskalCarver whose weights derive from seed.
func NewKruskalCarver(seed int64) *KruskalCarver {
	return &KruskalCarver{rng: rand.New(rand.NewSource(seed))}
}

// ChooseWallsToRemove implements Carver.
func (c *KruskalCarver) ChooseWallsToRemove(walls []Wall) ([]Wall, error) {
	g := core.NewEdgeList[Room, wallEdge](randomEdges(c.rng, walls))
	mst, err := prim_kruskal.Kruskal[Room, wallEdge](g)
	if err != nil {
		return nil, fmt.Errorf("maze: kruskal: %w", err)
	}
	return wallsOf(mst)
}

func (c *KruskalCarver) String() string { return AlgorithmKruskal }

// PrimCarver removes the walls of a random minimum spanning tree grown with
// Prim's algorithm. Growing from one corner tends to give longer corridors
// than Kruskal.
type PrimCarver struct {
	rng *rand.Rand
}

// NewPrimCarver returns a PrimCarver whose weights derive from seed.
func NewPrimCarver(seed int64) *PrimCarver {
	return &PrimCarver{rng: rand.New(rand.NewSource(seed))}
}

// ChooseWallsToRemove implements Carver.
func (c *PrimCarver) ChooseWallsToRemove(walls []Wall) ([]Wall, error) {
	g := core.NewGraph[Room, wallEdge]()
	if err := g.AddEdges(randomEdges(c.rng, walls)...); err != nil {
		return nil, fmt.Errorf("maze: prim: %w", err)
	}
	mst, err := prim_kruskal.Prim[Room, wallEdge](g)
	if err != nil {
		return nil, fmt.Errorf("maze: prim: %w", err)
	}
	return wallsOf(mst)
}

func (c *PrimCarver) String() string { return AlgorithmPrim }

// BacktrackerCarver removes the tree edges of a randomised depth-first
// search. It yields long winding corridors with few dead ends.
type BacktrackerCarver struct {
	rng *rand.Rand
}

// NewBacktrackerCarver returns a BacktrackerCarver whose walk derives from seed.
func NewBacktrackerCarver(seed int64) *BacktrackerCarver {
	return &BacktrackerCarver{rng: rand.New(rand.NewSource(seed))}
}

// ChooseWallsToRemove implements Carver.
func (c *BacktrackerCarver) ChooseWallsToRemove(walls []Wall) ([]Wall, error) {
	if len(walls) == 0 {
		return nil, nil
	}
	g := core.NewGraph[Room, wallEdge]()
	for _, w := range walls {
		if err := g.AddEdge(core.NewEdgeWithData(w.A, w.B, 1, w)); err != nil {
			return nil, fmt.Errorf("maze: backtracker: %w", err)
		}
	}

	res, err := dfs.DFS[Room, wallEdge](g, walls[0].A, dfs.WithShuffle(c.rng))
	if err != nil {
		return nil, fmt.Errorf("maze: backtracker: %w", err)
	}
	tree := res.TreeEdges()
	if len(tree) != g.VertexCount()-1 {
		return nil, ErrDisconnected
	}

	chosen := make([]Wall, len(tree))
	for i, pc := range tree {
		if chosen[i], err = NewWall(pc[0], pc[1]); err != nil {
			return nil, err
		}
	}
	return chosen, nil
}

func (c *BacktrackerCarver) String() string { return AlgorithmBacktracker }

// CarveOption configures Carve.
type CarveOption func(*carveConfig)

type carveConfig struct {
	log *slog.Logger
}

// WithLogger sets the logger Carve reports to. Without it Carve is silent.
func WithLogger(l *slog.Logger) CarveOption {
	return func(c *carveConfig) { c.log = l }
}

// Carve asks c which of m's standing walls to remove and removes them.
//
// Errors: whatever c returns, or ErrUnknownWall if c picks a wall that is
// not standing. On error m is left unchanged.
func Carve(m *Maze, c Carver, opts ...CarveOption) error {
	cfg := carveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	standing := m.StandingWalls()
	chosen, err := c.ChooseWallsToRemove(standing)
	if err != nil {
		return err
	}

	valid := make(map[Wall]bool, len(standing))
	for _, w := range standing {
		valid[w] = true
	}
	for _, w := range chosen {
		if !valid[w] {
			return fmt.Errorf("%w: %v", ErrUnknownWall, w)
		}
	}
	for _, w := range chosen {
		m.open[w] = true
	}

	if cfg.log != nil {
		cfg.log.Debug("maze carved",
			slog.String("carver", fmt.Sprint(c)),
			slog.Int("width", m.width),
			slog.Int("height", m.height),
			slog.Int("walls", len(standing)),
			slog.Int("removed", len(chosen)),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	return nil
}
