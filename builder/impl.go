// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Path returns a Constructor for the path 0—1—…—(n−1). Requires n ≥ 1.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, "Path", i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the n-cycle. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		return addEdge(g, cfg, "Cycle", n-1, 0)
	}
}

// Complete returns a Constructor for K_n. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, "Complete", i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid returns a Constructor for a w×h 4-connected lattice. Vertex (x, y)
// is y·w+x. Requires w, h ≥ 1.
func Grid(w, h int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if w < 1 || h < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", w, h, ErrTooFewVertices)
		}
		addVertices(g, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				id := y*w + x
				if x+1 < w {
					if err := addEdge(g, cfg, "Grid", id, id+1); err != nil {
						return err
					}
				}
				if y+1 < h {
					if err := addEdge(g, cfg, "Grid", id, id+w); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor that includes each unordered pair
// {i, j}, i < j, independently with probability p. Trials run in (i, j)
// ascending order, so a fixed seed gives a fixed graph. Requires n ≥ 1 and
// 0 ≤ p ≤ 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, "RandomSparse", i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
