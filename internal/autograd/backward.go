package autograd

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Backward computes gradients of a scalar root with respect to every
// ancestor node that requires them.
//
// Algorithm:
//  1. Build the reverse topological order with a depth-first post-order
//     traversal of parent references. The order is rebuilt on every call:
//     the graph is reconstructed fresh each forward pass, so caching the
//     order across steps would be unsafe.
//  2. Seed the root with gradient 1.
//  3. Walk the order in reverse. Each node is visited only after all of
//     its children have contributed, so its within-pass gradient is fully
//     accumulated when its backward closure runs.
//  4. Add (never overwrite) each closure's contributions into the parents,
//     and fold every node's within-pass gradient into its persistent
//     gradient buffer. Calling Backward again on the same graph therefore
//     accumulates on top of the previous pass.
//
// Gradients remain attached to their nodes until explicitly cleared.
func Backward[T tensor.Float](root *Node[T]) error {
	if !root.value.IsScalar() {
		return fmt.Errorf("root has %d elements (shape %v): %w",
			root.value.NumElements(), root.value.Shape(), ErrNonScalarBackward)
	}

	order := topoSort(root)

	// Per-pass gradient accumulation. Kept separate from the persistent
	// buffers so a repeated Backward on the same graph contributes exactly
	// one more copy of each gradient.
	grads := make(map[*Node[T]]*tensor.Tensor[T], len(order))
	grads[root] = tensor.Ones[T](root.value.Shape())

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		grad, ok := grads[node]
		if !ok {
			continue // No gradient flows through this node
		}
		if err := node.accumulateGrad(grad); err != nil {
			return fmt.Errorf("accumulate gradient: %w", err)
		}
		if node.backward == nil {
			continue
		}

		contribs, err := node.backward(grad)
		if err != nil {
			return fmt.Errorf("backward: %w", err)
		}
		for j, parent := range node.parents {
			if j >= len(contribs) || contribs[j] == nil || !parent.requiresGrad {
				continue
			}
			if existing, ok := grads[parent]; ok {
				if err := existing.Accumulate(contribs[j]); err != nil {
					return fmt.Errorf("accumulate gradient: %w", err)
				}
			} else {
				grads[parent] = contribs[j].Clone()
			}
		}
	}

	return nil
}

// topoSort returns the nodes reachable from root in topological order
// (parents before children), via depth-first post-order traversal.
func topoSort[T tensor.Float](root *Node[T]) []*Node[T] {
	visited := make(map[*Node[T]]bool)
	var order []*Node[T]

	var visit func(*Node[T])
	visit = func(n *Node[T]) {
		if n == nil || visited[n] {
			return
		}
		visited[n] = true
		for _, parent := range n.parents {
			visit(parent)
		}
		order = append(order, n)
	}
	visit(root)

	return order
}
