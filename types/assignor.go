package types

// Assignor computes a partition ownership decision from a membership snapshot.
//
// The built-in implementations live in the strategy package:
//   - RoundRobin: Global round-robin walk, requires identical subscriptions
//   - Range: Contiguous per-topic ranges (the default)
//   - Fair: Greedy least-loaded balancing for non-uniform subscriptions
//
// Every group member runs the same assignor over the same context and must
// arrive at a byte-identical Assignment without further coordination, so
// implementations must:
//   - Be deterministic (same input, same output)
//   - Never depend on map iteration order; traverse sorted sequences only
//   - Be stateless and side-effect free across calls
//   - Cover every consumer in the context, even those assigned nothing
type Assignor interface {
	// Name uniquely identifies the algorithm (e.g. "range").
	Name() string

	// Assign computes the ownership decision for the whole group.
	//
	// Parameters:
	//   - actx: Immutable membership snapshot
	//
	// Returns:
	//   - Assignment: Complete decision, one entry per consumer instance
	//   - error: Precondition failure (e.g. ErrNonUniformSubscription);
	//     no partial assignment is returned alongside an error
	Assign(actx *AssignmentContext) (Assignment, error)
}
