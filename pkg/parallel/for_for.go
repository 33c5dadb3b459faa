package parallel

// MaxTasks is the ceiling on the number of tasks a single ForFor dispatch
// fans out to. It bounds the partition tables; callers must not rely on
// the exact value.
const MaxTasks = 32

// Sized is the element contract for the ragged drivers: any sub-array that
// can report its length. Implementations must tolerate nil receivers and
// report zero for them, so a ragged sequence may contain absent entries.
type Sized interface {
	Size() int
}

// Range is a half-open index range [Begin, End) within one sub-array.
type Range struct {
	Begin, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Begin
}

// ForForState is the static partition of a ragged sequence over a task
// count. Task t owns the contiguous flattened range [t*N/T, (t+1)*N/T);
// i0/j0 give the (outer index, inner offset) coordinate where that range
// starts. The state is built once per dispatch and discarded after the
// join.
type ForForState struct {
	i0, j0    [MaxTasks]int
	taskCount int
	total     int
}

// NewForForState partitions arrays into at most numThreads, MaxTasks and
// ceil(N/minStep) tasks, whichever is smallest (and at least one). The sweep is a single linear
// pass over the sequence; empty and nil sub-arrays contribute nothing. A
// task boundary falling exactly at the end of a sub-array starts the task
// at the beginning of the next non-empty one.
func NewForForState[A Sized](arrays []A, minStep, numThreads int) ForForState {
	var s ForForState

	total := 0
	for i := range arrays {
		total += arrays[i].Size()
	}
	s.total = total

	if minStep < 1 {
		minStep = 1
	}
	if numThreads < 1 {
		numThreads = 1
	}
	numBlocks := (total + minStep - 1) / minStep
	s.taskCount = max(1, min(numThreads, min(numBlocks, MaxTasks)))

	// Task 0 always starts at (0,0). Walk the prefix sum once, recording
	// the start coordinate of each later task as its boundary is crossed.
	task := 1
	k0 := task * total / s.taskCount
	k := 0
	for i := 0; task < s.taskCount; i++ {
		j, n := 0, arrays[i].Size()
		for j < n && k+n-j > k0 && task < s.taskCount {
			j += k0 - k
			s.i0[task] = i
			s.j0[task] = j
			k = k0
			task++
			k0 = task * total / s.taskCount
		}
		k += n - j
	}
	return s
}

// TaskCount returns the number of tasks the partition fans out to.
func (s *ForForState) TaskCount() int {
	return s.taskCount
}

// Total returns the flattened element count N.
func (s *ForForState) Total() int {
	return s.total
}

// TaskRange returns the flattened range [begin, end) owned by task t.
func (s *ForForState) TaskRange(t int) (begin, end int) {
	return t * s.total / s.taskCount, (t + 1) * s.total / s.taskCount
}

// Start returns the (outer, inner) start coordinate of task t.
func (s *ForForState) Start(t int) (i0, j0 int) {
	return s.i0[t], s.j0[t]
}

// walkTask calls kernel for each maximal intra-sub-array sub-range task t
// intersects, in flattened order. base is the flattened index of the
// sub-range's first element.
func walkTask[A Sized](s *ForForState, arrays []A, t int, kernel func(a A, r Range, base int)) {
	k0, k1 := s.TaskRange(t)
	j := s.j0[t]
	for i, k := s.i0[t], k0; k < k1; i++ {
		n := arrays[i].Size()
		r0, r1 := j, min(n, j+k1-k)
		if r1 > r0 {
			kernel(arrays[i], Range{r0, r1}, k)
		}
		k += r1 - r0
		j = 0
	}
}

// ForFor iterates a ragged sequence in parallel: the flattened index space
// is split into TaskCount contiguous equal ranges and each task invokes
// kernel over the maximal intra-sub-array sub-ranges it owns. kernel is
// called with non-empty ranges only and must be effect-disjoint across
// tasks. The call blocks until every task has returned; the first task
// failure is surfaced as an error.
func ForFor[A Sized](p *Pool, arrays []A, minStep int, kernel func(a A, r Range, base int)) error {
	state := NewForForState(arrays, minStep, p.NumThreads())
	return p.For(state.taskCount, func(t int) {
		walkTask(&state, arrays, t, kernel)
	})
}

// SequentialForFor iterates the ragged sequence on the calling goroutine
// with the same kernel contract as ForFor. Intended for debugging and
// single-threaded environments.
func SequentialForFor[A Sized](arrays []A, kernel func(a A, r Range, base int)) {
	k := 0
	for i := range arrays {
		n := arrays[i].Size()
		if n > 0 {
			kernel(arrays[i], Range{0, n}, k)
		}
		k += n
	}
}
