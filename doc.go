// Package pulse is a fine-grained reactive computation graph: signals hold
// values, computeds derive cached values from them, and effects re-run side
// effects whenever the signals they read change. Dependencies are discovered
// at read time, invalidation is lazy, and effects are batched into a single
// flush.
//
//	count := pulse.NewSignal(1)
//	double := pulse.NewComputed(func() int { return count.Read() * 2 })
//
//	pulse.NewEffect(func() {
//		fmt.Println("double is", double.Read())
//	})
//
//	count.Write(10)
//	pulse.FlushSync()
package pulse
