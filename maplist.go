package pulse

// MapIndexed reconciles a mapped list by position. mapFn runs once per index;
// when the list changes, existing indices receive the new item through their
// item signal, grown indices map fresh, and shrunk indices dispose their
// scope. The classic trade-off against MapKeyed: a shifted list rewrites
// every item signal instead of moving entries around.
func MapIndexed[T, U any](list ReadSignal[[]T], mapFn func(item ReadSignal[T], index int) U) ReadSignal[[]U] {
	type entry struct {
		item   *Signal[T]
		owner  *Owner
		mapped U
	}

	var entries []*entry

	return NewComputed(func() []U {
		items := list.Read()

		for i := len(items); i < len(entries); i++ {
			entries[i].owner.Dispose()
		}
		if len(items) < len(entries) {
			entries = entries[:len(items)]
		}

		for i := range entries {
			entries[i].item.Write(items[i])
		}

		for i := len(entries); i < len(items); i++ {
			e := &entry{owner: NewOwner()}
			item := items[i]
			index := i

			e.owner.Run(func() error {
				e.item = NewSignal(item)
				// peek: nodes mapFn creates belong to the entry's scope,
				// but its reads must not become sources of the list
				e.mapped = Peek(func() U {
					return mapFn(e.item.Readonly(), index)
				})
				return nil
			})

			entries = append(entries, e)
		}

		mapped := make([]U, len(entries))
		for i, e := range entries {
			mapped[i] = e.mapped
		}

		return mapped
	}, ComputedOptions[[]U]{Name: "mapIndexed"})
}

// MapKeyed reconciles a mapped list by key. Entries move with their key:
// reordering the list reorders the output without re-running mapFn, removed
// keys dispose their scope, new keys map fresh. Duplicate keys keep the first
// occurrence.
func MapKeyed[K comparable, T, U any](list ReadSignal[[]T], key func(T) K, mapFn func(item ReadSignal[T]) U) ReadSignal[[]U] {
	type entry struct {
		item   *Signal[T]
		owner  *Owner
		mapped U
	}

	entries := make(map[K]*entry)

	return NewComputed(func() []U {
		items := list.Read()

		seen := make(map[K]struct{}, len(items))
		mapped := make([]U, 0, len(items))

		for _, it := range items {
			k := key(it)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}

			e, ok := entries[k]
			if !ok {
				e = &entry{owner: NewOwner()}
				item := it

				e.owner.Run(func() error {
					e.item = NewSignal(item)
					e.mapped = Peek(func() U {
						return mapFn(e.item.Readonly())
					})
					return nil
				})

				entries[k] = e
			} else {
				e.item.Write(it)
			}

			mapped = append(mapped, e.mapped)
		}

		for k, e := range entries {
			if _, ok := seen[k]; !ok {
				e.owner.Dispose()
				delete(entries, k)
			}
		}

		return mapped
	}, ComputedOptions[[]U]{Name: "mapKeyed"})
}
