package rxpermissions

import "golang.org/x/sync/errgroup"

// resolved returns an already-completed one-shot result channel.
func resolved(granted bool) <-chan bool {
	ch := make(chan bool, 1)
	ch <- granted
	close(ch)
	return ch
}

// combineAll joins N one-shot boolean channels into one: the output yields
// the conjunction of all inputs exactly once, strictly after the last input
// has resolved, and is then closed. Inputs may resolve in any order; nothing
// is emitted while any of them is still outstanding.
func combineAll(subs []<-chan bool) <-chan bool {
	if len(subs) == 1 {
		return subs[0]
	}

	results := make([]bool, len(subs))
	var g errgroup.Group
	for i, sub := range subs {
		i, sub := i, sub
		g.Go(func() error {
			results[i] = <-sub
			return nil
		})
	}

	out := make(chan bool, 1)
	go func() {
		g.Wait()
		all := true
		for _, granted := range results {
			if !granted {
				all = false
				break
			}
		}
		out <- all
		close(out)
	}()
	return out
}
