package rxpermissions_test

import (
	"fmt"
	"sync"
	"testing"

	rxpermissions "github.com/marcelohd/RxPermissions"
)

// promptOnly never has anything pre-granted and swallows every prompt, so
// benchmarks exercise the full registry path without authority overhead.
type promptOnly struct{}

func (promptOnly) RequestGrants(int, []string) {}

func (promptOnly) CheckGranted(string) bool { return false }

func (promptOnly) SupportsRuntimeRequests() bool { return true }

// ---------------------------------------------------------------------------
// Single-goroutine benchmarks: measure per-call latency.
// ---------------------------------------------------------------------------

// How fast is the already-granted short circuit (no registry, no prompt)?
func BenchmarkShortCircuit(b *testing.B) {
	p := rxpermissions.New(rxpermissions.PreGranted{})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ch, _ := p.Request("CAMERA")
		<-ch
	}
}

// Full round trip: fresh slot, prompt, callback, fanout to one waiter.
func BenchmarkRequestResolve(b *testing.B) {
	permissions := make([]string, b.N)
	for i := range permissions {
		permissions[i] = fmt.Sprintf("PERM_%d", i)
	}

	p := rxpermissions.New(promptOnly{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ch, _ := p.Request(permissions[i])
		p.OnGrantResult(0, permissions[i:i+1], []bool{true})
		<-ch
	}
}

// Two-permission conjunction per round trip.
func BenchmarkRequestResolvePair(b *testing.B) {
	keys := make([][]string, b.N)
	for i := range keys {
		keys[i] = []string{fmt.Sprintf("A_%d", i), fmt.Sprintf("B_%d", i)}
	}

	p := rxpermissions.New(promptOnly{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ch, _ := p.Request(keys[i]...)
		p.OnGrantResult(0, keys[i], []bool{true, true})
		<-ch
	}
}

// ---------------------------------------------------------------------------
// Concurrent benchmarks: measure throughput under contention.
// ---------------------------------------------------------------------------

// 1000 goroutines all requesting the same permission. One prompt; the rest
// attach to the pending slot.
func BenchmarkConcurrent_SamePermission(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := rxpermissions.New(promptOnly{})
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func() {
				defer wg.Done()
				p.Request("CAMERA")
			}()
		}
		wg.Wait()
		p.OnGrantResult(0, []string{"CAMERA"}, []bool{true})
	}
}

// 1000 goroutines each requesting a unique permission. No coalescing, pure
// registry write contention.
func BenchmarkConcurrent_UniquePermissions(b *testing.B) {
	permissions := make([]string, 1000)
	grants := make([]bool, 1000)
	for i := range permissions {
		permissions[i] = fmt.Sprintf("PERM_%d", i)
		grants[i] = true
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := rxpermissions.New(promptOnly{})
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func(j int) {
				defer wg.Done()
				p.Request(permissions[j])
			}(j)
		}
		wg.Wait()
		p.OnGrantResult(0, permissions, grants)
	}
}

// 1000 goroutines sharing 100 permissions. Realistic mix of fresh prompts
// and coalesced attaches.
func BenchmarkConcurrent_MixedPermissions(b *testing.B) {
	permissions := make([]string, 100)
	grants := make([]bool, 100)
	for i := range permissions {
		permissions[i] = fmt.Sprintf("PERM_%d", i)
		grants[i] = true
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := rxpermissions.New(promptOnly{})
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func(j int) {
				defer wg.Done()
				p.Request(permissions[j%100])
			}(j)
		}
		wg.Wait()
		p.OnGrantResult(0, permissions, grants)
	}
}

// b.RunParallel: the short-circuit path under true parallel contention.
func BenchmarkParallel_ShortCircuit(b *testing.B) {
	p := rxpermissions.New(rxpermissions.PreGranted{})

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			ch, _ := p.Request("CAMERA")
			<-ch
		}
	})
}
