package chunkcache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type point struct{ X, Y int }

func TestGetCachesValue(t *testing.T) {
	c := New[point, int](4)
	var calls int32

	build := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	for i := 0; i < 5; i++ {
		v, err := c.Get(point{1, 2}, build)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if v != 42 {
			t.Fatalf("Get returned %d, want 42", v)
		}
	}

	if calls != 1 {
		t.Fatalf("build invoked %d times, want 1", calls)
	}
}

func TestGetCoalescesConcurrentBuilds(t *testing.T) {
	c := New[point, string](16)
	var calls int32
	release := make(chan struct{})

	build := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "chunk", nil
	}

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	results := make([]string, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(point{7, 7}, build)
			results[i] = v
			errs[i] = err
		}(i)
	}

	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("build invoked %d times under concurrent load, want exactly 1", calls)
	}
	for i := range results {
		if errs[i] != nil {
			t.Fatalf("goroutine %d got error: %v", i, errs[i])
		}
		if results[i] != "chunk" {
			t.Fatalf("goroutine %d got %q, want %q", i, results[i], "chunk")
		}
	}
}

func TestGetDoesNotCacheBuildErrors(t *testing.T) {
	c := New[point, int](4)
	var calls int32
	failing := errors.New("build failed")

	build := func() (int, error) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			return 0, failing
		}
		return 99, nil
	}

	if _, err := c.Get(point{0, 0}, build); !errors.Is(err, failing) {
		t.Fatalf("expected failing error on first call, got %v", err)
	}
	if _, err := c.Get(point{0, 0}, build); !errors.Is(err, failing) {
		t.Fatalf("expected failing error on second call, got %v", err)
	}
	v, err := c.Get(point{0, 0}, build)
	if err != nil {
		t.Fatalf("third call should succeed, got %v", err)
	}
	if v != 99 {
		t.Fatalf("got %d, want 99", v)
	}
	if calls != 3 {
		t.Fatalf("build invoked %d times, want 3 (errors must not be cached)", calls)
	}
}

func TestEvictionBoundsSize(t *testing.T) {
	c := New[point, int](3)
	build := func(v int) func() (int, error) {
		return func() (int, error) { return v, nil }
	}

	for i := 0; i < 10; i++ {
		if _, err := c.Get(point{i, 0}, build(i)); err != nil {
			t.Fatalf("Get(%d) error: %v", i, err)
		}
		if c.Len() > 3 {
			t.Fatalf("cache grew to %d entries, capacity is 3", c.Len())
		}
	}
	if c.Len() != 3 {
		t.Fatalf("final cache length = %d, want 3", c.Len())
	}
}

func TestEvictionIsLeastRecentlyUsed(t *testing.T) {
	c := New[point, int](2)
	build := func(v int) func() (int, error) {
		return func() (int, error) { return v, nil }
	}

	mustGet := func(k point, v int) {
		got, err := c.Get(k, build(v))
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if got != v {
			t.Fatalf("Get(%v) = %d, want %d", k, got, v)
		}
	}

	mustGet(point{1, 1}, 1)
	mustGet(point{2, 2}, 2)
	// touch {1,1} so {2,2} becomes least-recently-used
	mustGet(point{1, 1}, 1)
	// insert a third key, evicting {2,2}
	mustGet(point{3, 3}, 3)

	// check {1,1} first: rebuilding {2,2} below evicts whichever key is
	// least recently used at that point
	var rebuiltAgain int32
	_, err := c.Get(point{1, 1}, func() (int, error) {
		atomic.AddInt32(&rebuiltAgain, 1)
		return 1, nil
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rebuiltAgain != 0 {
		t.Fatalf("expected {1,1} to still be cached, but it was rebuilt")
	}

	var rebuilt int32
	_, err = c.Get(point{2, 2}, func() (int, error) {
		atomic.AddInt32(&rebuilt, 1)
		return 2, nil
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rebuilt != 1 {
		t.Fatalf("expected {2,2} to have been evicted and rebuilt, rebuilt=%d", rebuilt)
	}
}
