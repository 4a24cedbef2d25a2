package pool

import (
	"sync"
	"testing"
)

func TestSearcherPool_Basic(t *testing.T) {
	s := Get(100)
	defer Put(s)

	if s.IsVisited(0) {
		t.Error("New searcher should have no visited points")
	}

	if s.MarkVisited(0) {
		t.Error("First visit should return false")
	}

	if !s.MarkVisited(0) {
		t.Error("Second visit should return true")
	}
}

func TestSearcherPool_ClearedOnGet(t *testing.T) {
	s := Get(10)
	s.MarkVisited(3)
	s.Add(3, 1)
	Put(s)

	// The pool may or may not hand back the same object; either way it must be clean.
	s2 := Get(10)
	defer Put(s2)

	if s2.IsVisited(3) {
		t.Error("Searcher from pool should have a cleared visited set")
	}
	if len(s2.Candidates) != 0 {
		t.Errorf("Searcher from pool should have no candidates, got %d", len(s2.Candidates))
	}
	if s2.Branches.Len() != 0 {
		t.Errorf("Searcher from pool should have no branches, got %d", s2.Branches.Len())
	}
}

func TestSearcherPool_Large(t *testing.T) {
	n := maxRetainedPoints + 1
	s := Get(n)
	if s.MarkVisited(uint32(n - 1)) {
		t.Error("First visit of last point should return false")
	}
	// Dropped rather than pooled; must not panic.
	Put(s)
	Put(nil)
}

func TestSearcherPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := Get(1000)
				if s.MarkVisited(uint32(id)) {
					t.Errorf("goroutine %d: point already visited in fresh searcher", id)
				}
				Put(s)
			}
		}(i)
	}
	wg.Wait()
}
