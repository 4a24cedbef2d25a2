package queue

import (
	"math/rand"
	"sort"
	"testing"
)

func TestPriorityQueue(t *testing.T) {
	t.Run("MinHeap", func(t *testing.T) {
		pq := NewMin[int](4)

		pq.PushItem(Item[int]{Value: 1, Distance: 10.0})
		pq.PushItem(Item[int]{Value: 2, Distance: 5.0})
		pq.PushItem(Item[int]{Value: 3, Distance: 20.0})

		if pq.Len() != 3 {
			t.Errorf("expected len 3, got %d", pq.Len())
		}

		top, ok := pq.TopItem()
		if !ok || top.Distance != 5.0 || top.Value != 2 {
			t.Errorf("expected top (2, 5.0), got (%d, %v)", top.Value, top.Distance)
		}

		// Pop order: 5, 10, 20
		for i, want := range []float64{5, 10, 20} {
			item, ok := pq.PopItem()
			if !ok || item.Distance != want {
				t.Errorf("pop %d: expected %v, got %v", i, want, item.Distance)
			}
		}

		if _, ok := pq.PopItem(); ok {
			t.Error("pop on empty heap should fail")
		}
		if _, ok := pq.TopItem(); ok {
			t.Error("top on empty heap should fail")
		}
	})

	t.Run("MaxHeap", func(t *testing.T) {
		pq := NewMax[int](4)

		pq.PushItem(Item[int]{Value: 1, Distance: 10.0})
		pq.PushItem(Item[int]{Value: 2, Distance: 5.0})
		pq.PushItem(Item[int]{Value: 3, Distance: 20.0})

		item, _ := pq.PopItem()
		if item.Distance != 20.0 {
			t.Errorf("pop 1: expected 20.0, got %v", item.Distance)
		}
		item, _ = pq.PopItem()
		if item.Distance != 10.0 {
			t.Errorf("pop 2: expected 10.0, got %v", item.Distance)
		}
	})

	t.Run("PushItemBounded", func(t *testing.T) {
		// A bounded max-heap keeps the smallest distances.
		pq := NewMax[int](3)
		for i, d := range []float64{9, 3, 7, 1, 8, 2} {
			pq.PushItemBounded(Item[int]{Value: i, Distance: d}, 3)
		}
		if pq.Len() != 3 {
			t.Fatalf("expected len 3, got %d", pq.Len())
		}
		var got []float64
		for pq.Len() > 0 {
			item, _ := pq.PopItem()
			got = append(got, item.Distance)
		}
		want := []float64{3, 2, 1}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("max bounded: expected %v, got %v", want, got)
				break
			}
		}

		// A bounded min-heap keeps the largest distances.
		mq := NewMin[int](2)
		for i, d := range []float64{4, 6, 1, 5} {
			mq.PushItemBounded(Item[int]{Value: i, Distance: d}, 2)
		}
		first, _ := mq.PopItem()
		second, _ := mq.PopItem()
		if first.Distance != 5 || second.Distance != 6 {
			t.Errorf("min bounded: expected 5, 6 got %v, %v", first.Distance, second.Distance)
		}

		// Zero capacity keeps nothing.
		zq := NewMax[int](0)
		zq.PushItemBounded(Item[int]{Value: 1, Distance: 1}, 0)
		if zq.Len() != 0 {
			t.Errorf("expected empty heap, got %d", zq.Len())
		}
	})

	t.Run("Reset", func(t *testing.T) {
		pq := NewMin[string](2)
		pq.PushItem(Item[string]{Value: "a", Distance: 1})
		pq.PushItem(Item[string]{Value: "b", Distance: 2})
		pq.Reset()
		if pq.Len() != 0 || len(pq.Items()) != 0 {
			t.Errorf("expected empty queue after reset, got %d", pq.Len())
		}
	})
}

func TestPriorityQueueRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pq := NewMin[int](0)

	want := make([]float64, 500)
	for i := range want {
		want[i] = rng.Float64()
		pq.PushItem(Item[int]{Value: i, Distance: want[i]})
	}
	sort.Float64s(want)

	for i := range want {
		item, ok := pq.PopItem()
		if !ok {
			t.Fatalf("pop %d: heap unexpectedly empty", i)
		}
		if item.Distance != want[i] {
			t.Fatalf("pop %d: expected %v, got %v", i, want[i], item.Distance)
		}
	}
}
