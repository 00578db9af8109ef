package vector_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/simplevector/vector"
)

// TestFIFOAgainstQueue drives the vector as a queue (push back, erase front)
// and checks it element by element against an independent ring queue.
func TestFIFOAgainstQueue(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		v := vector.New[int]()
		q := queue.New()

		for i := 0; i < 2000; i++ {
			if rng.Intn(3) > 0 || q.Length() == 0 {
				val := rng.Intn(100000)
				v.PushBack(val)
				q.Add(val)
			} else {
				want := q.Remove().(int)
				if got := v.Get(0); got != want {
					t.Fatalf("seed %d step %d: front = %d, want %d", seed, i, got, want)
				}
				v.Erase(v.Begin())
			}

			if v.GetSize() != q.Length() {
				t.Fatalf("seed %d step %d: size %d, queue length %d", seed, i, v.GetSize(), q.Length())
			}
			if v.GetSize() > v.GetCapacity() {
				t.Fatalf("seed %d step %d: size %d > capacity %d", seed, i, v.GetSize(), v.GetCapacity())
			}
		}
		for i := 0; i < q.Length(); i++ {
			if v.Get(i) != q.Get(i).(int) {
				t.Fatalf("seed %d: element %d = %d, want %d", seed, i, v.Get(i), q.Get(i))
			}
		}
	}
}

// TestRandomOpsAgainstSlice mixes every mutating operation and compares
// the result with the same edits applied to a plain slice.
func TestRandomOpsAgainstSlice(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		v := vector.New[int]()
		var model []int

		for i := 0; i < 1000; i++ {
			prevCap := v.GetCapacity()
			switch op := rng.Intn(8); op {
			case 0, 1:
				x := rng.Int()
				v.PushBack(x)
				model = append(model, x)
			case 2:
				n := rng.Intn(len(model) + 1)
				x := rng.Int()
				if it := v.Insert(vector.Iterator(n), x); it.Offset() != n {
					t.Fatalf("seed %d step %d: Insert returned %d, want %d", seed, i, it, n)
				}
				model = slices.Insert(model, n, x)
			case 3:
				if len(model) == 0 {
					continue
				}
				n := rng.Intn(len(model))
				v.Erase(vector.Iterator(n))
				model = slices.Delete(model, n, n+1)
			case 4:
				if len(model) == 0 {
					continue
				}
				v.PopBack()
				model = model[:len(model)-1]
			case 5:
				n := rng.Intn(2*len(model) + 2)
				v.Resize(n)
				if n <= len(model) {
					model = model[:n]
				} else {
					model = append(model, make([]int, n-len(model))...)
				}
			case 6:
				k := rng.Intn(64)
				v.Reserve(k)
				if v.GetCapacity() < k {
					t.Fatalf("seed %d step %d: capacity %d after Reserve(%d)", seed, i, v.GetCapacity(), k)
				}
			case 7:
				if rng.Intn(10) == 0 {
					v.Clear()
					model = model[:0]
				}
			}

			if v.GetCapacity() < prevCap {
				t.Fatalf("seed %d step %d: capacity shrank %d -> %d", seed, i, prevCap, v.GetCapacity())
			}
			if v.GetSize() > v.GetCapacity() {
				t.Fatalf("seed %d step %d: size %d > capacity %d", seed, i, v.GetSize(), v.GetCapacity())
			}
			if !slices.Equal(v.Data(), model) {
				t.Fatalf("seed %d step %d: %v, want %v", seed, i, v.Data(), model)
			}
		}
	}
}
