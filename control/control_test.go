package control_test

import (
	"testing"

	"github.com/momentics/simplevector/api"
	"github.com/momentics/simplevector/control"
	"github.com/momentics/simplevector/core/buffer"
	"github.com/momentics/simplevector/vector"
)

func TestRecordBufferStats(t *testing.T) {
	reg := control.NewMetricsRegistry()
	if !reg.Updated().IsZero() {
		t.Fatal("fresh registry reports an update")
	}

	v := vector.New[int]()
	for i := 0; i < 9; i++ {
		v.PushBack(i)
	}
	s := buffer.Stats()
	reg.RecordBufferStats(s)

	snap := reg.GetSnapshot()
	want := map[string]int64{
		control.MetricBufferAlloc: s.TotalAlloc,
		control.MetricBufferFree:  s.TotalFree,
		control.MetricBufferInUse: s.InUse,
		control.MetricBufferSlots: s.SlotsAllocated,
	}
	for k, w := range want {
		if snap[k] != w {
			t.Errorf("%s = %v, want %d", k, snap[k], w)
		}
	}
	if s.TotalAlloc < 5 {
		t.Fatalf("nine pushes recorded only %d allocations", s.TotalAlloc)
	}
	if reg.Updated().IsZero() {
		t.Fatal("update time not recorded")
	}
}

func TestSetAndGet(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Set("vector.count", 3)
	if v, ok := reg.Get("vector.count"); !ok || v != 3 {
		t.Fatalf("Get = %v, %v", v, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Fatal("missing key reported present")
	}

	snap := reg.GetSnapshot()
	snap["vector.count"] = 99
	if v, _ := reg.Get("vector.count"); v != 3 {
		t.Fatal("snapshot aliases registry state")
	}
}

func TestDebugProbesTrackVector(t *testing.T) {
	var dbg api.Debug = control.NewDebugProbes()
	v := vector.Of(1, 2, 3)
	vector.RegisterProbe(dbg, "vector.main", v)

	state := dbg.DumpState()["vector.main"].(map[string]int)
	if state["size"] != 3 || state["capacity"] != 3 {
		t.Fatalf("probe = %v", state)
	}

	v.PushBack(4)
	state = dbg.DumpState()["vector.main"].(map[string]int)
	if state["size"] != 4 || state["capacity"] != 6 {
		t.Fatalf("probe after push = %v", state)
	}
}

func TestBufferProbe(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterBufferProbe(buffer.Stats)
	_ = vector.WithSize[byte](4)
	got, ok := dp.DumpState()["buffer.stats"].(api.BufferStats)
	if !ok {
		t.Fatal("buffer probe missing")
	}
	if got.SlotsAllocated < 4 || got.InUse < 1 {
		t.Fatalf("buffer probe = %+v", got)
	}
}
