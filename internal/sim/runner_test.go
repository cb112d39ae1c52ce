package sim

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerTicks(t *testing.T) {
	var n atomic.Int64
	var r Runner
	r.Start(time.Millisecond, func() { n.Add(1) })
	defer r.Stop()

	deadline := time.After(time.Second)
	for n.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d ticks after 1s", n.Load())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRunnerStopHaltsSteps(t *testing.T) {
	var n atomic.Int64
	var r Runner
	r.Start(time.Millisecond, func() { n.Add(1) })

	time.Sleep(10 * time.Millisecond)
	r.Stop()
	after := n.Load()

	time.Sleep(20 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Errorf("stepped %d times after Stop", got-after)
	}
	if r.Running() {
		t.Error("Running() true after Stop")
	}
}

func TestRunnerStartWhileRunningIsNoop(t *testing.T) {
	var a, b atomic.Int64
	var r Runner
	r.Start(time.Millisecond, func() { a.Add(1) })
	r.Start(time.Millisecond, func() { b.Add(1) })
	defer r.Stop()

	time.Sleep(15 * time.Millisecond)
	if b.Load() != 0 {
		t.Errorf("second Start installed its step: %d ticks", b.Load())
	}
	if a.Load() == 0 {
		t.Error("first step never ran")
	}
}

func TestRunnerRestart(t *testing.T) {
	var n atomic.Int64
	var r Runner
	r.Start(time.Millisecond, func() { n.Add(1) })
	r.Stop()
	r.Start(time.Millisecond, func() { n.Add(1) })
	defer r.Stop()

	before := n.Load()
	time.Sleep(15 * time.Millisecond)
	if n.Load() == before {
		t.Error("restarted runner never ticked")
	}
}

func TestRunnerStopIdempotent(t *testing.T) {
	var r Runner
	r.Stop() // never started
	r.Start(time.Millisecond, func() {})
	r.Stop()
	r.Stop()
}
