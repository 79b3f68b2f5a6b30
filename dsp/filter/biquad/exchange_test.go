package biquad

import (
	"sync"
	"testing"
)

func TestExchange_Empty(t *testing.T) {
	var e Exchange
	if _, ok := e.Load(); ok {
		t.Fatal("zero Exchange should hold no snapshot")
	}

	f := newFilter(passthrough(), Direct)
	if f.Acquire(&e) {
		t.Fatal("Acquire on empty exchange reported a change")
	}
	if f.Coefficients() != passthrough() {
		t.Fatal("Acquire on empty exchange changed coefficients")
	}
}

func TestExchange_AcquireOnce(t *testing.T) {
	var e Exchange
	f := newFilter(passthrough(), Direct)
	f.ProcessSample(0.25)
	state := f.State()

	e.Publish(Snapshot{
		Coefficients: lowpassCoeffs(),
		Parameters:   Parameters{Algorithm: TransposeCanonical},
	})

	if !f.Acquire(&e) {
		t.Fatal("first Acquire should apply the snapshot")
	}
	if f.Coefficients() != lowpassCoeffs() {
		t.Fatalf("coefficients = %+v, want %+v", f.Coefficients(), lowpassCoeffs())
	}
	if f.Parameters().Algorithm != TransposeCanonical {
		t.Fatalf("algorithm = %v, want %v", f.Parameters().Algorithm, TransposeCanonical)
	}
	if f.State() != state {
		t.Fatal("Acquire must keep the delay line")
	}
	if f.Acquire(&e) {
		t.Fatal("second Acquire without Publish reported a change")
	}

	e.Publish(Snapshot{Coefficients: passthrough()})
	if !f.Acquire(&e) {
		t.Fatal("Acquire after a new Publish should apply it")
	}
	if f.Coefficients() != passthrough() || f.Parameters().Algorithm != Direct {
		t.Fatal("latest snapshot not applied")
	}
}

func TestExchange_LatestWins(t *testing.T) {
	var e Exchange
	for i := 1; i <= 5; i++ {
		e.Publish(Snapshot{Coefficients: Coefficients{A0: float64(i)}})
	}

	f := NewFilter()
	f.Acquire(&e)
	if got := f.Coefficients().A0; got != 5 {
		t.Fatalf("A0 = %v, want 5", got)
	}
}

func TestExchange_NoAllocsOnAcquire(t *testing.T) {
	var e Exchange
	f := newFilter(passthrough(), Direct)
	e.Publish(Snapshot{Coefficients: lowpassCoeffs()})

	allocs := testing.AllocsPerRun(100, func() {
		f.Acquire(&e)
	})
	if allocs != 0 {
		t.Fatalf("Acquire allocated %.0f times", allocs)
	}
}

func TestExchange_ConcurrentPublishNoTornVector(t *testing.T) {
	// Every published vector has all feedforward slots equal. The reader
	// must never see a mix of two vectors.
	var e Exchange
	f := newFilter(passthrough(), Direct)
	e.Publish(Snapshot{Coefficients: Coefficients{A0: -1, A1: -1, A2: -1}})
	if !f.Acquire(&e) {
		t.Fatal("seed snapshot not applied")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 2000 {
			v := float64(i)
			e.Publish(Snapshot{Coefficients: Coefficients{A0: v, A1: v, A2: v}})
		}
	}()

	for range 2000 {
		if !f.Acquire(&e) {
			continue
		}
		c := f.Coefficients()
		if c.A0 != c.A1 || c.A1 != c.A2 {
			t.Fatalf("torn coefficient vector: %+v", c)
		}
	}
	wg.Wait()

	f.Acquire(&e)
	if c := f.Coefficients(); c.A0 != 1999 || c.A1 != 1999 || c.A2 != 1999 {
		t.Fatalf("final vector = %+v, want all 1999", c)
	}
}
