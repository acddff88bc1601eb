package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("expected the first call to step")
	}
	if fs.ShouldStep() {
		t.Fatal("expected the second immediate call to wait")
	}
	time.Sleep(120 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after one period elapsed")
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got step %v", fs.step)
	}
}
