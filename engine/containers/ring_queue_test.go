package containers

import (
	"errors"
	"testing"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](4)
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("expected enqueue %d to succeed, got %v", i, err)
		}
	}
	for i := 1; i <= 3; i++ {
		v, err := rq.Dequeue()
		if err != nil {
			t.Fatalf("expected dequeue to succeed, got %v", err)
		}
		if v != i {
			t.Errorf("expected %d, got %d", i, v)
		}
	}
	if !rq.IsEmpty() {
		t.Error("expected queue to be empty after draining")
	}
}

func TestRingQueueFull(t *testing.T) {
	rq := NewRingQueue[string](2)
	_ = rq.Enqueue("a")
	_ = rq.Enqueue("b")
	if err := rq.Enqueue("c"); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
}

func TestRingQueueEmpty(t *testing.T) {
	rq := NewRingQueue[string](2)
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("expected ErrQueueEmpty on dequeue, got %v", err)
	}
	if _, err := rq.Peek(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("expected ErrQueueEmpty on peek, got %v", err)
	}
}

func TestRingQueueWrapAround(t *testing.T) {
	rq := NewRingQueue[int](2)
	_ = rq.Enqueue(1)
	_ = rq.Enqueue(2)
	if _, err := rq.Dequeue(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rq.Enqueue(3); err != nil {
		t.Fatalf("expected enqueue after wrap to succeed, got %v", err)
	}
	v, _ := rq.Dequeue()
	if v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
	v, _ = rq.Dequeue()
	if v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
}
