package bridge

import (
	"testing"
	"time"
)

func TestQueueOrder(t *testing.T) {
	q := NewQueue()

	q.Push([]byte("a"))
	q.Push([]byte("b"))
	q.Push([]byte("c"))

	for _, want := range []string{"a", "b", "c"} {
		chunk, ok := q.Pop()
		if !ok {
			t.Fatal("Pop reported closed queue")
		}
		if string(chunk) != want {
			t.Errorf("Pop = %q, want %q", chunk, want)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := NewQueue()

	got := make(chan []byte, 1)
	go func() {
		chunk, _ := q.Pop()
		got <- chunk
	}()

	time.Sleep(10 * time.Millisecond)
	q.Push([]byte("late"))

	select {
	case chunk := <-got:
		if string(chunk) != "late" {
			t.Errorf("Pop = %q, want late", chunk)
		}
	case <-time.After(time.Second):
		t.Fatal("Pop did not wake on Push")
	}
}

func TestQueueClose(t *testing.T) {
	t.Run("push after close is rejected", func(t *testing.T) {
		q := NewQueue()
		q.Close()

		if q.Push([]byte("x")) {
			t.Error("Push accepted a chunk after Close")
		}
		if !q.Closed() {
			t.Error("Closed = false after Close")
		}
	})

	t.Run("backlog drains before sentinel", func(t *testing.T) {
		q := NewQueue()
		q.Push([]byte("a"))
		q.Push([]byte("b"))
		q.Close()

		chunk, ok := q.Pop()
		if !ok || string(chunk) != "a" {
			t.Fatalf("Pop = %q, %v, want a, true", chunk, ok)
		}
		chunk, ok = q.Pop()
		if !ok || string(chunk) != "b" {
			t.Fatalf("Pop = %q, %v, want b, true", chunk, ok)
		}
		if _, ok := q.Pop(); ok {
			t.Error("Pop should report completion after backlog drained")
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		q := NewQueue()
		q.Close()
		q.Close()

		if _, ok := q.Pop(); ok {
			t.Error("Pop should report completion")
		}
	})

	t.Run("close wakes blocked pop", func(t *testing.T) {
		q := NewQueue()

		done := make(chan bool, 1)
		go func() {
			_, ok := q.Pop()
			done <- ok
		}()

		time.Sleep(10 * time.Millisecond)
		q.Close()

		select {
		case ok := <-done:
			if ok {
				t.Error("Pop = ok after Close with empty backlog")
			}
		case <-time.After(time.Second):
			t.Fatal("Pop did not wake on Close")
		}
	})
}
