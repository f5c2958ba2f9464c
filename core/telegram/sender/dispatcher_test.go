package sender

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/tynys/core/logger"
)

func chatContext(chatID int64) context.Context {
	return logger.WithUpdateMeta(context.Background(), 1, chatID, chatID)
}

func TestDispatcherKeepsOrderPerChat(t *testing.T) {
	d := NewDispatcher(Options{Workers: 3, QueueSize: 64})

	var (
		mu  sync.Mutex
		got = map[int64][]int{}
	)
	for i := 0; i < 20; i++ {
		for _, chat := range []int64{10, 11, -12} {
			chat, i := chat, i
			err := d.Enqueue(chatContext(chat), "send.text", "sendMessage", func() error {
				mu.Lock()
				got[chat] = append(got[chat], i)
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Fatalf("enqueue: %v", err)
			}
		}
	}
	d.Close()

	for chat, seq := range got {
		if len(seq) != 20 {
			t.Fatalf("chat %d: got %d jobs, want 20", chat, len(seq))
		}
		for i, v := range seq {
			if v != i {
				t.Fatalf("chat %d: out of order at %d: %v", chat, i, seq)
			}
		}
	}
	if d.SentCount() != 60 {
		t.Fatalf("SentCount = %d, want 60", d.SentCount())
	}
}

func TestDispatcherCountsFailures(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})
	calls := 0
	err := d.Enqueue(chatContext(1), "send.text", "sendMessage", func() error {
		calls++
		return errors.New("bad request (400)")
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	d.Close()

	if calls != 1 {
		t.Fatalf("non-retryable error retried: %d calls", calls)
	}
	if d.ErrorCount() != 1 {
		t.Fatalf("ErrorCount = %d, want 1", d.ErrorCount())
	}
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := NewDispatcher(Options{})
	d.Close()
	err := d.Enqueue(chatContext(1), "send.text", "sendMessage", func() error { return nil })
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("err = %v, want ErrQueueClosed", err)
	}
}

func TestDispatcherRetriesTransientErrors(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})
	calls := 0
	err := d.Enqueue(chatContext(5), "send.text", "sendMessage", func() error {
		calls++
		if calls == 1 {
			return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	d.Close()

	if calls != 2 || d.SentCount() != 1 || d.ErrorCount() != 0 {
		t.Fatalf("calls = %d, sent = %d, errors = %d", calls, d.SentCount(), d.ErrorCount())
	}
}

func TestDispatcherGivesUpAfterMaxRetries(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})
	calls := 0
	err := d.Enqueue(chatContext(3), "send.text", "sendMessage", func() error {
		calls++
		return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	d.Close()

	if calls != 3 || d.SentCount() != 0 || d.ErrorCount() != 1 {
		t.Fatalf("calls = %d, sent = %d, errors = %d", calls, d.SentCount(), d.ErrorCount())
	}
}

func TestBackoffHonorsRetryAfter(t *testing.T) {
	d := &Dispatcher{opts: Options{RetryBackoff: 100 * time.Millisecond}}
	if got := d.backoff(errors.New("timeout"), 3); got != 300*time.Millisecond {
		t.Fatalf("linear backoff = %v", got)
	}
	if got := d.backoff(tele.FloodError{RetryAfter: 2}, 1); got != 2*time.Second {
		t.Fatalf("flood backoff = %v, want 2s", got)
	}
}

func TestDispatcherWaitsOnFullShard(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, QueueSize: 1, EnqueueWait: 100 * time.Millisecond})
	release := make(chan struct{})
	started := make(chan struct{})
	var (
		mu    sync.Mutex
		order []int
	)
	record := func(i int) func() error {
		return func() error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}
	}

	if err := d.Enqueue(chatContext(1), "send.text", "sendMessage", func() error {
		close(started)
		<-release
		return record(0)()
	}); err != nil {
		t.Fatalf("enqueue 0: %v", err)
	}
	<-started
	if err := d.Enqueue(chatContext(1), "send.text", "sendMessage", record(1)); err != nil {
		t.Fatalf("enqueue 1: %v", err)
	}
	if err := d.Enqueue(chatContext(1), "send.text", "sendMessage", record(9)); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}

	go close(release)
	if err := d.Enqueue(chatContext(1), "send.text", "sendMessage", record(2)); err != nil {
		t.Fatalf("enqueue 2: %v", err)
	}
	d.Close()

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("order = %v", order)
	}
}
