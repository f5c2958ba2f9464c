package sender

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/core/telegram/netutil"
)

var (
	// ErrQueueClosed is returned when enqueue is attempted after dispatcher stop.
	ErrQueueClosed = errors.New("telegram sender: queue closed")
	// ErrQueueFull indicates the queue is saturated and the job was not accepted.
	ErrQueueFull = errors.New("telegram sender: queue full")
)

// Options controls the behaviour of the outbound dispatcher.
type Options struct {
	// QueueSize is the buffer of each shard.
	QueueSize int
	// Workers is the number of shards; every shard is drained by one goroutine.
	Workers      int
	MaxRetries   int
	RetryBackoff time.Duration
	// MaxDuration bounds the time spent retrying a single job.
	MaxDuration time.Duration
	// EnqueueWait is how long Enqueue blocks on a full shard before giving up.
	EnqueueWait time.Duration
}

type job struct {
	ctx      context.Context
	action   string
	endpoint string
	run      func() error
}

// Dispatcher executes outbound Telegram calls asynchronously with retries.
// Jobs for the same chat land on the same shard and run in enqueue order.
type Dispatcher struct {
	opts   Options
	shards []chan job
	mu     sync.RWMutex
	closed bool
	once   sync.Once
	wg     sync.WaitGroup
	errs   atomic.Uint64
	sent   atomic.Uint64
}

// NewDispatcher starts a dispatcher with sane defaults if options are zeroed.
func NewDispatcher(opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 2 * time.Second
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 12 * time.Second
	}
	if opts.EnqueueWait <= 0 {
		opts.EnqueueWait = 2 * time.Second
	}

	d := &Dispatcher{
		opts:   opts,
		shards: make([]chan job, opts.Workers),
	}

	d.wg.Add(opts.Workers)
	for i := range d.shards {
		d.shards[i] = make(chan job, opts.QueueSize)
		go d.worker(d.shards[i])
	}

	return d
}

// Enqueue schedules the provided function for asynchronous execution on the
// shard owning the chat found in ctx. A full shard is waited on for at most
// EnqueueWait. The run closure must be idempotent if retries are desired.
func (d *Dispatcher) Enqueue(ctx context.Context, action, endpoint string, run func() error) error {
	if run == nil {
		return errors.New("telegram sender: nil run function")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrQueueClosed
	}

	j := job{
		ctx:      ctx,
		action:   action,
		endpoint: endpoint,
		run:      run,
	}

	shard := d.shardFor(logger.ChatIDFrom(ctx))
	select {
	case shard <- j:
		return nil
	default:
	}

	timer := time.NewTimer(d.opts.EnqueueWait)
	defer timer.Stop()
	select {
	case shard <- j:
		return nil
	case <-timer.C:
		return ErrQueueFull
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) shardFor(chatID int64) chan job {
	if chatID < 0 {
		chatID = -chatID
	}
	return d.shards[chatID%int64(len(d.shards))]
}

// ErrorCount returns the number of failed jobs.
func (d *Dispatcher) ErrorCount() uint64 {
	return d.errs.Load()
}

// SentCount returns the number of jobs that completed successfully.
func (d *Dispatcher) SentCount() uint64 {
	return d.sent.Load()
}

// Close stops accepting jobs and waits for workers to drain queued ones.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		for _, ch := range d.shards {
			close(ch)
		}
		d.mu.Unlock()
		d.wg.Wait()
	})
}

func (d *Dispatcher) worker(jobs <-chan job) {
	defer d.wg.Done()
	for j := range jobs {
		d.handleJob(j)
	}
}

func (d *Dispatcher) handleJob(j job) {
	ctx := j.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	deadline, cancel := context.WithTimeout(ctx, d.opts.MaxDuration)
	defer cancel()

	start := time.Now()
	attempts := d.opts.MaxRetries + 1
	attempt := 1
	var err error
	for {
		if err = deadline.Err(); err != nil {
			break
		}
		if err = j.run(); err == nil || attempt == attempts || !netutil.ShouldRetry(err) {
			break
		}
		delay := d.backoff(err, attempt)
		logger.Debug(ctx, "tg.sender", "send.retry", j.attrs(
			slog.Int("attempt", attempt),
			slog.String("err_kind", netutil.Kind(err)),
			slog.Duration("backoff", delay),
		)...)
		if werr := wait(deadline, delay); werr != nil {
			err = werr
			break
		}
		attempt++
	}

	if err != nil {
		d.errs.Add(1)
		logger.Error(ctx, "tg.sender", "send.fail", j.attrs(
			slog.String("err", netutil.Redact(err)),
			slog.String("err_kind", netutil.Kind(err)),
			slog.Int("attempts", attempt),
			slog.Duration("duration", time.Since(start)),
		)...)
		return
	}

	d.sent.Add(1)
	level := slog.LevelDebug
	if attempt > 1 {
		level = slog.LevelInfo
	}
	logger.Event(ctx, "tg.sender", level, "send.ok", j.attrs(
		slog.Int("attempts", attempt),
		slog.Duration("duration", time.Since(start)),
	)...)
}

// backoff grows linearly with the attempt number. Flood control waits at
// least as long as Telegram asked.
func (d *Dispatcher) backoff(err error, attempt int) time.Duration {
	delay := d.opts.RetryBackoff * time.Duration(attempt)
	if after, ok := netutil.RetryAfter(err); ok && after > delay {
		delay = after
	}
	return delay
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (j job) attrs(extra ...slog.Attr) []slog.Attr {
	attrs := []slog.Attr{slog.String("action", j.action)}
	if j.endpoint != "" {
		attrs = append(attrs, slog.String("endpoint", j.endpoint))
	}
	return append(attrs, extra...)
}
