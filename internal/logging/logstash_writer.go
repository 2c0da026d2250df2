package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	errEmptyAddr     = errors.New("logstash: empty address")
	errRetryCooldown = errors.New("logstash: retry cooldown in effect")
)

// LogstashSink ships newline-delimited log entries to a Logstash TCP input.
// It satisfies zapcore.WriteSyncer. Entries written while Logstash is
// unreachable are counted and dropped; logging never blocks on the network
// for longer than the write timeout.
type LogstashSink struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration
	dial          func(network, addr string, timeout time.Duration) (net.Conn, error)

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool

	dropped atomic.Uint64
}

type SinkOption func(*LogstashSink)

// WithDialTimeout overrides the TCP dial timeout. Defaults to 2 seconds.
func WithDialTimeout(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.dialTimeout = d }
}

// WithWriteTimeout overrides the TCP write timeout. Defaults to 1 second.
func WithWriteTimeout(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.writeTimeout = d }
}

// WithRetryInterval sets how long to wait after a failed connect or write
// before dialing again. Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.retryInterval = d }
}

func NewLogstashSink(addr string, opts ...SinkOption) (*LogstashSink, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errEmptyAddr
	}

	s := &LogstashSink{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
		dial:          net.DialTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Write forwards one encoded entry. It reports success even when the entry
// was dropped so that zap does not surface transport errors to callers.
func (s *LogstashSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := p
	if p[len(p)-1] != '\n' {
		line = make([]byte, len(p)+1)
		copy(line, p)
		line[len(p)] = '\n'
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.ErrClosedPipe
	}
	if err := s.connectLocked(); err != nil {
		s.dropped.Add(1)
		return len(p), nil
	}
	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if _, err := s.conn.Write(line); err != nil {
		s.dropped.Add(1)
		s.resetLocked()
		return len(p), nil
	}
	return len(p), nil
}

// Sync is a no-op: entries are written straight to the socket.
func (s *LogstashSink) Sync() error { return nil }

// Dropped returns how many entries were discarded because Logstash was
// unreachable.
func (s *LogstashSink) Dropped() uint64 { return s.dropped.Load() }

func (s *LogstashSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *LogstashSink) connectLocked() error {
	if s.conn != nil {
		return nil
	}
	if !s.nextRetry.IsZero() && time.Now().Before(s.nextRetry) {
		return errRetryCooldown
	}
	conn, err := s.dial("tcp", s.addr, s.dialTimeout)
	if err != nil {
		s.backoffLocked()
		return err
	}
	s.conn = conn
	s.nextRetry = time.Time{}
	return nil
}

func (s *LogstashSink) resetLocked() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.backoffLocked()
}

func (s *LogstashSink) backoffLocked() {
	if s.retryInterval <= 0 {
		s.nextRetry = time.Time{}
		return
	}
	s.nextRetry = time.Now().Add(s.retryInterval)
}
