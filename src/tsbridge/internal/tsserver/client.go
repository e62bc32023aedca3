// Package tsserver owns the analysis subprocess and multiplexes concurrent
// requests over its single stdio channel. Outgoing messages are single-line
// JSON; incoming messages are Content-Length framed JSON. Responses are
// correlated to callers by sequence number; unsolicited events are handed to
// the registered event handler in arrival order.
package tsserver

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	tally "github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey   = "tsserver"
	_configKey = "tsserver"

	_defaultRequestTimeout = 15 * time.Second

	_headerContentLength = "Content-Length:"
)

// ErrClosed rejects requests that were in flight when the subprocess exited,
// and new requests issued while no subprocess is running.
var ErrClosed = errors.New("tsserver transport closed")

// ErrTimeout rejects requests whose response never arrived within the
// configured bound. Absence of a response is not distinguishable from loss.
var ErrTimeout = errors.New("tsserver request timed out")

// Module provides the Client for fx.
var Module = fx.Provide(New)

// Client is the request/notification surface over the analysis subprocess.
// The subprocess handle is owned exclusively by this component; restart policy
// belongs to the caller (Stop, then Start).
type Client interface {
	// Start spawns the subprocess and begins reading its output. It is an
	// error to call Start again before a prior instance has been stopped.
	Start(ctx context.Context) error
	// Stop terminates the subprocess and rejects all pending requests.
	Stop(ctx context.Context) error
	// Request writes {command, seq, arguments} and suspends the caller until
	// the response with a matching request_seq arrives, the subprocess exits,
	// the context is done, or the configured timeout elapses.
	Request(ctx context.Context, command string, args interface{}) (json.RawMessage, error)
	// Notify writes a request without tracking a response.
	Notify(command string, args interface{}) error
	// SetEventHandler registers the handler for unsolicited events. Must be
	// called before Start.
	SetEventHandler(h func(Event)) error
	// SetStderrHandler registers a handler invoked with each line the
	// subprocess writes to stderr. Optional; must be called before Start.
	SetStderrHandler(h func(line string)) error
}

// Config is the subprocess configuration, populated from the "tsserver" key.
type Config struct {
	Path                  string   `yaml:"path"`
	Args                  []string `yaml:"args"`
	RequestTimeoutSeconds int      `yaml:"requestTimeoutSeconds"`
	LogFile               string   `yaml:"logFile"`
}

// Params are inbound parameters to construct a new Client.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type pendingRequest struct {
	command string
	ch      chan outcome
}

type outcome struct {
	body json.RawMessage
	err  error
}

type client struct {
	logger  *zap.SugaredLogger
	stats   tally.Scope
	cfg     Config
	timeout time.Duration

	handler       func(Event)
	stderrHandler func(string)

	mu      sync.Mutex
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	seq     int64
	pending map[int64]*pendingRequest
	queue   *eventQueue
	wg      *sync.WaitGroup

	writeMu sync.Mutex
}

// New constructs a Client and ties subprocess lifetime to the fx lifecycle.
func New(p Params) (Client, error) {
	c := &client{
		logger:  p.Logger.With("component", _nameKey),
		stats:   p.Stats.SubScope(_nameKey),
		pending: make(map[int64]*pendingRequest),
	}

	if err := p.Config.Get(_configKey).Populate(&c.cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if c.cfg.Path == "" {
		return nil, fmt.Errorf("missing field %q.path in config", _configKey)
	}
	c.timeout = _defaultRequestTimeout
	if c.cfg.RequestTimeoutSeconds > 0 {
		c.timeout = time.Duration(c.cfg.RequestTimeoutSeconds) * time.Second
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: c.Start,
		OnStop:  c.Stop,
	})

	return c, nil
}

func (c *client) SetEventHandler(h func(Event)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handler != nil {
		return errors.New("event handler already registered")
	}
	c.handler = h
	return nil
}

func (c *client) SetStderrHandler(h func(line string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stderrHandler != nil {
		return errors.New("stderr handler already registered")
	}
	c.stderrHandler = h
	return nil
}

func (c *client) Start(ctx context.Context) error {
	args := c.cfg.Args
	if c.cfg.LogFile != "" {
		args = append(append([]string{}, args...), "--logFile", c.cfg.LogFile)
	}
	cmd := exec.Command(c.cfg.Path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening subprocess stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("opening subprocess stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("opening subprocess stderr: %w", err)
	}

	c.mu.Lock()
	if c.cmd != nil {
		c.mu.Unlock()
		return errors.New("tsserver subprocess already running")
	}
	c.cmd = cmd
	c.mu.Unlock()

	if err := cmd.Start(); err != nil {
		c.mu.Lock()
		c.cmd = nil
		c.mu.Unlock()
		return fmt.Errorf("starting %q: %w", c.cfg.Path, err)
	}
	c.logger.Infow("analysis subprocess started", "path", c.cfg.Path, "args", args, "pid", cmd.Process.Pid)

	c.run(stdin, stdout, stderr)
	return nil
}

// run wires the subprocess streams to the read, dispatch and stderr loops.
// Split from Start so tests can drive the client over in-memory pipes.
func (c *client) run(stdin io.WriteCloser, stdout, stderr io.Reader) {
	wg := &sync.WaitGroup{}
	queue := newEventQueue()

	c.mu.Lock()
	c.stdin = stdin
	c.queue = queue
	c.wg = wg
	c.mu.Unlock()

	wg.Add(2)
	go c.readLoop(stdout, wg)
	go c.dispatchLoop(queue, wg)
	if stderr != nil {
		wg.Add(1)
		go c.stderrLoop(stderr, wg)
	}
}

func (c *client) Stop(ctx context.Context) error {
	c.mu.Lock()
	cmd := c.cmd
	wg := c.wg
	c.cmd = nil
	c.mu.Unlock()

	if cmd == nil {
		return errors.New("tsserver subprocess not running")
	}
	if cmd.Process != nil {
		// Killing the process closes its stdout; the read loop observes EOF
		// and rejects anything still pending.
		if err := cmd.Process.Kill(); err != nil {
			c.logger.Warnw("killing analysis subprocess", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		wg.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
		// terminate skips the reap when the exit was requested; Wait here so
		// repeated Stop/Start cycles do not accumulate zombies.
		if err := cmd.Wait(); err != nil {
			c.logger.Debugw("analysis subprocess stopped", "error", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *client) Request(ctx context.Context, command string, args interface{}) (json.RawMessage, error) {
	p := &pendingRequest{command: command, ch: make(chan outcome, 1)}

	c.mu.Lock()
	if c.stdin == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", command, ErrClosed)
	}
	c.seq++
	seq := c.seq
	c.pending[seq] = p
	c.mu.Unlock()

	c.stats.Counter("requests").Inc(1)
	if err := c.write(requestMessage{Seq: seq, Type: _typeRequest, Command: command, Arguments: args}); err != nil {
		c.forget(seq)
		return nil, fmt.Errorf("writing %s request: %w", command, err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case r := <-p.ch:
		return r.body, r.err
	case <-ctx.Done():
		c.forget(seq)
		return nil, ctx.Err()
	case <-timer.C:
		c.forget(seq)
		c.stats.Counter("timeouts").Inc(1)
		return nil, fmt.Errorf("%s: %w after %s", command, ErrTimeout, c.timeout)
	}
}

func (c *client) Notify(command string, args interface{}) error {
	c.mu.Lock()
	if c.stdin == nil {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", command, ErrClosed)
	}
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.stats.Counter("notifications").Inc(1)
	if err := c.write(requestMessage{Seq: seq, Type: _typeRequest, Command: command, Arguments: args}); err != nil {
		return fmt.Errorf("writing %s notification: %w", command, err)
	}
	return nil
}

// write serializes one outgoing message as a single JSON line. The mutex
// preserves FIFO write order across concurrent callers.
func (c *client) write(msg requestMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	w := c.stdin
	c.mu.Unlock()
	if w == nil {
		return ErrClosed
	}

	if _, err := w.Write(append(body, '\n')); err != nil {
		// A failed stdin write means the subprocess is gone; callers must see
		// it as a transport failure, not a result they can absorb.
		return fmt.Errorf("%w: %s", ErrClosed, err)
	}
	return nil
}

func (c *client) forget(seq int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, seq)
}

// readLoop parses framed messages off the subprocess output until the stream
// ends, then rejects everything still pending.
func (c *client) readLoop(stdout io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()

	r := bufio.NewReader(stdout)
	for {
		body, err := readFrame(r)
		if err != nil {
			c.terminate(err)
			return
		}

		var msg message
		if err := json.Unmarshal(body, &msg); err != nil {
			c.stats.Counter("malformed_messages").Inc(1)
			c.logger.Warnw("discarding malformed message", "error", err)
			continue
		}
		c.deliver(&msg)
	}
}

func (c *client) deliver(msg *message) {
	switch msg.Type {
	case _typeResponse:
		c.mu.Lock()
		p, ok := c.pending[msg.RequestSeq]
		if ok {
			delete(c.pending, msg.RequestSeq)
		}
		c.mu.Unlock()

		if !ok {
			// Cannot be attributed to any caller.
			c.stats.Counter("unmatched_responses").Inc(1)
			c.logger.Warnw("dropping response with no pending request", "request_seq", msg.RequestSeq, "command", msg.Command)
			return
		}

		if msg.Success {
			p.ch <- outcome{body: msg.Body}
		} else {
			p.ch <- outcome{err: fmt.Errorf("%s: %s", p.command, msg.Message)}
		}

	case _typeEvent:
		c.stats.Counter("events").Inc(1)
		c.queue.push(Event{Name: msg.Event, Body: msg.Body})

	default:
		c.stats.Counter("malformed_messages").Inc(1)
		c.logger.Warnw("discarding message of unknown type", "type", msg.Type)
	}
}

// terminate rejects all pending requests and stops event dispatch. Called
// exactly once per subprocess instance, from the read loop.
func (c *client) terminate(reason error) {
	c.mu.Lock()
	rejected := len(c.pending)
	for seq, p := range c.pending {
		p.ch <- outcome{err: fmt.Errorf("%s: %w", p.command, ErrClosed)}
		delete(c.pending, seq)
	}
	c.stdin = nil
	cmd := c.cmd
	queue := c.queue
	c.mu.Unlock()

	queue.close()
	if rejected > 0 {
		c.stats.Counter("rejected").Inc(int64(rejected))
	}

	if cmd != nil {
		// Reap the process; Stop clears c.cmd first when the exit was requested.
		err := cmd.Wait()
		c.logger.Warnw("analysis subprocess exited", "error", err, "pendingRejected", rejected)
	} else if !errors.Is(reason, io.EOF) {
		c.logger.Debugw("subprocess stream closed", "error", reason)
	}
}

// dispatchLoop hands events to the registered handler one at a time, in
// arrival order, off the read loop's critical path.
func (c *client) dispatchLoop(queue *eventQueue, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		e, ok := queue.next()
		if !ok {
			return
		}

		c.mu.Lock()
		h := c.handler
		c.mu.Unlock()
		if h == nil {
			c.logger.Warnw("no event handler registered, ignoring event", "event", e.Name)
			continue
		}
		h(e)
	}
}

func (c *client) stderrLoop(stderr io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()

	c.mu.Lock()
	h := c.stderrHandler
	c.mu.Unlock()

	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := scanner.Text()
		c.logger.Debugw("tsserver stderr", "line", line)
		if h != nil {
			h(line)
		}
	}
}

// readFrame reads one Content-Length framed message body. Unparseable header
// lines are skipped until a usable frame starts.
func readFrame(r *bufio.Reader) ([]byte, error) {
	length := -1
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if length >= 0 {
				break
			}
			// Blank line before any header, keep scanning.
			continue
		}
		if strings.HasPrefix(line, _headerContentLength) {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, _headerContentLength)))
			if err != nil || n < 0 {
				length = -1
				continue
			}
			length = n
		}
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

// eventQueue is an unbounded FIFO between the read loop and the dispatch
// goroutine, so a slow event consumer never stalls response correlation.
type eventQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
	closed bool
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *eventQueue) push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, e)
	q.cond.Signal()
}

// next blocks until an event is available or the queue is closed. Events
// already queued at close time are still delivered.
func (q *eventQueue) next() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

func (q *eventQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
