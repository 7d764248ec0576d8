package remote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("comparing/remote")

const defaultDialTimeout = time.Second * 10

// verdictRequest is the wire format of one comparison question
type verdictRequest struct {
	ID     uint64 `json:"id"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// verdictResponse is the wire format of one answer. Verdict is negative when
// First ranks before Second, positive when it ranks after and zero otherwise.
type verdictResponse struct {
	ID      uint64 `json:"id"`
	Verdict int    `json:"verdict"`
}

// ArgsRemoteComparator holds the dependencies needed to create a remote
// comparator
type ArgsRemoteComparator[T any] struct {
	URL    string
	Render func(item T) string
}

// remoteComparator delegates each comparison to a verdict service over a
// websocket connection. Requests carry a monotonic ID and the connection is
// used strictly one request at a time, so answers are matched by ID and an
// out-of-order answer is a protocol violation.
type remoteComparator[T any] struct {
	mut     sync.Mutex
	conn    *websocket.Conn
	render  func(item T) string
	counter uint64
}

// NewRemoteComparator dials the verdict service and creates a remote
// comparator bound to that connection
func NewRemoteComparator[T any](args ArgsRemoteComparator[T]) (*remoteComparator[T], error) {
	if len(args.URL) == 0 {
		return nil, ErrEmptyURL
	}

	render := args.Render
	if render == nil {
		render = func(item T) string {
			return fmt.Sprintf("%v", item)
		}
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: defaultDialTimeout,
	}
	conn, _, err := dialer.Dial(args.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w while dialing %s", err, args.URL)
	}

	log.Debug("connected to verdict service", "url", args.URL)

	return &remoteComparator[T]{
		conn:   conn,
		render: render,
	}, nil
}

// Compare sends the two candidates to the verdict service and blocks until it
// answers. A context deadline is pushed down onto the connection as read and
// write deadlines.
func (comparator *remoteComparator[T]) Compare(ctx context.Context, a T, b T) (int, error) {
	comparator.mut.Lock()
	defer comparator.mut.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	err := comparator.conn.SetWriteDeadline(deadline)
	if err != nil {
		return 0, err
	}
	err = comparator.conn.SetReadDeadline(deadline)
	if err != nil {
		return 0, err
	}

	comparator.counter++
	request := verdictRequest{
		ID:     comparator.counter,
		First:  comparator.render(a),
		Second: comparator.render(b),
	}
	err = comparator.conn.WriteJSON(request)
	if err != nil {
		return 0, err
	}

	response := verdictResponse{}
	err = comparator.conn.ReadJSON(&response)
	if err != nil {
		return 0, err
	}
	if response.ID != request.ID {
		return 0, fmt.Errorf("%w: sent %d, received %d", ErrMismatchedResponse, request.ID, response.ID)
	}

	log.Trace("verdict received",
		"id", response.ID,
		"first", request.First,
		"second", request.Second,
		"verdict", response.Verdict,
	)

	return response.Verdict, nil
}

// Close closes the underlying websocket connection
func (comparator *remoteComparator[T]) Close() error {
	comparator.mut.Lock()
	defer comparator.mut.Unlock()

	return comparator.conn.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (comparator *remoteComparator[T]) IsInterfaceNil() bool {
	return comparator == nil
}
