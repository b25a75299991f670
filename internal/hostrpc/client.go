package hostrpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/tinytelemetry/doseorb/internal/model"
)

// Client pushes host state to an overlay over a Unix domain socket.
type Client struct {
	conn    net.Conn
	mu      sync.Mutex
	nextID  int
	scanner *bufio.Scanner
	encoder *json.Encoder
}

// Dial connects to the host RPC server at the given path.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.DialTimeout("unix", socketPath, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("hostrpc: dial: %w", err)
	}
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, scannerInitBufSize), scannerMaxTokenSize)
	return &Client{
		conn:    conn,
		scanner: scanner,
		encoder: json.NewEncoder(conn),
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) call(method string, params interface{}, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	req := Request{JSONRPC: "2.0", ID: c.nextID, Method: method}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("hostrpc: marshal params: %w", err)
		}
		req.Params = data
	}

	c.conn.SetDeadline(time.Now().Add(10 * time.Second))
	defer c.conn.SetDeadline(time.Time{})

	if err := c.encoder.Encode(req); err != nil {
		return fmt.Errorf("hostrpc: send: %w", err)
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return fmt.Errorf("hostrpc: read: %w", err)
		}
		return fmt.Errorf("hostrpc: connection closed")
	}

	var resp Response
	if err := json.Unmarshal(c.scanner.Bytes(), &resp); err != nil {
		return fmt.Errorf("hostrpc: unmarshal response: %w", err)
	}
	if resp.Error != nil {
		return resp.Error
	}

	if dest != nil {
		if err := json.Unmarshal(resp.Result, dest); err != nil {
			return fmt.Errorf("hostrpc: unmarshal result: %w", err)
		}
	}
	return nil
}

// Tick delivers one tick notification and returns the server's tick count.
func (c *Client) Tick() (uint64, error) {
	var result TickResult
	err := c.call("Tick", nil, &result)
	return result.Ticks, err
}

// SetState replaces the overlay's view of the host.
func (c *Client) SetState(s model.HostSnapshot) error {
	return c.call("SetState", s, nil)
}

// Snapshot reads back the overlay's current view of the host.
func (c *Client) Snapshot() (model.HostSnapshot, error) {
	var result model.HostSnapshot
	err := c.call("Snapshot", nil, &result)
	return result, err
}
