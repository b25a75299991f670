package hostrpc

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// JSON-RPC 2.0 Method Reference
//
// A game client pushes its state to the overlay over a Unix domain socket,
// one request per line.
//
//   Method      Params                 Result
//   ─────────   ────────────────────   ──────────────────
//   Tick        (none)                 {"ticks": uint64}
//   SetState    model.HostSnapshot     {"ok": true}
//   Snapshot    (none)                 model.HostSnapshot
//
// Tick notifications are queued in delivery order; a Tick call blocks while
// the queue is full, so a slow overlay applies back-pressure to the client
// instead of dropping ticks.
//
// Error codes follow JSON-RPC 2.0:
//   -32700  Parse error (malformed JSON)
//   -32601  Method not found
//   -32602  Invalid params
//   -32603  Internal error (marshal failure)
//   -32000  Application error (server shutting down)

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
	codeAppError       = -32000
)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string { return e.Message }

// TickResult is returned from Tick.
type TickResult struct {
	Ticks uint64 `json:"ticks"`
}

// DefaultSocketPath returns the default Unix socket path.
// It prefers $XDG_RUNTIME_DIR/doseorb/host.sock, falling back to
// ~/.local/state/doseorb/host.sock.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "doseorb", "host.sock")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/doseorb-host.sock"
	}
	return filepath.Join(home, ".local", "state", "doseorb", "host.sock")
}
