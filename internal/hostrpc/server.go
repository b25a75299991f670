package hostrpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tinytelemetry/doseorb/internal/model"
)

const (
	scannerInitBufSize  = 64 * 1024
	scannerMaxTokenSize = 1024 * 1024
)

// Server accepts host state pushes over a Unix domain socket using
// JSON-RPC 2.0.
type Server struct {
	socketPath string
	host       *RemoteHost
	listener   net.Listener
	wg         sync.WaitGroup
	quit       chan struct{}
}

// NewServer creates a new host RPC server feeding host.
func NewServer(socketPath string, host *RemoteHost) *Server {
	return &Server{
		socketPath: socketPath,
		host:       host,
		quit:       make(chan struct{}),
	}
}

// Start begins listening on the Unix socket and accepting connections.
func (s *Server) Start() error {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0755); err != nil {
		return fmt.Errorf("hostrpc: mkdir: %w", err)
	}

	// Remove a stale socket left behind by a crashed overlay.
	if _, err := os.Stat(s.socketPath); err == nil {
		conn, dialErr := net.DialTimeout("unix", s.socketPath, 500*time.Millisecond)
		if dialErr != nil {
			os.Remove(s.socketPath)
		} else {
			conn.Close()
			return fmt.Errorf("hostrpc: another overlay is already listening on %s", s.socketPath)
		}
	}

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("hostrpc: listen: %w", err)
	}
	s.listener = ln

	s.wg.Add(1)
	go s.acceptLoop()

	log.Printf("hostrpc: listening on %s", s.socketPath)
	return nil
}

// Stop closes the listener, releases blocked Tick calls, waits for
// connections to drain and removes the socket file.
func (s *Server) Stop() {
	close(s.quit)
	s.host.Close()
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	os.Remove(s.socketPath)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return
			default:
				log.Printf("hostrpc: accept error: %v", err)
				continue
			}
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-s.quit:
			conn.Close()
		case <-done:
		}
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, scannerInitBufSize), scannerMaxTokenSize)
	encoder := json.NewEncoder(conn)

	for scanner.Scan() {
		var req Request
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			encoder.Encode(Response{JSONRPC: "2.0", Error: &RPCError{Code: codeParseError, Message: "parse error"}})
			continue
		}

		if err := encoder.Encode(s.dispatch(req)); err != nil {
			return
		}
	}
}

func (s *Server) dispatch(req Request) Response {
	resp := Response{JSONRPC: "2.0", ID: req.ID}

	marshalResult := func(v interface{}, err error) Response {
		if err != nil {
			resp.Error = &RPCError{Code: codeAppError, Message: err.Error()}
			return resp
		}
		data, merr := json.Marshal(v)
		if merr != nil {
			resp.Error = &RPCError{Code: codeInternalError, Message: merr.Error()}
			return resp
		}
		resp.Result = data
		return resp
	}

	switch req.Method {
	case "Tick":
		n, err := s.host.PushTick()
		return marshalResult(TickResult{Ticks: n}, err)

	case "SetState":
		var p model.HostSnapshot
		if err := json.Unmarshal(req.Params, &p); err != nil {
			resp.Error = &RPCError{Code: codeInvalidParams, Message: fmt.Sprintf("invalid params: %v", err)}
			return resp
		}
		s.host.SetState(p)
		return marshalResult(map[string]bool{"ok": true}, nil)

	case "Snapshot":
		return marshalResult(s.host.Snapshot(), nil)

	default:
		resp.Error = &RPCError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
		return resp
	}
}
