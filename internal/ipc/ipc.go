// Package ipc lets a companion process poke the running assistant over a unix socket,
// e.g. a desktop hotkey running `assistant-ctl trigger` to start a voice turn.
package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
)

const (
	CmdTrigger = "trigger"
	CmdStatus  = "status"
	CmdSay     = "say"
)

// ControlMessage is one request sent to the assistant.
type ControlMessage struct {
	Cmd  string `json:"cmd"`
	Text string `json:"text,omitempty"`
}

// Reply is written back on the same connection.
type Reply struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Handler processes one control message.
type Handler func(ctx context.Context, msg ControlMessage) Reply

// Server accepts control messages on a unix socket.
type Server struct {
	path    string
	handler Handler
	ln      net.Listener
	wg      sync.WaitGroup
}

// NewServer creates a server bound to path once Start is called.
func NewServer(path string, handler Handler) *Server {
	return &Server{path: path, handler: handler}
}

// Start listens and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	_ = os.Remove(s.path)

	ln, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("ipc: listen %s: %w", s.path, err)
	}
	s.ln = ln

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		ln.Close()
	}()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				continue
			}
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.handleConn(ctx, conn)
			}()
		}
	}()

	return nil
}

// Wait blocks until the accept loop and all connections are finished.
func (s *Server) Wait() {
	s.wg.Wait()
	_ = os.Remove(s.path)
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	var msg ControlMessage
	if err := json.NewDecoder(conn).Decode(&msg); err != nil {
		_ = json.NewEncoder(conn).Encode(Reply{OK: false, Message: "bad request"})
		return
	}
	_ = json.NewEncoder(conn).Encode(s.handler(ctx, msg))
}

// Send delivers msg to the server at path and returns its reply.
func Send(ctx context.Context, path string, msg ControlMessage) (Reply, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return Reply{}, fmt.Errorf("ipc: dial %s: %w", path, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(2 * time.Minute))
	}

	if err := json.NewEncoder(conn).Encode(msg); err != nil {
		return Reply{}, fmt.Errorf("ipc: send: %w", err)
	}

	var reply Reply
	if err := json.NewDecoder(conn).Decode(&reply); err != nil {
		return Reply{}, fmt.Errorf("ipc: read reply: %w", err)
	}
	return reply, nil
}
