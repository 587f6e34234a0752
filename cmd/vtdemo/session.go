package main

import (
	"io"
	"os"
	"sync"

	gopty "github.com/aymanbagabas/go-pty"

	"github.com/patrick-goecommerce/termcore/internal/vt"
)

// session wraps a PTY-backed shell process and the vt.Screen/vt.Parser
// that interpret its output. It manages the full lifecycle: start → read
// loop → resize → close, the same shape the program this was adapted
// from uses for its own terminal panes.
type session struct {
	mu sync.Mutex

	screen      *vt.Screen
	parser      *vt.Parser
	replyWriter *ptyReplyWriter

	p   gopty.Pty
	cmd *gopty.Cmd

	done chan struct{}

	// outputCh receives a non-blocking signal each time new data is
	// written to screen. Nothing in this program reads it; the render
	// loop redraws on its periodic tick instead.
	outputCh chan struct{}

	exitCode int
	status   sessionStatus
}

type sessionStatus int

const (
	statusRunning sessionStatus = iota
	statusExited
	statusError
)

// ptyReplyWriter adapts a gopty.Pty into a vt.ResponseWriter so the
// Screen's DSR/DA/mouse replies go straight back to the child process.
type ptyReplyWriter struct {
	mu sync.Mutex
	p  gopty.Pty
}

func (w *ptyReplyWriter) WriteResponse(p []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.p == nil {
		return
	}
	_, _ = w.p.Write(p)
}

// newSession builds a session with a screen of the given size; no
// process is spawned until start is called.
func newSession(cols, rows int) *session {
	reply := &ptyReplyWriter{}
	s := &session{
		screen:   vt.NewScreen(cols, rows, reply),
		done:     make(chan struct{}),
		outputCh: make(chan struct{}, 1),
	}
	s.parser = vt.NewParser(s.screen)
	s.replyWriter = reply
	return s
}

func (s *session) start(argv []string, dir string, env []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(argv) == 0 {
		argv = []string{defaultShell()}
	}

	fullEnv := append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")
	fullEnv = append(fullEnv, env...)

	p, err := gopty.New()
	if err != nil {
		s.status = statusError
		return err
	}

	cols, rows := s.screen.Width(), s.screen.Height()
	if err := p.Resize(cols, rows); err != nil {
		p.Close()
		s.status = statusError
		return err
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = fullEnv

	if err := cmd.Start(); err != nil {
		p.Close()
		s.status = statusError
		return err
	}

	s.p = p
	s.cmd = cmd
	s.replyWriter.p = p

	go s.readLoop()
	go s.waitLoop()

	return nil
}

func (s *session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.parser.Feed(buf[:n])
			s.mu.Unlock()
			select {
			case s.outputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			break
		}
	}
}

func (s *session) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil {
		if s.cmd.ProcessState != nil {
			s.exitCode = s.cmd.ProcessState.ExitCode()
		} else {
			s.exitCode = 1
		}
	}
	s.status = statusExited
	s.mu.Unlock()
	close(s.done)
}

// write sends raw bytes to the PTY (keyboard input from the user).
func (s *session) write(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// resize updates both the PTY and the Screen's grid dimensions.
func (s *session) resize(cols, rows int) {
	s.mu.Lock()
	s.screen.Resize(cols, rows)
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_ = pty.Resize(cols, rows)
	}
}

func (s *session) close() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	<-s.done
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}
