package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/arcade/internal/config"
	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	sessionDrainTimeout = 15 * time.Second
)

// arcade holds what every session shares: the shutdown signal and the session count.
type arcade struct {
	ctx            context.Context
	sessions       sync.WaitGroup
	mu             sync.Mutex // Orders sessions.Add against the shutdown Wait
	closing        bool
	defaultProgram string
	mouse          bool
	logger         *log.Logger
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ssh",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	ctx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()
	a := &arcade{
		ctx:            ctx,
		defaultProgram: config.GetEnv("ARCADE_APP", loop.ProgramShooter),
		mouse:          config.GetEnvBool("ARCADE_MOUSE", true),
		logger:         logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			a.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// Show every player the shutdown notice and wait for the sessions to end.
	cancelSessions()
	a.close()
	if !a.wait(sessionDrainTimeout) {
		logger.Warn("sessions still open after drain timeout")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// middleware runs the requested program for the session.
func (a *arcade) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		name := programFromCommand(sess.Command(), a.defaultProgram)
		scene, err := loop.NewScene(name, config.GetEnvInt("ARCADE_SEED", 0), a.logger.With("user", sess.User()))
		if err != nil {
			fmt.Fprintf(sess, "Error: %v\n", err)
			_ = sess.Exit(1)
			return
		}

		if !a.enter() {
			fmt.Fprintln(sess, "The server is shutting down. Please try again shortly.")
			return
		}
		defer a.sessions.Done()

		a.logger.Info("new session", "user", sess.User(), "program", name,
			"term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		c := loop.NewClient(scene, bufio.NewReader(sess), sess, loop.ClientOptions{
			TermSizeFunc: sizeTracker.getSize,
			Logger:       a.logger.With("user", sess.User()),
			Inactivity:   true,
			Mouse:        a.mouse,
		})
		if err := c.Run(a.ctx); err != nil {
			a.logger.Error("session error", "user", sess.User(), "err", err)
		}

		a.logger.Info("session ended", "user", sess.User(), "program", name)
		next(sess)
	}
}

// enter registers a new session. It refuses once shutdown has begun.
func (a *arcade) enter() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closing {
		return false
	}
	a.sessions.Add(1)
	return true
}

// close stops new sessions from registering.
func (a *arcade) close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closing = true
}

// wait blocks until every session has ended or timeout passes, and reports which came first.
func (a *arcade) wait(timeout time.Duration) bool {
	ended := make(chan struct{})
	go func() {
		a.sessions.Wait()
		close(ended)
	}()
	select {
	case <-ended:
		return true
	case <-time.After(timeout):
		return false
	}
}

// programFromCommand picks the program named by "ssh -t host <program>".
func programFromCommand(cmd []string, fallback string) string {
	if len(cmd) == 0 || cmd[0] == "" {
		return fallback
	}
	return cmd[0]
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
