// Command telnetkeys is a minimal Telnet listener that negotiates a small
// set of options with the client, then forwards every byte of the
// connection — unfiltered, IAC included — into a keystroke.Stream and logs
// the decoded events as they arrive, at debug level (shown only with -dev).
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"

	"github.com/vtyshell/keystroke"
)

func main() {
	addr := flag.String("addr", ":2323", "address to listen on")
	csiByte := flag.Uint("csi", 0x1B, "CSI trigger byte (default: ESC, i.e. ESC [ starts a CSI sequence)")
	dev := flag.Bool("dev", false, "use a development (console, debug-level) logger")
	flag.Parse()

	logger, err := newLogger(*dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telnetkeys: building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(*addr, byte(*csiByte), logger); err != nil {
		logger.Fatal("telnetkeys: fatal", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(addr string, csiByte byte, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	defer ln.Close()

	sugar := logger.Sugar()
	sugar.Infow("telnetkeys listening", "addr", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			sugar.Errorw("accept failed", "error", err)
			continue
		}
		go serve(conn, csiByte, sugar)
	}
}

func serve(conn net.Conn, csiByte byte, sugar *zap.SugaredLogger) {
	session := newSession(conn, csiByte)
	sugar.Infow("client connected",
		"session", session.id,
		"remote_addr", conn.RemoteAddr().String(),
	)
	defer func() {
		conn.Close()
		sugar.Infow("client disconnected", "session", session.id)
	}()

	if err := session.negotiate(); err != nil {
		sugar.Warnw("telnet negotiation failed", "session", session.id, "error", err)
		return
	}

	if err := session.pump(sugar); err != nil {
		sugar.Debugw("session ended", "session", session.id, "error", err)
	}
}

// logEvent renders a decoded keystroke event as structured fields.
func logEvent(sugar *zap.SugaredLogger, sessionID string, ev keystroke.Event) {
	sugar.Debugw("keystroke",
		"session", sessionID,
		"type", ev.Type.String(),
		"value", ev.Value,
		"broken", ev.Flags.Broken(),
		"truncated", ev.Flags.Truncated(),
		"len", ev.Len,
	)
}
