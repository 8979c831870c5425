// Command uchttpd is a reference embedder for package uchttp: it accepts
// TCP connections, feeds read bytes into a pooled *uchttp.Connection via
// Input, and writes framer output back to the socket. It exists to
// exercise the library end to end; production embedders are expected to
// supply their own transport loop tailored to their platform.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/watt-toolkit/uchttp"
	"github.com/watt-toolkit/uchttp/examples/demoresources"
)

// ServerConfig mirrors the way http11.DefaultConnectionConfig bundles a
// handful of tunables with sane defaults rather than taking them as loose
// function arguments.
type ServerConfig struct {
	ListenAddr     string
	ReadTimeout    time.Duration
	ReadChunkBytes int
}

// DefaultServerConfig returns the configuration uchttpd runs with unless
// overridden by flags.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr:     ":8080",
		ReadTimeout:    10 * time.Second,
		ReadChunkBytes: 512,
	}
}

// logEntry is the JSON shape written once per connection, after its read
// loop ends, the same convention
// bolt/middleware/logger.go uses for its access log.
type logEntry struct {
	RemoteAddr string `json:"remote_addr"`
	Method     string `json:"method"`
	Error      bool   `json:"error,omitempty"`
}

func logJSON(e logEntry) {
	b, err := json.Marshal(e)
	if err != nil {
		log.Printf("uchttpd: log marshal error: %v", err)
		return
	}
	log.Println(string(b))
}

func main() {
	cfg := DefaultServerConfig()
	flag.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "listen address")
	flag.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "per-read deadline")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg ServerConfig) error {
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}
	defer ln.Close()
	log.Printf("uchttpd: listening on %s", ln.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := uchttp.NewConnectionPool()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return ln.Close()
	})

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-gctx.Done():
				return g.Wait()
			default:
				return err
			}
		}
		g.Go(func() error {
			handleConn(conn, cfg, pool)
			return nil
		})
	}
}

func handleConn(netConn net.Conn, cfg ServerConfig, pool *uchttp.ConnectionPool) {
	defer netConn.Close()

	httpConn := pool.Get()
	defer pool.Put(httpConn)

	entry := logEntry{RemoteAddr: netConn.RemoteAddr().String()}

	send := func(ctx any, data []byte) int {
		n, err := netConn.Write(data)
		if err != nil {
			return 0
		}
		return n
	}
	onError := func(c *uchttp.Connection, info *uchttp.ErrorInfo) {
		entry.Error = true
		uchttp.SetStatus(c, info.Status)
		uchttp.SetHeader(c, "Connection", "close")
		uchttp.SendHeader(c)
		uchttp.Flush(c)
	}

	if err := uchttp.Initialize(httpConn, send, onError, demoresources.Resources, netConn); err != nil {
		log.Printf("uchttpd: initialize: %v", err)
		return
	}

	reader := bufio.NewReaderSize(netConn, cfg.ReadChunkBytes)
	buf := make([]byte, cfg.ReadChunkBytes)
	for {
		if cfg.ReadTimeout > 0 {
			netConn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
		}
		n, err := reader.Read(buf)
		if n > 0 {
			uchttp.Input(httpConn, buf[:n])
		}
		if err != nil {
			break
		}
	}

	entry.Method = uchttp.Method(httpConn).String()
	logJSON(entry)
}
