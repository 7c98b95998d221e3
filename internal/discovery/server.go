package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/udisondev/blobarena/internal/config"
	"github.com/udisondev/blobarena/internal/protocol"
)

const (
	timeoutSweepPeriod = 10 * time.Second
	staleAfter         = 60 * time.Second
	idleSleep          = 100 * time.Millisecond
	readBufSize        = 64 * 1024
)

// Server is the Discovery Service's single-threaded cooperative UDP loop
// (§4.2, §5).
type Server struct {
	cfg config.Discovery
	dir *Directory
}

// NewServer builds a Discovery Service bound to cfg.
func NewServer(cfg config.Discovery) *Server {
	return &Server{cfg: cfg, dir: NewDirectory()}
}

// Run opens a dual-stack UDP socket on cfg.Port and processes datagrams
// until ctx is cancelled (§5: "single-threaded cooperative event loop...
// sleeps 100 ms when idle").
func (s *Server) Run(ctx context.Context) error {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: s.cfg.Port})
	if err != nil {
		return fmt.Errorf("binding discovery socket on port %d: %w", s.cfg.Port, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	slog.Info("discovery service listening", "port", s.cfg.Port)

	buf := make([]byte, readBufSize)
	lastSweep := time.Now()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if time.Since(lastSweep) >= timeoutSweepPeriod {
			s.dir.SweepTimeouts(staleAfter)
			lastSweep = time.Now()
		}

		conn.SetReadDeadline(time.Now().Add(idleSleep))
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("discovery read error", "error", err)
			continue
		}

		s.handle(conn, addr, string(buf[:n]))
	}
}

func (s *Server) handle(conn *net.UDPConn, addr *net.UDPAddr, payload string) {
	switch {
	case payload == protocol.Query:
		reply := protocol.EncodeServers(s.dir.List())
		if _, err := conn.WriteToUDP([]byte(reply), addr); err != nil {
			slog.Warn("discovery reply failed", "remote", addr, "error", err)
		}

	case strings.HasPrefix(payload, "REGISTER:"):
		fields := strings.TrimPrefix(payload, "REGISTER:")
		req, err := protocol.DecodeRegister(fields)
		if err != nil {
			slog.Debug("dropping malformed REGISTER", "remote", addr, "error", err)
			return
		}
		key := Key(addr.IP.String(), req.Port)
		s.dir.Register(key, addr.IP.String(), req)
		slog.Info("game server registered", "name", req.Name, "key", key, "players", req.Current, "max", req.Max)
		if _, err := conn.WriteToUDP([]byte(protocol.OK), addr); err != nil {
			slog.Warn("discovery reply failed", "remote", addr, "error", err)
		}

	case strings.HasPrefix(payload, "HEARTBEAT:"):
		key := protocol.DecodeHeartbeat(strings.TrimPrefix(payload, "HEARTBEAT:"))
		s.dir.Heartbeat(key)

	default:
		slog.Debug("dropping unrecognized discovery datagram", "remote", addr)
	}
}
