package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/tgoodington/Ancient-Order-sub002/agent"
	"github.com/tgoodington/Ancient-Order-sub002/decision"
	"github.com/tgoodington/Ancient-Order-sub002/ipc"
)

const banner = `
 ▄▀█ █▄ █ █▀▀ █ █▀▀ █▄ █ ▀█▀   █▀█ █▀█ █▀▄ █▀▀ █▀█
 █▀█ █ ▀█ █▄▄ █ ██▄ █ ▀█  █    █▄█ █▀▄ █▄▀ ██▄ █▀▄

Combat Decision Service`

func main() {
	socketPath := flag.String("socket", "/tmp/ancient-order-ai.sock", "unix socket to listen on")
	profilesPath := flag.String("profiles", "", "YAML file of archetype profiles to add or override")
	workers := flag.Int("workers", 0, "concurrent evaluations per round (0 = one per CPU)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	slog.Info("starting decision service")

	registry, err := decision.NewDefaultRegistry()
	if err != nil {
		slog.Error("failed to load built-in profiles", "error", err)
		os.Exit(1)
	}
	if *profilesPath != "" {
		if err := registry.LoadFile(*profilesPath); err != nil {
			slog.Error("failed to load profiles", "path", *profilesPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("archetype profiles loaded", "count", registry.Count(), "ids", registry.IDs())

	evaluator, err := decision.NewEvaluator(registry)
	if err != nil {
		slog.Error("failed to build evaluator", "error", err)
		os.Exit(1)
	}
	decider := agent.NewDecider(evaluator, *workers)

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(*socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", *socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(*socketPath)

	slog.Info("listening on domain socket", "path", *socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for seq := 1; ; seq++ {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			peer := fmt.Sprintf("conn-%d", seq)
			slog.Info("new connection accepted", "peer", peer)
			go handleConn(ctx, conn, peer, decider)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(ctx context.Context, conn net.Conn, peer string, decider *agent.Decider) {
	c := ipc.NewConnection(conn, nil)
	c.Peer = peer
	s := agent.New(ctx, decider)
	c.RegisterHandler(ipc.TypeHello, s.HandleHello)
	c.RegisterHandler(ipc.TypeDecide, s.HandleDecide)
	c.Serve()
}
