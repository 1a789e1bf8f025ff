package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
	"github.com/ironsheep/pixbuf-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixbuf-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pixbuf-mcp - MCP server for pixel buffer operations")
			fmt.Println()
			fmt.Println("Usage: pixbuf-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PIXBUF_MCP_LOG_LEVEL=debug|info|warn   Log verbosity (default info)")
			fmt.Println("  PIXBUF_MCP_JPEG_QUALITY=1-100          JPEG quality for image_save (default 95)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if level, ok := bufferLogLevel(cfg.LogLevel); ok {
		pixbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
	if cfg.Debug() {
		log.Printf("pixbuf-mcp v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// bufferLogLevel maps the configured log level onto the buffer library's
// logger. At info level the library stays silent.
func bufferLogLevel(level string) (slog.Level, bool) {
	switch level {
	case "debug":
		return slog.LevelDebug, true
	case "warn":
		return slog.LevelWarn, true
	}
	return 0, false
}
