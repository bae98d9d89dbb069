// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/flopperam/unrealmcp/internal/journal"
	"github.com/flopperam/unrealmcp/internal/mcp/service"
	"github.com/flopperam/unrealmcp/internal/platform/config"
	"github.com/flopperam/unrealmcp/internal/platform/otel"
	"github.com/flopperam/unrealmcp/internal/unreal"
)

// Config holds MCP command configuration.
type Config struct {
	EngineAddr  string `env:"UNREAL_MCP_ENGINE_ADDR"  envDefault:"127.0.0.1:55557"`
	HTTPAddr    string `env:"UNREAL_MCP_HTTP_ADDR"    envDefault:"localhost:8081"`
	Transport   string `env:"UNREAL_MCP_TRANSPORT"    envDefault:"stdio"`
	APIToken    string `env:"UNREAL_MCP_API_TOKEN"`
	JournalPath string `env:"UNREAL_MCP_JOURNAL_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.EngineAddr, "engine-addr", cfg.EngineAddr, "Unreal editor bridge address")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.APIToken, "api-token", cfg.APIToken, "Bearer token required on HTTP endpoints")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "SQLite command journal path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "unreal-mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	var opts []unreal.Option
	if cfg.JournalPath != "" {
		store, err := journal.Open(cfg.JournalPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, unreal.WithRecorder(store))
	}

	return service.Run(ctx, service.Config{
		EngineAddr: cfg.EngineAddr,
		HTTPAddr:   cfg.HTTPAddr,
		Transport:  service.TransportKind(cfg.Transport),
		APIToken:   cfg.APIToken,
	}, opts...)
}
