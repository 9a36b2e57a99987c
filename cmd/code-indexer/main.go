// Command code-indexer is the demo host binding for the codeindex library:
// one subcommand per public entry point, plus an "mcp" subcommand that
// exposes the same entry points over the JSON-RPC tool protocol in
// internal/mcp. Configuration (a default workspace root and log level) is
// optional and loaded via viper; the library itself reads none of it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/codeindex-go/codeindexer/internal/mcp"
	"github.com/codeindex-go/codeindexer/internal/utils"
	"github.com/codeindex-go/codeindexer/pkg/codeindex"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "code-indexer",
		Short: "Query primitives over a polyglot TypeScript/Rust workspace",
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "zap log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("CODE_INDEXER")
	viper.AutomaticEnv()
	viper.SetConfigName(".code-indexer")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	root.AddCommand(
		newMapCmd(),
		newSearchCmd(),
		newSymbolCmd(),
		newImportsCmd(),
		newGraphCmd(),
		newResolveCmd(),
		newRefsCmd(),
		newMCPCmd(),
	)
	return root
}

func engine() *codeindex.Engine {
	level := viper.GetString("log_level")
	if level == "" {
		level = "info"
	}
	logger, err := utils.NewDevelopmentLogger(utils.ParseLevel(level))
	if err != nil {
		logger = zap.NewNop()
	}
	return codeindex.NewEngine(codeindex.WithLogger(logger))
}

func absPath(path string) string {
	if path == "" {
		path = viper.GetString("root")
	}
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map [path]",
		Short: "generate_repo_map: print the declaration skeleton for a workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) > 0 {
				root = args[0]
			}
			fmt.Println(engine().GenerateRepoMap(absPath(root)))
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query> [path]",
		Short: "search: fuzzy-rank declarations against a query string",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) > 1 {
				root = args[1]
			}
			return printJSON(engine().Search(absPath(root), args[0]))
		},
	}
}

func newSymbolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbol <file> <symbol>",
		Short: "get_symbol_info: look up a declaration by name within a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(engine().GetSymbolInfo(args[0], args[1]))
		},
	}
}

func newImportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "imports <file>",
		Short: "get_imports_exports: extract a TypeScript file's import/export model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(engine().GetImportsExports(args[0]))
		},
	}
}

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [path]",
		Short: "build_dependency_graph: build the file-level dependency graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) > 0 {
				root = args[0]
			}
			return printJSON(engine().BuildDependencyGraph(absPath(root)))
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <symbol> <file>",
		Short: "resolve_symbol: resolve a symbol to its definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(engine().ResolveSymbol(args[0], args[1]))
		},
	}
}

func newRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs <symbol> [path]",
		Short: "find_references: enumerate every occurrence of an identifier",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) > 1 {
				root = args[1]
			}
			return printJSON(engine().FindReferences(args[0], absPath(root)))
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the seven entry points as JSON-RPC tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := viper.GetString("log_level")
			if level == "" {
				level = "info"
			}
			logger, err := utils.NewDevelopmentLogger(utils.ParseLevel(level))
			if err != nil {
				logger = zap.NewNop()
			}

			server := mcp.NewServer(codeindex.NewEngine(codeindex.WithLogger(logger)), logger)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigChan
				logger.Info("shutting down")
				cancel()
			}()

			logger.Info("mcp server started")
			if err := server.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}
