// Package mcp adapts the seven codeindex entry points to a minimal
// JSON-RPC tool-call protocol over stdin/stdout, the external-collaborator
// shim the core library itself stays agnostic of.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/codeindex-go/codeindexer/pkg/codeindex"
)

// Server is the JSON-RPC tool host.
type Server struct {
	engine *codeindex.Engine
	log    *zap.Logger
	tools  map[string]*Tool
	stdin  io.Reader
	stdout io.Writer
}

// Tool is one exposed entry point.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Handler     func(params json.RawMessage) (interface{}, error)
}

// NewServer builds a server bound to the given engine.
func NewServer(engine *codeindex.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine: engine,
		log:    log,
		tools:  make(map[string]*Tool),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	s.registerTools()
	return s
}

// Start reads one JSON-RPC request per line until EOF or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	decoder := json.NewDecoder(s.stdin)
	encoder := json.NewEncoder(s.stdout)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var request rpcRequest
		if err := decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Warn("failed to decode request", zap.Error(err))
			continue
		}

		response := s.handleRequest(&request)
		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
	}
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleRequest(req *rpcRequest) *rpcResponse {
	resp := &rpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{"tools": map[string]bool{"listChanged": false}},
			"serverInfo":      map[string]string{"name": "code-indexer", "version": "0.1.0"},
		}
	case "tools/list":
		resp.Result = s.handleToolsList()
	case "tools/call":
		result, err := s.handleToolCall(req.Params)
		if err != nil {
			resp.Error = &rpcError{Code: -32603, Message: err.Error()}
		} else {
			resp.Result = result
		}
	default:
		resp.Error = &rpcError{Code: -32601, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
	return resp
}

func (s *Server) handleToolsList() interface{} {
	tools := make([]map[string]interface{}, 0, len(s.tools))
	for _, tool := range s.tools {
		tools = append(tools, map[string]interface{}{
			"name":        tool.Name,
			"description": tool.Description,
			"inputSchema": tool.InputSchema,
		})
	}
	return map[string]interface{}{"tools": tools}
}

func (s *Server) handleToolCall(params json.RawMessage) (interface{}, error) {
	var req struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("failed to parse tool call: %w", err)
	}

	tool, ok := s.tools[req.Name]
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", req.Name)
	}
	result, err := tool.Handler(req.Arguments)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"content": []map[string]interface{}{{"type": "text", "text": formatResult(result)}},
	}, nil
}

func formatResult(result interface{}) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(data)
}

func (s *Server) registerTool(t *Tool) {
	s.tools[t.Name] = t
}

func pathProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}

func (s *Server) registerTools() {
	s.registerTool(&Tool{
		Name:        "generate_repo_map",
		Description: "Generate an indented skeleton of every declaration in a workspace",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"path": pathProp("workspace root")},
			"required":   []string{"path"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct{ Path string `json:"path"` }
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.GenerateRepoMap(req.Path), nil
		},
	})

	s.registerTool(&Tool{
		Name:        "search",
		Description: "Fuzzy-rank declarations in a workspace against a query string",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":  pathProp("workspace root"),
				"query": pathProp("fuzzy query"),
			},
			"required": []string{"path", "query"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct {
				Path  string `json:"path"`
				Query string `json:"query"`
			}
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.Search(req.Path, req.Query), nil
		},
	})

	s.registerTool(&Tool{
		Name:        "get_symbol_info",
		Description: "Look up a declaration by name within a single file",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"file":   pathProp("file path"),
				"symbol": pathProp("symbol name"),
			},
			"required": []string{"file", "symbol"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct {
				File   string `json:"file"`
				Symbol string `json:"symbol"`
			}
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.GetSymbolInfo(req.File, req.Symbol), nil
		},
	})

	s.registerTool(&Tool{
		Name:        "get_imports_exports",
		Description: "Extract a TypeScript file's import and export model",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"file": pathProp("file path")},
			"required":   []string{"file"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct{ File string `json:"file"` }
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.GetImportsExports(req.File), nil
		},
	})

	s.registerTool(&Tool{
		Name:        "build_dependency_graph",
		Description: "Build the file-level import/export dependency graph for a workspace",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"path": pathProp("workspace root")},
			"required":   []string{"path"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct{ Path string `json:"path"` }
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.BuildDependencyGraph(req.Path), nil
		},
	})

	s.registerTool(&Tool{
		Name:        "resolve_symbol",
		Description: "Resolve a symbol name to its definition, following one import hop if needed",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"symbol": pathProp("symbol name"),
				"file":   pathProp("starting file"),
			},
			"required": []string{"symbol", "file"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct {
				Symbol string `json:"symbol"`
				File   string `json:"file"`
			}
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.ResolveSymbol(req.Symbol, req.File), nil
		},
	})

	s.registerTool(&Tool{
		Name:        "find_references",
		Description: "Enumerate every occurrence of an identifier across a workspace",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"symbol": pathProp("symbol name"),
				"path":   pathProp("workspace root"),
			},
			"required": []string{"symbol", "path"},
		},
		Handler: func(params json.RawMessage) (interface{}, error) {
			var req struct {
				Symbol string `json:"symbol"`
				Path   string `json:"path"`
			}
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, err
			}
			return s.engine.FindReferences(req.Symbol, req.Path), nil
		},
	})
}
