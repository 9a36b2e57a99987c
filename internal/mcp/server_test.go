package mcp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeindex-go/codeindexer/pkg/codeindex"
)

func setupTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	engine := codeindex.NewEngine()
	return NewServer(engine, nil), root
}

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestHandleInitialize(t *testing.T) {
	server, _ := setupTestServer(t)
	resp := server.handleRequest(&rpcRequest{Method: "initialize"})
	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, result["protocolVersion"])
	require.NotEmpty(t, result["serverInfo"])
}

func TestHandleToolsList(t *testing.T) {
	server, _ := setupTestServer(t)
	result := server.handleToolsList().(map[string]interface{})
	tools := result["tools"].([]map[string]interface{})
	require.Len(t, tools, 7)

	names := make(map[string]bool)
	for _, tool := range tools {
		names[tool["name"].(string)] = true
	}
	for _, expected := range []string{
		"generate_repo_map", "search", "get_symbol_info", "get_imports_exports",
		"build_dependency_graph", "resolve_symbol", "find_references",
	} {
		require.True(t, names[expected], "expected tool %s to be registered", expected)
	}
}

func TestHandleToolCall_GenerateRepoMap(t *testing.T) {
	server, root := setupTestServer(t)
	writeFile(t, root, "a.ts", "export function add(x: number, y: number) { return x+y; }")

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "generate_repo_map",
		"arguments": map[string]string{"path": root},
	})

	result, err := server.handleToolCall(params)
	require.NoError(t, err)
	wrapped := result.(map[string]interface{})
	content := wrapped["content"].([]map[string]interface{})
	require.Len(t, content, 1)
	require.Contains(t, content[0]["text"], "function add(x: number, y: number)")
}

func TestHandleToolCall_GetSymbolInfo(t *testing.T) {
	server, root := setupTestServer(t)
	path := writeFile(t, root, "a.ts", "export function greet(name: string) { return name; }")

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "get_symbol_info",
		"arguments": map[string]string{"file": path, "symbol": "greet"},
	})

	result, err := server.handleToolCall(params)
	require.NoError(t, err)
	wrapped := result.(map[string]interface{})
	content := wrapped["content"].([]map[string]interface{})
	require.Contains(t, content[0]["text"], "greet")
}

func TestHandleToolCall_UnknownTool(t *testing.T) {
	server, _ := setupTestServer(t)
	params := json.RawMessage(`{"name": "not_a_real_tool"}`)

	_, err := server.handleToolCall(params)
	require.Error(t, err)
}

func TestHandleToolCall_InvalidParams(t *testing.T) {
	server, _ := setupTestServer(t)
	params := json.RawMessage(`{invalid json}`)

	_, err := server.handleToolCall(params)
	require.Error(t, err)
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	server, _ := setupTestServer(t)
	resp := server.handleRequest(&rpcRequest{Method: "not/a/method"})
	require.NotNil(t, resp.Error)
	require.Equal(t, -32601, resp.Error.Code)
}
