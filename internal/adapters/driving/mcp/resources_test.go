package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleBuiltinsResource(t *testing.T) {
	server, err := NewServer(&Ports{Init: &mockInitService{}})
	require.NoError(t, err)

	result, err := server.handleBuiltinsResource(context.Background(), readRequest("ahoy://builtins"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &names))
	assert.Contains(t, names, "print")
	assert.Contains(t, names, "list")
}

func TestServer_handleInitResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated text", func(t *testing.T) {
		mockInit := &mockInitService{rendered: "from mypkg import sub\n"}
		server, err := NewServer(&Ports{Init: mockInit})
		require.NoError(t, err)

		result, err := server.handleInitResource(ctx, readRequest("ahoy://init/mypkg"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "from mypkg import sub\n", result.Contents[0].Text)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Init: &mockInitService{}})
		require.NoError(t, err)

		_, err = server.handleInitResource(ctx, readRequest("ahoy://wrong/mypkg"))
		assert.Error(t, err)
	})
}

func TestExtractModule(t *testing.T) {
	assert.Equal(t, "mypkg", extractModule("ahoy://init/mypkg"))
	assert.Equal(t, "mypkg.sub", extractModule("ahoy://init/mypkg.sub"))
	assert.Equal(t, "", extractModule("ahoy://builtins"))
}
