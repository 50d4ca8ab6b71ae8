package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"detectivequest/internal/rooms"
)

// SpecFromResult decodes a get_map tool result into a map spec.
func SpecFromResult(result *mcp.CallToolResult) (*rooms.Spec, error) {
	text, err := firstText(result)
	if err != nil {
		return nil, err
	}

	if result.IsError {
		return nil, fmt.Errorf("map server error: %s", text)
	}

	var spec rooms.Spec
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	return &spec, nil
}

func firstText(result *mcp.CallToolResult) (string, error) {
	if result == nil || len(result.Content) == 0 {
		return "", errors.New("map server returned no content")
	}
	content, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		return "", fmt.Errorf("map server returned %T, want text content", result.Content[0])
	}
	return content.Text, nil
}
