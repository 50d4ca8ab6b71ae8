package mcp

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"detectivequest/internal/debug"
	"detectivequest/internal/rooms"
)

// GetMapTool is the tool a map server must expose. It takes no arguments and
// returns the map as a JSON document in its first text content.
const GetMapTool = "get_map"

var ErrNotConnected = errors.New("not connected to MCP server")

// MapClient fetches a room map from an MCP server started as a subprocess.
type MapClient struct {
	client    *mcp.Client
	session   *mcp.ClientSession
	command   []string
	transport func() mcp.Transport
	logger    *debug.Logger
}

// NewMapClient prepares a client for the server started by commandLine,
// a space-separated program and arguments.
func NewMapClient(commandLine string, logger *debug.Logger) (*MapClient, error) {
	command := strings.Fields(commandLine)
	if len(command) == 0 {
		return nil, fmt.Errorf("MCP server command is empty")
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "detective-quest-client",
		Version: "v1.0.0",
	}, nil)

	c := &MapClient{
		client:  client,
		command: command,
		logger:  logger,
	}
	c.transport = c.commandTransport
	return c, nil
}

func (c *MapClient) commandTransport() mcp.Transport {
	cmd := exec.Command(c.command[0], c.command[1:]...)
	return mcp.NewCommandTransport(cmd)
}

func (c *MapClient) Connect(ctx context.Context) error {
	session, err := c.client.Connect(ctx, c.transport())
	if err != nil {
		return fmt.Errorf("failed to connect to MCP server: %w", err)
	}

	c.session = session
	c.logger.Printf("Connected to MCP map server %q", strings.Join(c.command, " "))

	return nil
}

func (c *MapClient) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// ListTools returns the names of the tools the server offers.
func (c *MapClient) ListTools(ctx context.Context) ([]string, error) {
	if c.session == nil {
		return nil, ErrNotConnected
	}

	result, err := c.session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	return names, nil
}

func (c *MapClient) GetMap(ctx context.Context) (*rooms.Spec, error) {
	if c.session == nil {
		return nil, ErrNotConnected
	}

	params := &mcp.CallToolParams{
		Name:      GetMapTool,
		Arguments: nil,
	}

	result, err := c.session.CallTool(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get map: %w", err)
	}

	spec, err := SpecFromResult(result)
	if err != nil {
		return nil, err
	}

	c.logger.Printf("Retrieved map rooted at %q", spec.Name)

	return spec, nil
}

// Supply connects, fetches and builds the map, then disconnects.
func (c *MapClient) Supply(ctx context.Context) (*rooms.Room, error) {
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	defer c.Close()

	if c.logger.IsEnabled() {
		if tools, err := c.ListTools(ctx); err == nil {
			c.logger.Printf("MCP map server tools: %v", tools)
		}
	}

	spec, err := c.GetMap(ctx)
	if err != nil {
		return nil, err
	}

	root, err := rooms.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build map from MCP server: %w", err)
	}
	return root, nil
}
