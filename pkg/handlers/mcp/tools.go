package mcp

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Tool names exposed over MCP.
const (
	toolCheckCors     = "check_cors"
	toolCheckCorsJSON = "check_cors_json"
	toolValidateURL   = "validate_url"
)

// toolDefinitions describes the exposed tools. check_cors and check_cors_json
// run the same two-phase check and differ only in how the verdict is rendered.
func toolDefinitions() []mcpschema.Tool {
	checkProps := map[string]map[string]interface{}{
		"origin":          {"type": "string", "description": "Origin making the cross-origin request, e.g. https://app.example.com"},
		"target":          {"type": "string", "description": "URL whose CORS configuration is probed"},
		"method":          {"type": "string", "description": "HTTP method of the actual request, defaults to GET"},
		"headers":         {"type": "string", "description": "Extra request headers as comma-separated Name:Value pairs"},
		"timeout_seconds": {"type": "number", "description": "Timeout per request in seconds, defaults to 10"},
	}
	textProps := mcpschema.ToolInputSchemaProperties{
		"verbose": {"type": "boolean", "description": "Include per-phase status codes and headers in the report"},
	}
	for name, prop := range checkProps {
		textProps[name] = prop
	}

	checkDesc := "Check whether a URL accepts cross-origin requests from an origin. " +
		"Sends an OPTIONS preflight followed by the actual request and reports a human-readable verdict."
	jsonDesc := "Check whether a URL accepts cross-origin requests from an origin and " +
		"return the full verdict as structured JSON, including both phase results."
	validateDesc := "Check whether a string parses as an absolute URL with a scheme and a host."

	return []mcpschema.Tool{
		{
			Name:        toolCheckCors,
			Description: &checkDesc,
			InputSchema: mcpschema.ToolInputSchema{
				Type:       "object",
				Properties: textProps,
				Required:   []string{"origin", "target"},
			},
		},
		{
			Name:        toolCheckCorsJSON,
			Description: &jsonDesc,
			InputSchema: mcpschema.ToolInputSchema{
				Type:       "object",
				Properties: mcpschema.ToolInputSchemaProperties(checkProps),
				Required:   []string{"origin", "target"},
			},
			OutputSchema: &mcpschema.ToolOutputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"success":         {"type": "boolean"},
					"message":         {"type": "string"},
					"preflight_check": {"type": "object"},
					"actual_check":    {"type": "object"},
				},
			},
		},
		{
			Name:        toolValidateURL,
			Description: &validateDesc,
			InputSchema: mcpschema.ToolInputSchema{
				Type: "object",
				Properties: mcpschema.ToolInputSchemaProperties{
					"url": {"type": "string", "description": "URL to validate"},
				},
				Required: []string{"url"},
			},
			OutputSchema: &mcpschema.ToolOutputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"url":   {"type": "string"},
					"valid": {"type": "boolean"},
				},
			},
		},
	}
}
