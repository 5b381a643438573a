package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/NeuralTrust/CorsCheck/pkg/app/checker"
	"github.com/NeuralTrust/CorsCheck/pkg/app/report"
	"github.com/NeuralTrust/CorsCheck/pkg/config"
	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
)

// ToolHandler serves the MCP tool surface. Only tools/list and tools/call are
// implemented; resource and prompt methods answer with method not found.
type ToolHandler struct {
	logger      *logrus.Logger
	evaluator   checker.Evaluator
	transformer *report.Transformer
	defaults    config.DefaultsConfig
	tools       []mcpschema.Tool
}

func NewToolHandler(
	logger *logrus.Logger,
	evaluator checker.Evaluator,
	transformer *report.Transformer,
	defaults config.DefaultsConfig,
) *ToolHandler {
	return &ToolHandler{
		logger:      logger,
		evaluator:   evaluator,
		transformer: transformer,
		defaults:    defaults,
		tools:       toolDefinitions(),
	}
}

type checkArgs struct {
	Origin         string  `mapstructure:"origin"`
	Target         string  `mapstructure:"target"`
	Method         string  `mapstructure:"method"`
	Headers        string  `mapstructure:"headers"`
	TimeoutSeconds float64 `mapstructure:"timeout_seconds"`
	Verbose        bool    `mapstructure:"verbose"`
}

func (a *checkArgs) toRequest(defaults config.DefaultsConfig) *check.Request {
	var tokens []string
	if strings.TrimSpace(a.Headers) != "" {
		tokens = strings.Split(a.Headers, ",")
	}
	req := &check.Request{
		Origin:  a.Origin,
		Target:  a.Target,
		Method:  a.Method,
		Headers: check.ParseHeaders(tokens),
		Timeout: time.Duration(a.TimeoutSeconds * float64(time.Second)),
	}
	req.ApplyDefaults(defaults.Method, defaults.Timeout())
	return req
}

type validateURLArgs struct {
	URL string `mapstructure:"url"`
}

func (h *ToolHandler) Initialize(_ context.Context, _ *mcpschema.InitializeRequestParams, _ *mcpschema.InitializeResult) {
}

func (h *ToolHandler) ListResources(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListResourcesRequest]) (*mcpschema.ListResourcesResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("resources/list not implemented", nil)
}

func (h *ToolHandler) ListResourceTemplates(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListResourceTemplatesRequest]) (*mcpschema.ListResourceTemplatesResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("resources/templates/list not implemented", nil)
}

func (h *ToolHandler) ReadResource(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ReadResourceRequest]) (*mcpschema.ReadResourceResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("resources/read not implemented", nil)
}

func (h *ToolHandler) Subscribe(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.SubscribeRequest]) (*mcpschema.SubscribeResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("subscribe not implemented", nil)
}

func (h *ToolHandler) Unsubscribe(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.UnsubscribeRequest]) (*mcpschema.UnsubscribeResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("unsubscribe not implemented", nil)
}

func (h *ToolHandler) ListTools(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListToolsRequest]) (*mcpschema.ListToolsResult, *jsonrpc.Error) {
	return &mcpschema.ListToolsResult{Tools: h.tools}, nil
}

func (h *ToolHandler) CallTool(ctx context.Context, req *jsonrpc.TypedRequest[*mcpschema.CallToolRequest]) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	if req == nil || req.Request == nil {
		return nil, jsonrpc.NewInvalidRequest("missing request", nil)
	}
	name := strings.TrimSpace(req.Request.Params.Name)
	args := req.Request.Params.Arguments
	switch name {
	case toolCheckCors:
		return h.checkTool(ctx, args, false)
	case toolCheckCorsJSON:
		return h.checkTool(ctx, args, true)
	case toolValidateURL:
		return h.validateURLTool(args)
	default:
		return nil, mcpschema.NewUnknownTool(name)
	}
}

func (h *ToolHandler) ListPrompts(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListPromptsRequest]) (*mcpschema.ListPromptsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("prompts/list not implemented", nil)
}

func (h *ToolHandler) GetPrompt(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.GetPromptRequest]) (*mcpschema.GetPromptResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("prompts/get not implemented", nil)
}

func (h *ToolHandler) Complete(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.CompleteRequest]) (*mcpschema.CompleteResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("complete not implemented", nil)
}

func (h *ToolHandler) OnNotification(_ context.Context, _ *jsonrpc.Notification) {}

func (h *ToolHandler) Implements(method string) bool {
	switch method {
	case mcpschema.MethodToolsList, mcpschema.MethodToolsCall:
		return true
	default:
		return false
	}
}

// checkTool runs the two-phase check. Requests that do not validate become
// tool errors, not protocol faults, so clients see them as regular results.
func (h *ToolHandler) checkTool(ctx context.Context, args map[string]interface{}, structured bool) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	var a checkArgs
	if jErr := decodeArgs(args, &a); jErr != nil {
		return nil, jErr
	}
	verdict, err := h.evaluator.Evaluate(ctx, a.toRequest(h.defaults))
	if err != nil {
		h.logger.WithError(err).Warn("check tool rejected request")
		return toolError(err.Error()), nil
	}
	if structured {
		return verdictResult(verdict)
	}
	return textResult(h.transformer.Text(verdict, a.Verbose)), nil
}

func (h *ToolHandler) validateURLTool(args map[string]interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	var a validateURLArgs
	if jErr := decodeArgs(args, &a); jErr != nil {
		return nil, jErr
	}
	if strings.TrimSpace(a.URL) == "" {
		return toolError("url is required"), nil
	}
	return structuredResult(map[string]interface{}{
		"url":   a.URL,
		"valid": check.IsWellFormedURL(a.URL),
	})
}

func decodeArgs(args map[string]interface{}, out interface{}) *jsonrpc.Error {
	if len(args) == 0 {
		return nil
	}
	if err := mapstructure.Decode(args, out); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("unable to decode tool arguments: %v", err), nil)
	}
	return nil
}

func textResult(text string) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{
		Content: []mcpschema.CallToolResultContentElem{{Type: "text", Text: text}},
	}
}

func toolError(msg string) *mcpschema.CallToolResult {
	isErr := true
	return &mcpschema.CallToolResult{
		IsError: &isErr,
		Content: []mcpschema.CallToolResultContentElem{{Type: "text", Text: msg}},
	}
}

// verdictResult returns the verdict as structured content plus a text block
// with the serialized JSON for clients that only read content.
func verdictResult(verdict *check.Verdict) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	raw, err := json.Marshal(verdict)
	if err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("unable to marshal verdict: %v", err), nil)
	}
	var structured map[string]interface{}
	_ = json.Unmarshal(raw, &structured)
	return &mcpschema.CallToolResult{
		StructuredContent: structured,
		Content:           []mcpschema.CallToolResultContentElem{{Type: "text", Text: string(raw)}},
	}, nil
}

func structuredResult(structured map[string]interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	raw, err := json.Marshal(structured)
	if err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("unable to marshal tool result: %v", err), nil)
	}
	return &mcpschema.CallToolResult{
		StructuredContent: structured,
		Content:           []mcpschema.CallToolResultContentElem{{Type: "text", Text: string(raw)}},
	}, nil
}
