// Package ai is the generation collaborator: it forwards a user request and
// optional template content to a chat-completion backend and returns the
// generated document text or JSON.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sapfs/fsgen/internal/core"
)

// Backend selects the generation implementation. Mock mode is an explicit
// configuration value, never inferred from a missing API key.
type Backend string

const (
	BackendOpenAI Backend = "openai"
	BackendMock   Backend = "mock"
)

// Config configures the generation client.
type Config struct {
	Backend       Backend
	Model         string
	APIKey        string
	BaseURL       string // optional override for OpenAI-compatible gateways
	Temperature   float32
	Timeout       time.Duration
	MaxConcurrent int
	MaxWait       time.Duration
}

// Client generates FS documents via the configured backend. Concurrent
// generations are bounded by a semaphore so a burst of requests cannot
// exhaust the upstream quota.
type Client struct {
	cfg     Config
	oai     *openai.Client
	limiter *Limiter
}

// NewClient creates a generation client from an explicit configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		cfg:     cfg,
		limiter: NewLimiter(cfg.MaxConcurrent, cfg.MaxWait),
	}

	if cfg.Backend == BackendOpenAI {
		oaiCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oaiCfg.BaseURL = cfg.BaseURL
		}
		c.oai = openai.NewClientWithConfig(oaiCfg)
	}

	return c
}

// Limiter exposes the generation limiter for shutdown draining.
func (c *Client) Limiter() *Limiter {
	return c.limiter
}

// Generate produces the FS document for a user request. templateContent is
// the extracted reference-template text, empty when no template was
// uploaded. The returned string is either a JSON object matching
// core.FSDocumentData or free text, depending on what the backend produced.
func (c *Client) Generate(ctx context.Context, userRequest, templateContent string) (string, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return "", err
	}
	defer c.limiter.Release()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	switch c.cfg.Backend {
	case BackendMock:
		return mockDocument(userRequest, templateContent), nil
	case BackendOpenAI:
		return c.generateOpenAI(ctx, userRequest, templateContent)
	default:
		return "", &core.GenerationError{
			Backend: string(c.cfg.Backend),
			Err:     fmt.Errorf("unknown backend %q", c.cfg.Backend),
		}
	}
}

func (c *Client) generateOpenAI(ctx context.Context, userRequest, templateContent string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userRequest},
	}
	if templateContent != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: templatePrefix + templateContent,
		})
	}

	resp, err := c.oai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", &core.GenerationError{Backend: string(BackendOpenAI), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &core.GenerationError{
			Backend: string(BackendOpenAI),
			Err:     fmt.Errorf("completion returned no choices"),
		}
	}

	return ExtractJSON(resp.Choices[0].Message.Content), nil
}

var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON returns the first {...} block of content when it parses as
// JSON; otherwise content is returned unchanged. Models often wrap the JSON
// object in prose or code fences.
func ExtractJSON(content string) string {
	match := jsonBlock.FindString(content)
	if match != "" && json.Valid([]byte(match)) {
		return match
	}
	return content
}

// mockDocument reproduces the offline reply used when no AI backend is
// reachable, keeping the full flow exercisable in development and tests.
func mockDocument(userRequest, templateContent string) string {
	summary := userRequest
	if runes := []rune(userRequest); len(runes) > 20 {
		summary = string(runes[:20])
	}

	templateNote := "未提供模板"
	if templateContent != "" {
		templateNote = "已参考上传的模板内容"
	}

	return fmt.Sprintf(`[MOCK FS DOCUMENT]
1. 文档概述: 关于 %s... 的功能规格说明。
2. 业务背景: 用户请求生成基于 "%s" 的 SAP 功能。
3. 功能描述: 这是一个模拟生成的功能文档。
4. 参考模板: %s
5. 状态: 模拟成功。`, summary, userRequest, templateNote)
}
