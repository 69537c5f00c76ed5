package ai

import (
	"context"
	"strings"
	"testing"
	"time"
)

func newMockClient() *Client {
	return NewClient(Config{Backend: BackendMock, Model: "gpt-4o"})
}

func TestGenerate_Mock(t *testing.T) {
	c := newMockClient()

	out, err := c.Generate(context.Background(), "创建客户主数据维护功能", "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(out, "[MOCK FS DOCUMENT]") {
		t.Errorf("mock output should be marked, got %q", out)
	}
	if !strings.Contains(out, "创建客户主数据维护功能") {
		t.Error("mock output should echo the request")
	}
	if !strings.Contains(out, "未提供模板") {
		t.Error("mock output should note the missing template")
	}
}

func TestGenerate_MockWithTemplate(t *testing.T) {
	c := newMockClient()

	out, err := c.Generate(context.Background(), "需求", "模板正文")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(out, "已参考上传的模板内容") {
		t.Error("mock output should note the template was used")
	}
}

func TestGenerate_MockTruncatesLongRequests(t *testing.T) {
	c := newMockClient()
	long := strings.Repeat("需", 40)

	out, err := c.Generate(context.Background(), long, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(out, strings.Repeat("需", 20)+"...") {
		t.Error("summary line should truncate to 20 runes")
	}
}

func TestGenerate_UnknownBackend(t *testing.T) {
	c := NewClient(Config{Backend: "llama"})

	if _, err := c.Generate(context.Background(), "x", ""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare object",
			content: `{"title":"t"}`,
			want:    `{"title":"t"}`,
		},
		{
			name:    "object wrapped in prose",
			content: "好的，以下是文档：\n{\"title\":\"t\"}\n",
			want:    `{"title":"t"}`,
		},
		{
			name:    "invalid json falls back to raw",
			content: "not json at {all",
			want:    "not json at {all",
		},
		{
			name:    "plain text untouched",
			content: "纯文本文档",
			want:    "纯文本文档",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.content); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestLimiter_AcquireRelease(t *testing.T) {
	l := NewLimiter(2, time.Second)

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}
	if got := l.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount = %d, want 2", got)
	}

	l.Release()
	l.Release()
	if got := l.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after release = %d, want 0", got)
	}
}

func TestLimiter_RejectsWhenFull(t *testing.T) {
	l := NewLimiter(1, 50*time.Millisecond)

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer l.Release()

	err := l.Acquire(context.Background())
	if err != ErrTooManyGenerations {
		t.Errorf("err = %v, want ErrTooManyGenerations", err)
	}
}

func TestLimiter_ContextCancellation(t *testing.T) {
	l := NewLimiter(1, time.Minute)

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer l.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Acquire(ctx); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestLimiter_WaitForDrain(t *testing.T) {
	l := NewLimiter(1, time.Second)

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		done <- l.WaitForDrain(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	l.Release()

	if err := <-done; err != nil {
		t.Errorf("WaitForDrain returned %v, want nil", err)
	}
}
