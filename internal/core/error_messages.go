package core

// error_messages.go maps internal errors to user-facing messages with codes
// for support reference. When users encounter errors, they can quote the
// error code for faster diagnosis.
//
// Code groups:
//
//	FILE001-FILE099  upload and file-handling errors
//	XLS001-XLS099    spreadsheet parsing errors
//	GEN001-GEN099    AI generation errors
//	EXP001-EXP099    document/spreadsheet export errors
//	SYS001-SYS099    generic internal failures

import (
	"context"
	"errors"
	"strings"
)

// UserMessage is a user-friendly error with an optional action suggestion
// and a stable code for support reference.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// errorPattern matches substrings in error text for failures that reach us
// as opaque strings from third-party libraries.
type errorPattern struct {
	patterns []string
	msg      UserMessage
}

var errorPatterns = []errorPattern{
	{
		patterns: []string{"file too large", "request body too large", "multipart"},
		msg: UserMessage{
			Code:    "FILE002",
			Message: "文件过大或表单无效",
			Action:  "Check the upload size limit and resend the file",
		},
	},
	{
		patterns: []string{"zip", "not a valid zip", "corrupt"},
		msg: UserMessage{
			Code:    "XLS001",
			Message: "解析失败：文件不是有效的工作簿",
			Action:  "Re-export the spreadsheet and upload it again",
		},
	},
	{
		patterns: []string{"too many concurrent generations"},
		msg: UserMessage{
			Code:    "GEN002",
			Message: "系统繁忙：生成请求过多",
			Action:  "Wait a moment and try again",
		},
	},
	{
		patterns: []string{"rate limit", "quota", "429"},
		msg: UserMessage{
			Code:    "GEN003",
			Message: "AI 服务繁忙，请稍后重试",
			Action:  "Wait a moment before generating again",
		},
	},
}

// MapError converts an internal error into a UserMessage. Typed errors are
// matched first; string patterns are a fallback for library errors that
// carry no type.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{Code: "SYS000", Message: "未知错误"}
	}

	switch {
	case errors.Is(err, ErrNoFile):
		return UserMessage{
			Code:    "FILE001",
			Message: "未上传文件",
			Action:  "Select a file before submitting",
		}
	case errors.Is(err, ErrMissingSheet):
		return UserMessage{
			Code:    "XLS002",
			Message: "解析失败：工作簿中没有工作表",
			Action:  "Ensure the export contains at least one sheet",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return UserMessage{
			Code:    "SYS002",
			Message: "请求超时",
			Action:  "Try again with a smaller file",
		}
	case errors.Is(err, context.Canceled):
		return UserMessage{
			Code:    "SYS003",
			Message: "请求已取消",
		}
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return UserMessage{
			Code:    "XLS001",
			Message: "解析失败：文件不是有效的工作簿",
			Action:  "Re-export the spreadsheet and upload it again",
		}
	}

	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return UserMessage{
			Code:    "EXP001",
			Message: "生成失败：导出文档时出错",
			Action:  "Check the document content and try again",
		}
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return UserMessage{
			Code:    "GEN001",
			Message: "生成失败，请检查 AI 配置",
			Action:  "Verify the AI backend configuration and API key",
		}
	}

	lower := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		for _, pattern := range p.patterns {
			if strings.Contains(lower, pattern) {
				return p.msg
			}
		}
	}

	return UserMessage{
		Code:    "SYS001",
		Message: "内部错误",
		Action:  "Try again; contact support with this code if it persists",
	}
}
