// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// 原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, config
	Action   string // 利用者向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidPrivilege = "INVALID_PRIVILEGE"
	ErrCodeInvalidLogLevel  = "INVALID_LOG_LEVEL"
)

// NewInvalidPrivilegeError は未知の権限名に対するエラーを生成する。
func NewInvalidPrivilegeError(name string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidPrivilege,
		Message:  fmt.Sprintf("無効な権限です: %s", name),
		Category: "validation",
		Action:   "権限には CREATE、READ、UPDATE、DELETE のいずれかを指定してください。",
	}
}

// NewInvalidLogLevelError は無効なログレベル指定に対するエラーを生成する。
func NewInvalidLogLevelError(level string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidLogLevel,
		Message:  fmt.Sprintf("無効なログレベルです: %s", level),
		Category: "config",
		Action:   "ログレベルには debug、info、warn、error のいずれかを指定してください。",
	}
}
