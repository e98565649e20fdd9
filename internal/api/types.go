// Package api defines the shared HTTP response envelopes.
package api

// ErrorResponse は失敗レスポンスの共通形式です。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は本文を持たない成功レスポンスの共通形式です。
type MessageResponse struct {
	Message string `json:"message"`
}
