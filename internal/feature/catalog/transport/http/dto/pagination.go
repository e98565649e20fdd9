// Package dto はカタログフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// PaginatedResponse は一覧エンドポイントの共通ページングエンベロープです。
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
}
