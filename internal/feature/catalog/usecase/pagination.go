package usecase

const (
	defaultPageSize = 10
)

// PageQuery は1始まりのページ番号とページサイズを表します。
type PageQuery struct {
	Number int
	Size   int
}

// normalize は範囲外の値をデフォルトに丸めます。
func (q PageQuery) normalize() PageQuery {
	if q.Number < 1 {
		q.Number = 1
	}
	if q.Size < 1 {
		q.Size = defaultPageSize
	}
	return q
}

// offset は正規化済みクエリのスキップ件数を返します。
func (q PageQuery) offset() int {
	return (q.Number - 1) * q.Size
}

// Page は1ページ分の結果と総件数を保持します。
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int64
}
