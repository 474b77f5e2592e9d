package stattest

import "errors"

// ErrEmptyData は空のデータに対して要約統計量を求めた場合のエラー
var ErrEmptyData = errors.New("データが空です")
