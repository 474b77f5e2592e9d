package app

import (
	"strconv"
	"strings"
)

var rule = strings.Repeat("=", 60) + "\n"

// bytesList はバイト列を [1 2 3] の形式で返します
func bytesList(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// stepLabel は復元段階の名前を表示用のパラメータ名に変換します
func stepLabel(step string) string {
	switch step {
	case "modulus":
		return "m"
	case "multiplier":
		return "a"
	case "increment":
		return "c"
	default:
		return step
	}
}
