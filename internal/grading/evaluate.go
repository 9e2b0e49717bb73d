// Package grading はクイズ回答とチャート描画の採点ロジックを提供します。
package grading

import (
	"math"
	"strings"
)

// Evaluate は前後の空白と大文字小文字を無視して回答を比較します。
// 部分点やあいまい一致はない。
func Evaluate(correct, submitted string) bool {
	return normalize(correct) == normalize(submitted)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Percent は round(100 * correct / total) を返します。total が 0 なら 0。
// 丸めは 0.5 を 0 から遠い方へ。
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
