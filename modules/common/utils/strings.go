package utils

import "unicode/utf8"

// TruncateString - 로그용 문자열 자르기 (maxLen 바이트 이내, 글자 중간에서 자르지 않음)
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
