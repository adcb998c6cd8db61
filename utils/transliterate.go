package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/unicode/norm"
)

// Font core của PDF (Helvetica, cp1252) không vẽ được dấu tiếng Việt
var vietnameseToASCII = buildVietnameseTable(map[string]string{
	"a": "àáảãạăằắẳẵặâầấẩẫậ",
	"A": "ÀÁẢÃẠĂẰẮẲẴẶÂẦẤẨẪẬ",
	"d": "đ",
	"D": "Đ",
	"e": "èéẻẽẹêềếểễệ",
	"E": "ÈÉẺẼẸÊỀẾỂỄỆ",
	"i": "ìíỉĩị",
	"I": "ÌÍỈĨỊ",
	"o": "òóỏõọôồốổỗộơờớởỡợ",
	"O": "ÒÓỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢ",
	"u": "ùúủũụưừứửữự",
	"U": "ÙÚỦŨỤƯỪỨỬỮỰ",
	"y": "ỳýỷỹỵ",
	"Y": "ỲÝỶỸỴ",
})

func buildVietnameseTable(groups map[string]string) map[rune]string {
	table := make(map[rune]string)
	for base, accented := range groups {
		for _, r := range accented {
			table[r] = base
		}
	}
	return table
}

// Transliterate bỏ dấu, trả về chuỗi ASCII. Gọi lại nhiều lần cho cùng kết quả.
func Transliterate(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if ascii, ok := vietnameseToASCII[r]; ok {
			b.WriteString(ascii)
			continue
		}
		b.WriteString(unidecode.Unidecode(string(r)))
	}
	return b.String()
}

// TruncateText cắt chuỗi còn max ký tự và thêm "..." nếu dài hơn
func TruncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// LastChars lấy n ký tự cuối (mã vé, mã đơn rút gọn)
func LastChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
