package htcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode NFC form, so that e + U+0300 becomes è
// and o + U+0300 becomes ò before any table lookup sees the text.
// Already-composed input is returned as is.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
