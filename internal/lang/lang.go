// Package lang defines the speech locales the bot can read aloud in.
package lang

// Default is the locale used when a subscription or command does not name one.
const Default = "ja-JP"

type locale struct {
	code string
	name string
}

// Ordered so command choices and help output are stable.
var locales = []locale{
	{"ja-JP", "Japanese"},
	{"en-US", "English"},
	{"zh-CN", "Chinese"},
	{"ko-KR", "Korean"},
}

// IsSupported reports whether code is one of the speech locales.
func IsSupported(code string) bool {
	for _, l := range locales {
		if l.code == code {
			return true
		}
	}
	return false
}

// Name returns the display name for a locale code, or the code itself
// when it is not one of ours.
func Name(code string) string {
	for _, l := range locales {
		if l.code == code {
			return l.name
		}
	}
	return code
}

// Codes returns the supported locale codes in display order.
func Codes() []string {
	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = l.code
	}
	return out
}
