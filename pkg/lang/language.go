package lang

import "strings"

// Language represents supported output languages
type Language string

const (
	English            Language = "en"
	ChineseSimplified  Language = "zh"
	ChineseTraditional Language = "zh-tw"
	Japanese           Language = "ja"
	Korean             Language = "ko"
)

// String returns the string representation of the language
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is valid
func (l Language) IsValid() bool {
	switch l {
	case English, ChineseSimplified, ChineseTraditional, Japanese, Korean:
		return true
	default:
		return false
	}
}

// DisplayName returns the display name of the language
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case ChineseSimplified:
		return "中文（简体）"
	case ChineseTraditional:
		return "中文（繁體）"
	case Japanese:
		return "日本語"
	case Korean:
		return "한국어"
	default:
		return string(l)
	}
}

// PromptName is the language name given to the model
func (l Language) PromptName() string {
	switch l {
	case ChineseSimplified:
		return "Simplified Chinese"
	case ChineseTraditional:
		return "Traditional Chinese"
	case Japanese:
		return "Japanese"
	case Korean:
		return "Korean"
	default:
		return "English"
	}
}

// DefaultSubject is the commit subject used when the model reply is unusable
func (l Language) DefaultSubject() string {
	switch l {
	case ChineseSimplified:
		return "更新代码"
	case ChineseTraditional:
		return "更新程式碼"
	case Japanese:
		return "コードを更新"
	case Korean:
		return "코드 업데이트"
	default:
		return "update code"
	}
}

// DefaultLanguage returns the default language
func DefaultLanguage() Language {
	return ChineseSimplified
}

// ParseLanguage parses a string to a Language
func ParseLanguage(s string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if l.IsValid() {
		return l
	}
	return DefaultLanguage()
}
