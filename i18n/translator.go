package i18n

import "strings"

// Translator retrieves localized messages for error kinds. params provides
// optional values to embed in the message (for example, "min" or "expected").
type Translator interface {
	Message(kind string, params map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(kind string, params map[string]string) string {
	var tpl string
	switch t.lang {
	case "ja":
		switch kind {
		case "required":
			tpl = "必須項目です"
		case "unknown":
			tpl = "未知のフィールドです"
		case "type":
			tpl = "型が不正です"
		case "min_length":
			tpl = "{min}文字以上で入力してください"
		case "max_length":
			tpl = "{max}文字以下で入力してください"
		case "too_small":
			tpl = "{min}以上でなければなりません"
		case "too_big":
			tpl = "{max}以下でなければなりません"
		case "invalid":
			tpl = "不正な値です"
		case "invalid_checksum":
			tpl = "カード番号が不正です"
		case "parse_error":
			tpl = "解析エラー"
		}
	default: // "en"
		switch kind {
		case "required":
			tpl = "This field is required"
		case "unknown":
			tpl = "Unknown field"
		case "type":
			tpl = "Invalid type"
		case "min_length":
			tpl = "Must be at least {min} characters long"
		case "max_length":
			tpl = "Must be at most {max} characters long"
		case "too_small":
			tpl = "Must be at least {min}"
		case "too_big":
			tpl = "Must be at most {max}"
		case "invalid":
			tpl = "Invalid value"
		case "invalid_checksum":
			tpl = "Not a valid card number"
		case "parse_error":
			tpl = "Parse error"
		}
	}
	if tpl == "" {
		return kind
	}
	return Expand(tpl, params)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Passing nil restores the default.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given kind using the current Translator.
func T(kind string, params map[string]string) string {
	return currentTranslator.Message(kind, params)
}

// Expand substitutes {name} placeholders in a message template. Placeholders
// without a matching param are left untouched.
func Expand(tpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tpl, "{") {
		return tpl
	}
	for k, v := range params {
		tpl = strings.ReplaceAll(tpl, "{"+k+"}", v)
	}
	return tpl
}
