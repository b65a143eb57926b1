package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for diagnostic codes.
// data provides optional parameters to embed in the message (for example,
// "key" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unable_to_coerce":
			return "型を変換できません"
		case "type_coercion":
			return "型を変換しました"
		case "not_integer":
			return "整数ではありません"
		case "minimum_violated":
			return "最小値を下回っています"
		case "maximum_violated":
			return "最大値を超えています"
		case "max_length_violated":
			return "最大長を超えています"
		case "min_length_violated":
			return "最小長に足りません"
		case "not_root_index_key":
			return "ルートのキーではありません"
		case "regex_violated":
			return "パターンに一致しません"
		case "invalid_regex":
			return "正規表現が不正です"
		case "invalid_key":
			return "不正なキーです: " + data["key"]
		case "extra_key":
			return "スキーマにないキーです: " + data["key"]
		case "missing_field":
			return "フィールドがありません: " + data["key"]
		case "enum_value_not_allowed":
			return "列挙で許可されていない値です: " + data["value"]
		case "no_options_matched":
			return "一致する選択肢がありません"
		case "schema_type_not_recognized":
			return "スキーマの型を認識できません: " + data["kind"]
		case "max_depth_exceeded":
			return "最大深度を超えました"
		}
	default: // "en"
		switch code {
		case "unable_to_coerce":
			return "unable to coerce"
		case "type_coercion":
			return "type coercion"
		case "not_integer":
			return "not an integer"
		case "minimum_violated":
			return "minimum violated"
		case "maximum_violated":
			return "maximum violated"
		case "max_length_violated":
			return "max length violated"
		case "min_length_violated":
			return "min length violated"
		case "not_root_index_key":
			return "not a valid key into the root index"
		case "regex_violated":
			return "regex violated"
		case "invalid_regex":
			return "invalid regex"
		case "invalid_key":
			return "invalid key: " + data["key"]
		case "extra_key":
			return "extra key not in schema: " + data["key"]
		case "missing_field":
			return "missing field: " + data["key"]
		case "enum_value_not_allowed":
			return "value not allowed by enum: " + data["value"]
		case "no_options_matched":
			return "no options matched"
		case "schema_type_not_recognized":
			return "schema type not recognized: " + data["kind"]
		case "max_depth_exceeded":
			return "maximum depth exceeded"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// Match resolves an arbitrary BCP 47 tag (or Accept-Language style list) to
// one of the built-in languages.
func Match(tags ...string) string {
	_, idx := language.MatchStrings(matcher, tags...)
	if idx == 1 {
		return "ja"
	}
	return "en"
}

// SetLanguage switches the built-in Translator language. Any tag is accepted
// and matched against the supported languages ("en"/"ja").
func SetLanguage(lang string) {
	mu.Lock()
	currentTranslator = dictTranslator{lang: Match(lang)}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
