package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
	numericRef   = regexp.MustCompile(`^brief-(\d+)$`)
)

// Generate нормализует заголовок в URL-безопасный slug.
// Детерминированная чистая функция: lowercase, выбрасываем все кроме
// словарных символов/пробелов/дефисов, пробельные серии и серии дефисов
// схлопываются в один дефис, краевые дефисы обрезаются.
// Заголовок из одних спецсимволов дает пустую строку - решение за вызывающим.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithID добавляет id сущности для разрешения коллизии уникальности.
// Применяется вызывающим один раз; повторная коллизия - фатальная ошибка записи.
func WithID(base string, id int64) string {
	if base == "" {
		return fmt.Sprintf("brief-%d", id)
	}
	return fmt.Sprintf("%s-%d", base, id)
}

// Fallback возвращает производный slug для сущности без него.
func Fallback(id int64) string {
	return fmt.Sprintf("brief-%d", id)
}

// ParseFallbackID распознает slug вида "brief-{digits}" и возвращает числовой id.
func ParseFallbackID(s string) (int64, bool) {
	m := numericRef.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var id int64
	if _, err := fmt.Sscan(m[1], &id); err != nil {
		return 0, false
	}
	return id, true
}
