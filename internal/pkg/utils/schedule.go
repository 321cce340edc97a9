package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeRE - формат времени отправления "ЧЧ:ММ"
var timeRE = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTimeOfDay проверяет одно значение времени в формате "ЧЧ:ММ"
func ValidTimeOfDay(s string) bool {
	return timeRE.MatchString(s)
}

// ValidTimeList проверяет список времен отправления
func ValidTimeList(times []string) bool {
	for _, t := range times {
		if !ValidTimeOfDay(t) {
			return false
		}
	}
	return true
}

// SplitList разбирает строку формы "a, b, c" в список непустых значений
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// SplitIntList разбирает строку "5, 7, 10" в список целых.
// Второе значение false, если встретилось нечисловое значение.
func SplitIntList(s string) ([]int, bool) {
	parts := SplitList(s)
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		result = append(result, n)
	}
	return result, true
}

// JoinList собирает список обратно в строку "a, b, c"
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// PresenceDateKey возвращает календарную часть ключа лога присутствия: "YYYY-MM-DD"
func PresenceDateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PresenceTimeKey возвращает минутную часть ключа лога присутствия: "HH:mm"
func PresenceTimeKey(t time.Time) string {
	return t.UTC().Format("15:04")
}

// PresenceMinuteBucket возвращает ISO-метку минуты для per-user лога
func PresenceMinuteBucket(t time.Time) string {
	return t.UTC().Truncate(time.Minute).Format("2006-01-02T15:04")
}
