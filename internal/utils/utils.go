// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale язык форматирования чисел по умолчанию
const DefaultLocale = "ru"

// NumberFormatter форматирует числа с разделителями разрядов для выбранного языка
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter создает форматтер. Неизвестный тег языка заменяется на DefaultLocale.
func NewNumberFormatter(locale string) *NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &NumberFormatter{printer: message.NewPrinter(tag)}
}

// Int форматирует целое число, например 15420 -> "15 420"
func (f *NumberFormatter) Int(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Float форматирует число с одним знаком после запятой
func (f *NumberFormatter) Float(v float64) string {
	return f.printer.Sprintf("%.1f", v)
}

// FormatRating форматирует оценку в виде "87/100"
func FormatRating(rating int) string {
	return fmt.Sprintf("%d/100", rating)
}

// TruncateString обрезает строку до указанной длины в символах, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
