package view

import (
	"html/template"
	"strings"
	"time"

	"ouma-web/internal/i18n"

	"github.com/PuerkitoBio/goquery"
)

// FuncMap template helpers shared by every page
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"l":             i18n.L,
		"t":             func(lang, key string) string { return i18n.T(lang).Get(key) },
		"stripHtml":     StripHTML,
		"truncate":      Truncate,
		"featureImages": FeatureImages,
		"safeHTML":      func(s string) template.HTML { return template.HTML(s) },
		"nl2br":         NL2BR,
		"formatTime":    FormatTime,
		"add":           func(a, b int) int { return a + b },
		"hasPrefix":     strings.HasPrefix,
	}
}

// StripHTML returns the text content of an HTML fragment
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// Truncate cuts s to n characters and appends "...". n <= 0 disables it.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// FeatureImages lists the img sources embedded in a features fragment
func FeatureImages(s string) []string {
	if !strings.Contains(s, "<img") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil
	}
	var srcs []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			srcs = append(srcs, src)
		}
	})
	return srcs
}

// NL2BR escapes s and turns newlines into <br>
func NL2BR(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// FormatTime formats t for tables, empty for the zero time
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
