package markup

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md     goldmark.Markdown
	mdOnce sync.Once
)

func markdown() goldmark.Markdown {
	mdOnce.Do(func() {
		// html.WithUnsafe не включаем: сырой HTML и javascript-ссылки вырезаются рендером
		md = goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
		)
	})
	return md
}

// Render переводит markdown текста поста в HTML. При ошибке рендера возвращает пустую строку,
// клиент тогда показывает исходный текст.
func Render(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown().Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return buf.String()
}
