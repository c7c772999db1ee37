package notifier

import "strings"

// markdownV2Reserved are the characters Telegram's MarkdownV2 parse mode
// requires escaping with a backslash.
const markdownV2Reserved = "\\_*[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 escapes every reserved MarkdownV2 character in text.
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownV2Reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
