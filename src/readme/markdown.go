package readme

// H1 returns a level-1 markdown heading.
func H1(text string) string {
	return "# " + text
}

// H2 returns a level-2 markdown heading.
func H2(text string) string {
	return "## " + text
}

// FencedCodeBlock wraps code in a backtick fence tagged with lang.
func FencedCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + code + "\n```"
}

// FencedShell wraps code in an sh fence.
func FencedShell(code string) string {
	return FencedCodeBlock("sh", code)
}

// FencedJavaScript wraps code in a js fence.
func FencedJavaScript(code string) string {
	return FencedCodeBlock("js", code)
}

// FencedRust wraps code in an rs fence.
func FencedRust(code string) string {
	return FencedCodeBlock("rs", code)
}
