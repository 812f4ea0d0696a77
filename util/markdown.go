package util

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"gitlab.com/golang-commonmark/markdown"
)

var markdownParser = markdown.New(markdown.HTML(true), markdown.Typographer(false), markdown.MaxNesting(10))

// Markdown renders CommonMark to HTML. Leading tabs are removed from each line first,
// so content can be indented like the surrounding Go code.
func Markdown(input io.Reader) string {

	var unindented = &bytes.Buffer{}

	lineScanner := bufio.NewScanner(input)
	for lineScanner.Scan() {
		unindented.WriteString(strings.TrimLeft(lineScanner.Text(), "\t"))
		unindented.WriteString("\n")
	}

	return markdownParser.RenderToString(unindented.Bytes())
}

// MarkdownString calls Markdown on a string.
func MarkdownString(s string) string {
	return Markdown(strings.NewReader(s))
}
