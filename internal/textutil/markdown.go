package textutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// MarkdownToText renders markdown as plain text: only literal text is kept,
// block boundaries become spaces and whitespace is collapsed.
func MarkdownToText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse([]byte(input))

	var buf bytes.Buffer
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.Code, blackfriday.CodeBlock:
			if entering {
				buf.Write(node.Literal)
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			buf.WriteByte(' ')
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
			if !entering {
				buf.WriteByte(' ')
			}
		case blackfriday.HTMLBlock, blackfriday.HTMLSpan:
			return blackfriday.SkipChildren
		}
		return blackfriday.GoToNext
	})

	plainText := RemoveLinks(buf.String())
	return strings.Join(strings.Fields(plainText), " ")
}
