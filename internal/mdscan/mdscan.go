// Package mdscan extracts links, images, and fenced code blocks from
// markdown source using the goldmark AST. Callers treat it as opaque text
// processing: only link targets, alt-text presence, and fence contents are
// consumed.
package mdscan

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is a markdown hyperlink: display text and target.
type Link struct {
	Text string
	Href string
}

// Image is a markdown image reference: source and alt text.
type Image struct {
	Src string
	Alt string
}

var md = goldmark.New()

// parse builds the goldmark AST for a markdown block.
func parse(source []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(source))
}

// plainText collects the raw text content beneath a node.
func plainText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// Links returns every hyperlink in the markdown, including autolinks.
func Links(markdown string) []Link {
	source := []byte(markdown)
	var links []Link

	_ = ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			links = append(links, Link{
				Text: plainText(node, source),
				Href: string(node.Destination),
			})
		case *ast.AutoLink:
			url := string(node.URL(source))
			links = append(links, Link{Text: url, Href: url})
		}
		return ast.WalkContinue, nil
	})
	return links
}

// Images returns every image reference in the markdown.
func Images(markdown string) []Image {
	source := []byte(markdown)
	var images []Image

	_ = ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node, ok := n.(*ast.Image); ok {
			images = append(images, Image{
				Src: string(node.Destination),
				Alt: plainText(node, source),
			})
		}
		return ast.WalkContinue, nil
	})
	return images
}

// FencedCode returns the contents of each fenced code block, fences
// excluded.
func FencedCode(markdown string) []string {
	source := []byte(markdown)
	var blocks []string

	_ = ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node, ok := n.(*ast.FencedCodeBlock); ok {
			var sb strings.Builder
			for i := 0; i < node.Lines().Len(); i++ {
				segment := node.Lines().At(i)
				sb.Write(segment.Value(source))
			}
			blocks = append(blocks, sb.String())
		}
		return ast.WalkContinue, nil
	})
	return blocks
}
