// Package uitest provides helpers to inspect rendered markup in tests.
package uitest

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

type Matcher func(n *html.Node) bool

func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return doc, nil
}

func ParseString(markup string) (*html.Node, error) {
	return Parse(strings.NewReader(markup))
}

// FindAll returns the element nodes below root matching every matcher, in
// document order.
func FindAll(root *html.Node, matchers ...Matcher) []*html.Node {
	found := make([]*html.Node, 0)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && matchAll(n, matchers) {
			found = append(found, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return found
}

func Find(root *html.Node, matchers ...Matcher) *html.Node {
	found := FindAll(root, matchers...)
	if len(found) == 0 {
		return nil
	}

	return found[0]
}

func matchAll(n *html.Node, matchers []Matcher) bool {
	for _, m := range matchers {
		if !m(n) {
			return false
		}
	}

	return true
}

func Tag(name string) Matcher {
	return func(n *html.Node) bool {
		return n.Data == name
	}
}

func HasAttr(name string) Matcher {
	return func(n *html.Node) bool {
		_, exists := Attr(n, name)
		return exists
	}
}

func AttrEquals(name string, value string) Matcher {
	return func(n *html.Node) bool {
		v, exists := Attr(n, name)
		return exists && v == value
	}
}

func AttrIn(name string, values ...string) Matcher {
	return func(n *html.Node) bool {
		v, exists := Attr(n, name)
		if !exists {
			return false
		}

		for _, candidate := range values {
			if v == candidate {
				return true
			}
		}

		return false
	}
}

func TextEquals(text string) Matcher {
	return func(n *html.Node) bool {
		return Text(n) == text
	}
}

func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

// Text returns the whitespace normalized text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}
