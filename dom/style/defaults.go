package style

import (
	"golang.org/x/net/html"
)

// nonInherited holds user-agent defaults for properties which do not
// inherit from a parent node.
var nonInherited = map[string]string{
	"position":         "static",
	"opacity":          "1",
	"background-color": "transparent",
	"float":            "none",
	"z-index":          "auto",
}

// inherited holds user-agent defaults at the document root for properties
// which inherit.
var inherited = map[string]string{
	"visibility":     "visible",
	"pointer-events": "auto",
	"direction":      "ltr",
	"white-space":    "normal",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	if p, ok := inherited[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "template", "meta", "title", "link":
		return "none"
	case "html", "aside", "body", "div", "figure", "figcaption", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "p", "section", "ul", "nav", "header", "footer":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "i", "b", "em", "span", "strong", "label", "a", "small", "code":
		return "inline"
	case "input", "button", "img", "svg", "select", "canvas":
		return "inline-block"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}
