// Package design models the read-only element tree of a UI design document
// and provides bounded traversal over it. The tree is supplied by the host
// per request; nothing in this package mutates it.
package design

import "strings"

// Kind identifies what sort of element a tree node is. Capability methods on
// Element are derived from the kind, so callers never probe for attribute
// presence dynamically.
type Kind string

const (
	KindText         Kind = "text"
	KindVector       Kind = "vector"
	KindBooleanOp    Kind = "boolean-op"
	KindStar         Kind = "star"
	KindLine         Kind = "line"
	KindEllipse      Kind = "ellipse"
	KindPolygon      Kind = "polygon"
	KindRect         Kind = "rect"
	KindFrame        Kind = "frame"
	KindGroup        Kind = "group"
	KindComponent    Kind = "component"
	KindComponentSet Kind = "component-set"
	KindInstance     Kind = "instance"
	KindSlice        Kind = "slice"
	KindUnknown      Kind = "unknown"
)

// ParseKind maps a raw kind string (case-insensitive, accepts Figma-style
// upper-case type names) to a Kind. Unrecognized values become KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return KindText
	case "vector":
		return KindVector
	case "boolean-op", "boolean_operation", "booleanoperation":
		return KindBooleanOp
	case "star":
		return KindStar
	case "line":
		return KindLine
	case "ellipse":
		return KindEllipse
	case "polygon", "regular_polygon":
		return KindPolygon
	case "rect", "rectangle":
		return KindRect
	case "frame":
		return KindFrame
	case "group":
		return KindGroup
	case "component":
		return KindComponent
	case "component-set", "component_set", "componentset":
		return KindComponentSet
	case "instance":
		return KindInstance
	case "slice":
		return KindSlice
	default:
		return KindUnknown
	}
}

// LayoutMode describes auto-layout flow on composite elements.
type LayoutMode string

const (
	LayoutNone       LayoutMode = "none"
	LayoutHorizontal LayoutMode = "horizontal"
	LayoutVertical   LayoutMode = "vertical"
)

// Color is an RGBA color with channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a fill or stroke applied to an element.
type Paint struct {
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Opacity float64 `json:"opacity"`
	Color   *Color  `json:"color,omitempty"`
}

// IsImage reports whether the paint fills with an image.
func (p Paint) IsImage() bool { return strings.EqualFold(p.Type, "image") }

// Effect is a visual effect (shadow, blur) applied to an element.
type Effect struct {
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Radius  float64 `json:"radius,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

// TypeStyle holds the text styling attributes of a text element.
type TypeStyle struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontWeight float64 `json:"fontWeight,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
}

// StyleRefs maps style-bearing attribute classes to the ids of named styles
// the element is bound to. Empty entries mean the attribute is unbound.
type StyleRefs struct {
	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`
	Text   string `json:"text,omitempty"`
	Effect string `json:"effect,omitempty"`
}

// Padding holds the four auto-layout padding values.
type Padding struct {
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
}

// Values returns the padding sides in a fixed order for deterministic
// extraction.
func (p Padding) Values() [4]float64 {
	return [4]float64{p.Left, p.Right, p.Top, p.Bottom}
}

// Element is one node in the design document tree. The host owns the tree;
// analysis holds only a transient read-only view of it.
type Element struct {
	ID      string  `json:"id"`
	Kind    Kind    `json:"kind"`
	Name    string  `json:"name"`
	Visible bool    `json:"visible"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`

	Fills        []Paint    `json:"fills,omitempty"`
	Strokes      []Paint    `json:"strokes,omitempty"`
	StrokeWeight float64    `json:"strokeWeight,omitempty"`
	CornerRadius float64    `json:"cornerRadius,omitempty"`
	Effects      []Effect   `json:"effects,omitempty"`
	Characters   string     `json:"characters,omitempty"`
	TextStyle    *TypeStyle `json:"textStyle,omitempty"`

	LayoutMode  LayoutMode `json:"layoutMode,omitempty"`
	Padding     Padding    `json:"padding,omitempty"`
	ItemSpacing float64    `json:"itemSpacing,omitempty"`

	Styles StyleRefs `json:"styles,omitempty"`
	// BoundVariables maps an attribute class (fill, stroke, cornerRadius,
	// strokeWeight, padding, itemSpacing) to a variable id.
	BoundVariables map[string]string `json:"boundVariables,omitempty"`

	Children []*Element `json:"children,omitempty"`
}

// HasFills reports whether this element kind legitimately carries fills.
func (e *Element) HasFills() bool {
	switch e.Kind {
	case KindGroup, KindSlice, KindComponentSet:
		return false
	default:
		return true
	}
}

// HasStrokes reports whether this element kind legitimately carries strokes.
func (e *Element) HasStrokes() bool { return e.HasFills() }

// HasChildren reports whether this element kind can own children.
func (e *Element) HasChildren() bool {
	switch e.Kind {
	case KindFrame, KindGroup, KindComponent, KindComponentSet, KindInstance, KindBooleanOp:
		return true
	default:
		return false
	}
}

// HasTextContent reports whether this element carries text characters.
func (e *Element) HasTextContent() bool { return e.Kind == KindText }

// IsVectorLike reports whether the element is a drawn shape rather than a
// container or text.
func (e *Element) IsVectorLike() bool {
	switch e.Kind {
	case KindVector, KindBooleanOp, KindStar, KindPolygon:
		return true
	default:
		return false
	}
}

// IsComposite reports whether the element is a container-style node.
func (e *Element) IsComposite() bool {
	switch e.Kind {
	case KindFrame, KindGroup, KindComponent, KindComponentSet, KindInstance:
		return true
	default:
		return false
	}
}

// HasAutoLayout reports whether the element flows children with auto-layout.
func (e *Element) HasAutoLayout() bool {
	return e.IsComposite() && (e.LayoutMode == LayoutHorizontal || e.LayoutMode == LayoutVertical)
}

// VisibleStroke reports whether the element has at least one visible stroke
// paint. A stroke-weight value without a visible stroke paints nothing.
func (e *Element) VisibleStroke() bool {
	if !e.HasStrokes() {
		return false
	}
	for _, s := range e.Strokes {
		if s.Visible {
			return true
		}
	}
	return false
}

// FirstVisibleFill returns the first visible solid fill, if any.
func (e *Element) FirstVisibleFill() (Paint, bool) {
	if !e.HasFills() {
		return Paint{}, false
	}
	for _, f := range e.Fills {
		if f.Visible && f.Color != nil {
			return f, true
		}
	}
	return Paint{}, false
}

// HasImageFill reports whether any visible fill is an image paint.
func (e *Element) HasImageFill() bool {
	if !e.HasFills() {
		return false
	}
	for _, f := range e.Fills {
		if f.Visible && f.IsImage() {
			return true
		}
	}
	return false
}
