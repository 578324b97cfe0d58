package components

import "strings"

// Align controls horizontal placement of a box title.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// BorderStyle selects the box-drawing character set.
type BorderStyle int

const (
	// BorderNone renders content without a frame.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderRounded uses single lines with rounded corners.
	BorderRounded
	// BorderHeavy uses thick box-drawing characters.
	BorderHeavy
)

// borderChars holds the six characters a frame needs.
type borderChars struct {
	tl, tr, bl, br, h, v string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderHeavy:   {"┏", "┓", "┗", "┛", "━", "┃"},
}

// BoxStyle controls the appearance of a rendered box.
type BoxStyle struct {
	Border     BorderStyle
	Title      string
	TitleAlign Align
	FG         string // hex border color
	TitleFG    string // hex title color, defaults to FG
}

// RenderBox frames content in a bordered box of the given outer dimensions.
// Content lines are truncated or padded to the interior; missing lines are
// blank-filled. Returns "" when the box cannot fit its own borders.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if style.Border == BorderNone {
		return strings.Join(FitLines(strings.Split(content, "\n"), width, height), "\n")
	}
	if width < 2 || height < 2 {
		return ""
	}

	chars := borderSets[style.Border]
	paint := func(s string) string { return Colorize(s, style.FG) }

	interior := FitLines(strings.Split(content, "\n"), width-2, height-2)

	var b strings.Builder
	b.WriteString(paint(chars.tl))
	b.WriteString(renderTitleBar(style, chars.h, width-2))
	b.WriteString(paint(chars.tr))
	b.WriteByte('\n')

	for _, line := range interior {
		b.WriteString(paint(chars.v))
		b.WriteString(line)
		b.WriteString(paint(chars.v))
		b.WriteByte('\n')
	}

	b.WriteString(paint(chars.bl))
	b.WriteString(paint(strings.Repeat(chars.h, width-2)))
	b.WriteString(paint(chars.br))
	return b.String()
}

// renderTitleBar renders the top edge between the corners, embedding the
// title when one is set.
func renderTitleBar(style BoxStyle, h string, fill int) string {
	paint := func(s string) string { return Colorize(s, style.FG) }
	if style.Title == "" || fill <= 0 {
		return paint(strings.Repeat(h, fill))
	}

	// " Title " with at least one border char on each side.
	title := " " + style.Title + " "
	maxTitle := fill - 2
	if maxTitle < 1 {
		return paint(strings.Repeat(h, fill))
	}
	title = Truncate(title, maxTitle)
	titleW := VisibleLen(title)

	titleFG := style.TitleFG
	if titleFG == "" {
		titleFG = style.FG
	}

	var left, right int
	switch style.TitleAlign {
	case AlignCenter:
		left = (fill - titleW) / 2
		right = fill - titleW - left
	case AlignRight:
		left = fill - titleW - 1
		right = 1
	default:
		left = 1
		right = fill - titleW - 1
	}

	return paint(strings.Repeat(h, left)) + Colorize(Bold(title), titleFG) + paint(strings.Repeat(h, right))
}
