package termview

import (
	"github.com/CipherCosmos/chatfmt/internal/markup"
	"github.com/gdamore/tcell/v2"
)

// colorTheme defines the viewer colors.
type colorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FooterFg    tcell.Color
	InlineFg    tcell.Color
	BulletFg    tcell.Color
	LabelFg     tcell.Color
	CodeBlockBg tcell.Color
	CodeBlockFg tcell.Color
	CommentFg   tcell.Color
	StringFg    tcell.Color
	KeywordFg   tcell.Color
	NumberFg    tcell.Color
}

func defaultTheme() colorTheme {
	return colorTheme{
		HeaderBg:    tcell.Color33,
		HeaderFg:    tcell.ColorWhite,
		FooterFg:    tcell.ColorLightSlateGray,
		InlineFg:    tcell.Color44,  // brighter cyan for inline code
		BulletFg:    tcell.Color33,
		LabelFg:     tcell.ColorLightSlateGray,
		CodeBlockBg: tcell.Color234, // darker grey background for fenced code
		CodeBlockFg: tcell.Color252, // light grey text for fenced code
		CommentFg:   tcell.Color245,
		StringFg:    tcell.Color107,
		KeywordFg:   tcell.Color33,
		NumberFg:    tcell.Color173,
	}
}

func (t colorTheme) headerStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.HeaderBg).Foreground(t.HeaderFg).Bold(true)
}

func (t colorTheme) footerStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.FooterFg)
}

// styleFor maps a markup style to a terminal style. Token styles keep the
// code block background so a code region reads as one block.
func (t colorTheme) styleFor(kind markup.StyleKind) tcell.Style {
	base := tcell.StyleDefault
	switch kind {
	case markup.StyleEmphasis:
		return base.Italic(true)
	case markup.StyleStrong:
		return base.Bold(true)
	case markup.StyleInlineCode:
		return base.Foreground(t.InlineFg)
	case markup.StyleBullet:
		return base.Foreground(t.BulletFg).Bold(true)
	case markup.StyleCodeBlock:
		return base.Foreground(t.CodeBlockFg).Background(t.CodeBlockBg)
	case markup.StyleCodeLabel:
		return base.Foreground(t.LabelFg).Italic(true)
	case markup.StyleComment:
		return base.Foreground(t.CommentFg).Background(t.CodeBlockBg).Italic(true)
	case markup.StyleString:
		return base.Foreground(t.StringFg).Background(t.CodeBlockBg)
	case markup.StyleKeyword:
		return base.Foreground(t.KeywordFg).Background(t.CodeBlockBg).Bold(true)
	case markup.StyleNumber:
		return base.Foreground(t.NumberFg).Background(t.CodeBlockBg)
	default:
		return base
	}
}
