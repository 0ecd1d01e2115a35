package gallery

import (
	"strconv"
	"strings"

	tl "github.com/JoelOtter/termloop"
)

// styleAttrs maps the SGR sequences of a grid cell style onto termloop
// colours and attributes. Only the eight basic colours, their bright
// variants, bold, underline and reverse are understood.
func styleAttrs(style string) (fg, bg tl.Attr) {
	for _, seq := range strings.Split(style, "\x1b[") {
		params, ok := strings.CutSuffix(seq, "m")
		if !ok {
			continue
		}
		if params == "" {
			fg, bg = tl.ColorDefault, tl.ColorDefault
			continue
		}
		for _, p := range strings.Split(params, ";") {
			n, err := strconv.Atoi(p)
			if err != nil {
				continue
			}
			switch {
			case n == 0:
				fg, bg = tl.ColorDefault, tl.ColorDefault
			case n == 1:
				fg |= tl.AttrBold
			case n == 4:
				fg |= tl.AttrUnderline
			case n == 7:
				fg |= tl.AttrReverse
			case n >= 30 && n <= 37:
				fg = fg&^0xff | colour(n-30)
			case n == 39:
				fg &^= 0xff
			case n >= 40 && n <= 47:
				bg = bg&^0xff | colour(n-40)
			case n == 49:
				bg &^= 0xff
			case n >= 90 && n <= 97:
				fg = fg&^0xff | colour(n-90) | tl.AttrBold
			}
		}
	}
	return fg, bg
}

// colour turns an ANSI colour index 0-7 into a termloop colour.
func colour(i int) tl.Attr {
	return tl.ColorBlack + tl.Attr(i)
}
