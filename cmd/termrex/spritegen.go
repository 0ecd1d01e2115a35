package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shvbsle/termrex/internal/sprite"
)

// NewSpritegenCommand builds the command that turns plain art into a Go
// asset declaration.
func NewSpritegenCommand() *cobra.Command {
	var style, name string
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "spritegen FILE",
		Short: "Compile plain art into a sprite asset",
		Long: "Compile plain text art into a sprite asset declaration. Spaces are\n" +
			"transparent, " + sprite.Filler + " is painted as a solid space. Use - to read stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out bytes.Buffer
			if err := spritegen(&out, cmd.InOrStdin(), args[0], name, style); err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(out.Bytes()); err != nil {
				return err
			}
			if toClipboard {
				if err := clipboard.WriteAll(out.String()); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				cmd.PrintErrln("copied to clipboard")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&style, "style", "", `SGR sequence to paint the art with, e.g. "\x1b[32m" or "1;33"`)
	flags.StringVar(&name, "name", "", "variable name (defaults to the file name)")
	flags.BoolVar(&toClipboard, "copy", false, "also copy the output to the clipboard")
	return cmd
}

func spritegen(w io.Writer, stdin io.Reader, path, name, style string) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	lines, err := sprite.ReadPlain(in)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s: no art", path)
	}

	if name == "" {
		name = identFromPath(path)
	}
	a := sprite.Compile(name, lines, normalizeStyle(style))
	if err := sprite.Validate(a); err != nil {
		return err
	}
	return sprite.WriteGo(w, a, name)
}

// normalizeStyle accepts a full SGR sequence, its escaped spelling or bare
// parameters such as "1;33".
func normalizeStyle(style string) string {
	style = strings.ReplaceAll(style, `\x1b`, "\x1b")
	style = strings.ReplaceAll(style, `\e`, "\x1b")
	if style == "" || strings.HasPrefix(style, "\x1b[") {
		return style
	}
	return "\x1b[" + strings.TrimSuffix(style, "m") + "m"
}

// identFromPath turns "art/big-cactus.txt" into "bigCactus".
func identFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	upper := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if b.Len() == 0 && unicode.IsDigit(r) {
				b.WriteString("sprite")
				upper = true
			}
			if upper {
				r = unicode.ToUpper(r)
			} else if b.Len() == 0 {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
			upper = false
		default:
			upper = b.Len() > 0
		}
	}
	if b.Len() == 0 {
		return "sprite"
	}
	return b.String()
}
