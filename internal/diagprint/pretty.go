package diagprint

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"

	"c3c/internal/diag"
	"c3c/internal/source"
)

const tabWidth = 8

// Pretty writes bag's diagnostics (assumed already sorted via bag.Sort())
// to w: one "path:line:col: SEVERITY CODE: message" header per diagnostic,
// followed by a gutter-numbered source preview with a caret/tilde
// underline under the primary span, and optionally its notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context, err := safecast.Conv[uint32](opts.Context)
	if err != nil || context == 0 {
		context = 1
	}

	formatPath := func(f *source.File) string {
		switch opts.PathMode {
		case PathModeAbsolute:
			return f.FormatPath("absolute", "")
		case PathModeRelative:
			return f.FormatPath("relative", fs.BaseDir())
		case PathModeBasename:
			return f.FormatPath("basename", "")
		default:
			return f.FormatPath("auto", fs.BaseDir())
		}
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		printOne(w, d, fs, opts, context, formatPath, severityColor(d.Severity, errorColor, warningColor, infoColor), pathColor, codeColor, lineNumColor, underlineColor, infoColor)
	}
}

func severityColor(sev diag.Severity, errC, warnC, infoC *color.Color) *color.Color {
	switch sev {
	case diag.SevError:
		return errC
	case diag.SevWarning:
		return warnC
	default:
		return infoC
	}
}

func printOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts Options, context uint32, formatPath func(*source.File) string, sevColor, pathColor, codeColor, lineNumColor, underlineColor, noteColor *color.Color) {
	start, end := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)
	displayPath := formatPath(f)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		pathColor.Sprint(displayPath), start.Line, start.Col,
		sevColor.Sprint(d.Severity.String()), codeColor.Sprint(d.Code.ID()), normalizeMessage(d.Message))

	totalLines, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		totalLines = 0
	}
	totalLines++
	if len(f.LineIdx) == 0 && len(f.Content) > 0 {
		totalLines = 1
	}

	startLine := uint32(1)
	if start.Line > context {
		startLine = start.Line - context
	}
	endLine := min(start.Line+context, totalLines)

	if startLine > 1 {
		fmt.Fprintln(w, "...")
	}

	lineNumWidth := max(len(fmt.Sprintf("%d", endLine)), 3)
	for lineNum := startLine; lineNum <= endLine; lineNum++ {
		lineText := f.GetLine(lineNum)
		gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(fmt.Sprintf("%*d", lineNumWidth, lineNum)))
		gutterLen := lineNumWidth + 3

		io.WriteString(w, gutter)
		io.WriteString(w, lineText)
		io.WriteString(w, "\n")

		if lineNum == start.Line {
			endCol := end.Col
			if end.Line > start.Line {
				lineLen, convErr := safecast.Conv[uint32](len(lineText))
				if convErr == nil {
					endCol = lineLen + 1
				}
			}
			visualStart := visualWidthUpTo(lineText, start.Col, tabWidth)
			visualEnd := visualWidthUpTo(lineText, endCol, tabWidth)

			var underline strings.Builder
			for range gutterLen {
				underline.WriteByte(' ')
			}
			for range visualStart {
				underline.WriteByte(' ')
			}
			spanLen := visualEnd - visualStart
			if spanLen <= 0 {
				underline.WriteByte('^')
			} else {
				for i := 0; i < spanLen; i++ {
					if i == spanLen-1 {
						underline.WriteByte('^')
					} else {
						underline.WriteByte('~')
					}
				}
			}
			fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
		}
	}

	if endLine < totalLines {
		fmt.Fprintln(w, "...")
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				noteColor.Sprint("note"), pathColor.Sprint(formatPath(nf)), noteStart.Line, noteStart.Col, normalizeMessage(note.Msg))
		}
	}
}

// normalizeMessage folds fullwidth/halfwidth rune variants in diagnostic
// text to their canonical form, so a message that echoes a source
// identifier (which may contain fullwidth punctuation copy-pasted from
// elsewhere) renders with a predictable, narrow width in the terminal
// rather than whatever form the original source happened to use.
func normalizeMessage(s string) string {
	return width.Fold.String(s)
}

// visualWidthUpTo returns the on-screen column width of s up to (but not
// including) the 1-based byte column byteCol, expanding tabs to tabWidth
// and widening East Asian runes via go-runewidth.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}
