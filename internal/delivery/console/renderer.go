package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Renderer ekranga chiqarish porti. Session rang yoki terminal
// imkoniyatlari haqida hech narsa bilmaydi.
type Renderer interface {
	Clear()
	Banner(text string)
	Header(text string)
	Prompt(text string)
	Line(text string)
	Success(text string)
	Error(text string)
	Highlight(text string)
}

var (
	yellow  = lipgloss.Color("#f1fa8c")
	green   = lipgloss.Color("#50fa7b")
	red     = lipgloss.Color("#ff5555")
	magenta = lipgloss.Color("#ff79c6")
)

const clearScreen = "\033[H\033[2J"

type textRenderer struct {
	w        io.Writer
	terminal bool
	styled   bool

	bannerStyle    lipgloss.Style
	headerStyle    lipgloss.Style
	successStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	highlightStyle lipgloss.Style
}

// NewStyledRenderer lipgloss ranglari bilan renderer. Rang profili w ga qarab
// aniqlanadi, terminal bo'lmasa escape kodlar chiqmaydi.
func NewStyledRenderer(w io.Writer) Renderer {
	r := lipgloss.NewRenderer(w)
	return &textRenderer{
		w:              w,
		terminal:       isTerminal(w),
		styled:         true,
		bannerStyle:    r.NewStyle().Foreground(yellow),
		headerStyle:    r.NewStyle().Foreground(yellow).Bold(true),
		successStyle:   r.NewStyle().Foreground(green),
		errorStyle:     r.NewStyle().Foreground(red),
		highlightStyle: r.NewStyle().Foreground(magenta),
	}
}

// NewPlainRenderer oddiy matn, rang va ekran tozalashsiz
func NewPlainRenderer(w io.Writer) Renderer {
	return &textRenderer{w: w}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *textRenderer) Clear() {
	if r.styled && r.terminal {
		fmt.Fprint(r.w, clearScreen)
	}
}

func (r *textRenderer) Banner(text string) { r.println(r.bannerStyle, text) }
func (r *textRenderer) Header(text string) { r.println(r.headerStyle, text) }
func (r *textRenderer) Success(text string) { r.println(r.successStyle, text) }
func (r *textRenderer) Error(text string) { r.println(r.errorStyle, text) }
func (r *textRenderer) Highlight(text string) { r.println(r.highlightStyle, text) }

func (r *textRenderer) Line(text string) {
	fmt.Fprintln(r.w, text)
}

func (r *textRenderer) Prompt(text string) {
	fmt.Fprint(r.w, text)
}

func (r *textRenderer) println(style lipgloss.Style, text string) {
	if r.styled && text != "" {
		text = style.Render(text)
	}
	fmt.Fprintln(r.w, text)
}
