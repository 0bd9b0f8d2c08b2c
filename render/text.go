package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether f is a terminal that should get colors.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WriteText prints the frame to w. Colors are applied per run of identical
// kinds when colored is set.
func WriteText(w io.Writer, f *Frame, color string, colored bool) error {
	if !colored {
		_, err := io.WriteString(w, strings.Join(f.Lines(), "\n")+"\n")
		return err
	}

	r := lipgloss.NewRenderer(w)
	var sb strings.Builder
	for _, row := range f.Kinds {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i] == row[start] {
				continue
			}
			run := strings.Repeat(string(row[start].Rune()), i-start)
			if row[start] == KindOpen {
				sb.WriteString(run)
			} else {
				sb.WriteString(textStyle(r, row[start], color).Render(run))
			}
			start = i
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Banner is printed before the first maze.
var Banner = []string{
	" █████╗       ███╗   ███╗ █████╗ ███████╗███████╗",
	"██╔══██╗      ████╗ ████║██╔══██╗╚══███╔╝██╔════╝",
	"███████║█████╗██╔████╔██║███████║  ███╔╝ █████╗  ",
	"██╔══██║╚════╝██║╚██╔╝██║██╔══██║ ███╔╝  ██╔══╝  ",
	"██║  ██║      ██║ ╚═╝ ██║██║  ██║███████╗███████╗",
	"╚═╝  ╚═╝      ╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝",
}

// WriteSummary prints a one line description of a generated maze.
func WriteSummary(w io.Writer, colored bool, format string, args ...any) error {
	line := fmt.Sprintf(format, args...)
	if colored {
		line = lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("241")).Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
