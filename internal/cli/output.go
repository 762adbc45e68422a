package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sphereoftech/internal/models"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/theme"
	"sphereoftech/pkg/utils"
)

// Output handles formatted output for the CLI.
type Output struct {
	writer       io.Writer
	jsonMode     bool
	colorEnabled bool
	theme        theme.Theme
	styles       theme.Styles
}

// NewOutput creates an Output for cmd using the app's theme. Color is only
// used on a terminal, never in JSON mode, and never when the config disables it.
func NewOutput(cmd *cobra.Command, app *App) *Output {
	jsonMode, _ := cmd.Flags().GetBool("json")
	t := theme.Light()
	colorEnabled := !jsonMode && isTerminal(cmd.OutOrStdout())
	if app != nil {
		t = app.Theme
		if app.Config != nil && !app.Config.UI.ColorEnabled {
			colorEnabled = false
		}
	}
	return &Output{
		writer:       cmd.OutOrStdout(),
		jsonMode:     jsonMode,
		colorEnabled: colorEnabled,
		theme:        t,
		styles:       theme.NewStyles(t),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsJSON returns true if JSON output mode is enabled.
func (o *Output) IsJSON() bool {
	return o.jsonMode
}

// ColorEnabled reports whether styled output is used.
func (o *Output) ColorEnabled() bool {
	return o.colorEnabled
}

// Writer returns the underlying writer.
func (o *Output) Writer() io.Writer {
	return o.writer
}

// JSON outputs data as JSON.
func (o *Output) JSON(data interface{}) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Printf prints a formatted message.
func (o *Output) Printf(format string, args ...interface{}) {
	fmt.Fprintf(o.writer, format, args...)
}

// Println prints a message with newline.
func (o *Output) Println(args ...interface{}) {
	fmt.Fprintln(o.writer, args...)
}

// Success prints a success message.
func (o *Output) Success(format string, args ...interface{}) {
	o.styled(o.styles.Success, format, args...)
}

// Error prints an error message.
func (o *Output) Error(format string, args ...interface{}) {
	o.styled(o.styles.Error, format, args...)
}

// Warning prints a warning message.
func (o *Output) Warning(format string, args ...interface{}) {
	o.styled(o.styles.Warning, format, args...)
}

// Info prints an info message.
func (o *Output) Info(format string, args ...interface{}) {
	o.styled(o.styles.Info, format, args...)
}

// Bold prints a bold message.
func (o *Output) Bold(format string, args ...interface{}) {
	o.styled(o.styles.Bold, format, args...)
}

// Dim prints a muted message.
func (o *Output) Dim(format string, args ...interface{}) {
	o.styled(o.styles.Muted, format, args...)
}

func (o *Output) styled(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(o.writer, o.Render(style, fmt.Sprintf(format, args...)))
}

// Render applies style to text when color is enabled.
func (o *Output) Render(style lipgloss.Style, text string) string {
	if !o.colorEnabled {
		return text
	}
	return style.Render(text)
}

// Colored renders text in the given color.
func (o *Output) Colored(c lipgloss.Color, text string) string {
	return o.Render(lipgloss.NewStyle().Foreground(c), text)
}

// BoldText returns bold text.
func (o *Output) BoldText(text string) string {
	return o.Render(o.styles.Bold, text)
}

// DimText returns muted text.
func (o *Output) DimText(text string) string {
	return o.Render(o.styles.Muted, text)
}

// Badge returns a bracketed label, filled with c when color is enabled.
func (o *Output) Badge(c lipgloss.Color, label string) string {
	if !o.colorEnabled {
		return "[" + label + "]"
	}
	return o.styles.BadgeStyle(c).Render(label)
}

// Rating returns the AI rating badge.
func (o *Output) Rating(r models.AIRating) string {
	return o.Badge(o.theme.RatingColor(r), r.Label())
}

// Sentiment returns the colored sentiment label.
func (o *Output) Sentiment(s models.Sentiment) string {
	return o.Colored(o.theme.SentimentColor(s), string(s))
}

// Level returns the colored High/Medium/Low badge.
func (o *Output) Level(l models.Level) string {
	return o.Badge(o.theme.LevelColor(l), string(l))
}

// Change formats a signed change colored by direction.
func (o *Output) Change(change, percent float64) string {
	text := fmt.Sprintf("%s (%s)", utils.FormatChange(change), utils.FormatPercent(percent))
	return o.Colored(o.theme.ChangeColor(change), text)
}

// Toast prints a toast the way the dashboard overlay shows it.
func (o *Output) Toast(t notify.Toast) {
	if o.jsonMode {
		return
	}
	fmt.Fprintln(o.writer, notify.FormatToast(t, o.colorEnabled))
}

// Bar returns a labelled progress bar.
func (o *Output) Bar(percent, width int) string {
	bar := utils.ProgressBar(percent, width)
	return fmt.Sprintf("%s %3d%%", o.Colored(o.theme.Primary, bar), percent)
}

// Table represents a simple table for output.
type Table struct {
	headers []string
	rows    [][]string
	output  *Output
}

// NewTable creates a new table.
func NewTable(output *Output, headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		output:  output,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render renders the table.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	t.printRow(t.headers, widths, true)
	t.printSeparator(widths)
	for _, row := range t.rows {
		t.printRow(row, widths, false)
	}
}

func (t *Table) printRow(cells []string, widths []int, isHeader bool) {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		padded := cell + strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0))
		if isHeader {
			padded = t.output.BoldText(padded)
		}
		parts = append(parts, padded)
	}
	t.output.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
}

func (t *Table) printSeparator(widths []int) {
	var parts []string
	for _, w := range widths {
		parts = append(parts, strings.Repeat("─", w))
	}
	t.output.Println(t.output.DimText(strings.Join(parts, "──")))
}

// Box draws a titled card around content.
func (o *Output) Box(title string, content []string) {
	body := strings.Join(content, "\n")
	if !o.colorEnabled {
		width := lipgloss.Width(title)
		for _, line := range content {
			width = max(width, lipgloss.Width(line))
		}
		border := "+" + strings.Repeat("-", width+2) + "+"
		o.Println(border)
		o.Printf("| %s |\n", utils.PadRight(title, width))
		o.Println(border)
		for _, line := range content {
			o.Printf("| %s%s |\n", line, strings.Repeat(" ", width-lipgloss.Width(line)))
		}
		o.Println(border)
		return
	}
	card := o.styles.Card.Render(o.styles.Title.Render(title) + "\n" + body)
	o.Println(card)
}

// Spinner animates while a simulated action is pending. Off a terminal it
// prints the message once.
type Spinner struct {
	frames  []string
	message string
	output  *Output

	once sync.Once
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSpinner creates a new spinner.
func NewSpinner(output *Output, message string) *Spinner {
	return &Spinner{
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		message: message,
		output:  output,
		done:    make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	if s.output.jsonMode {
		return
	}
	if !s.output.colorEnabled {
		s.output.Println(s.message)
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			s.output.Printf("\r%s %s", s.output.Colored(s.output.theme.Primary, s.frames[i%len(s.frames)]), s.message)
			select {
			case <-s.done:
				s.output.Printf("\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+2))
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
}
