package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ywarnier/oss-contrib/internal/tui/styles"
)

// ChoiceList lets the user pick one label from a list. The submitted
// value is the index of the chosen label.
type ChoiceList struct {
	choices     []string
	selected    int
	def         int
	height      int
	scrollStart int
}

// NewChoiceList creates a ChoiceList with the cursor on def, or on the
// first entry when def is not listed.
func NewChoiceList(choices []string, def string) *ChoiceList {
	l := &ChoiceList{
		choices: choices,
		def:     -1,
		height:  10,
	}
	for i, c := range choices {
		if c == def {
			l.selected = i
			l.def = i
			break
		}
	}
	return l
}

// SetHeight sets the number of visible rows.
func (l *ChoiceList) SetHeight(height int) {
	l.height = height
	l.ensureVisible()
}

// Selected returns the index under the cursor.
func (l *ChoiceList) Selected() int {
	return l.selected
}

// MoveUp moves the cursor up.
func (l *ChoiceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (l *ChoiceList) MoveDown() {
	if l.selected < len(l.choices)-1 {
		l.selected++
		l.ensureVisible()
	}
}

// visibleRows is the number of choices shown at once.
func (l *ChoiceList) visibleRows() int {
	if l.height < 1 {
		return 5
	}
	return l.height
}

func (l *ChoiceList) ensureVisible() {
	rows := l.visibleRows()
	if l.selected < l.scrollStart {
		l.scrollStart = l.selected
	} else if l.selected >= l.scrollStart+rows {
		l.scrollStart = l.selected - rows + 1
	}
}

// Update handles key presses. Digits jump to the matching index.
func (l *ChoiceList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		l.MoveUp()
	case "down", "j":
		l.MoveDown()
	case "enter":
		if len(l.choices) == 0 {
			return nil
		}
		return submit(strconv.Itoa(l.selected))
	case "ctrl+c", "esc", "q":
		return cancel
	default:
		if i, err := strconv.Atoi(key.String()); err == nil && i >= 0 && i < len(l.choices) {
			l.selected = i
			l.ensureVisible()
		}
	}
	return nil
}

// View renders the list.
func (l *ChoiceList) View() string {
	var b strings.Builder

	if len(l.choices) == 0 {
		b.WriteString(styles.MutedTextStyle.Italic(true).Render("  No choices available"))
		b.WriteString("\n")
		return b.String()
	}

	end := l.scrollStart + l.visibleRows()
	if end > len(l.choices) {
		end = len(l.choices)
	}

	if l.scrollStart > 0 {
		b.WriteString(styles.MutedTextStyle.Render("  ↑ more above"))
		b.WriteString("\n")
	}
	for i := l.scrollStart; i < end; i++ {
		b.WriteString(l.renderChoice(i))
		b.WriteString("\n")
	}
	if end < len(l.choices) {
		b.WriteString(styles.MutedTextStyle.Render("  ↓ more below"))
		b.WriteString("\n")
	}

	b.WriteString(NewShortcutBar(ChoiceListShortcuts...).View())

	return b.String()
}

func (l *ChoiceList) renderChoice(i int) string {
	indicator := "  "
	label := l.choices[i]
	if i == l.selected {
		indicator = styles.SelectedStyle.Render("▶ ")
		label = styles.SelectedStyle.Render(label)
	}

	suffix := ""
	if i == l.def {
		suffix = styles.DefaultStyle.Render(" (default)")
	}

	return indicator + styles.IndexStyle.Render(fmt.Sprintf("[%d]", i)) + " " + label + suffix
}
