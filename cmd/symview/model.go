package main

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symlog"
)

const maxLogLines = 6

// logMsg carries one entry read from the document engine's log
// publisher into the bubbletea event loop.
type logMsg string

// model is the bubbletea model driving symview's tree browser.
type model struct {
	root       *node
	sourcePath string
	imports    []string
	sub        *symlog.Subscription
	logLines   []string
	cursor     int
	scroll     int
	width      int
	height     int
}

func newModel(result sym.Result, sourcePath string, sub *symlog.Subscription) *model {
	return &model{
		root:       buildTree(sourcePath, result.Value),
		sourcePath: sourcePath,
		imports:    result.Imports,
		sub:        sub,
		width:      80,
		height:     24,
	}
}

// Init starts the log-entry listener alongside bubbletea's own event
// loop; waitForLog re-arms itself each time a message is delivered.
func (m *model) Init() tea.Cmd {
	return waitForLog(m.sub)
}

func waitForLog(sub *symlog.Subscription) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-sub.C()
		if !ok {
			return nil
		}

		return logMsg(entry)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case logMsg:
		m.logLines = append(m.logLines, string(msg))
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}

		return m, waitForLog(m.sub)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	rows := flatten(m.root, 0, nil)

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.sub.Close()

		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case "enter", " ", "space", "right", "l":
		if m.cursor < len(rows) {
			n := rows[m.cursor].n
			if n.isContainer() {
				n.expanded = true
			}
		}

	case "left", "h":
		if m.cursor < len(rows) {
			n := rows[m.cursor].n
			if n.isContainer() && n.expanded {
				n.expanded = false
			}
		}
	}

	return m, nil
}

func (m *model) View() string {
	rows := flatten(m.root, 0, nil)

	var b strings.Builder

	header := "symview — " + m.sourcePath
	if len(m.imports) > 0 {
		header += " (" + strings.Join(m.imports, ", ") + " not resolved)"
	}

	b.WriteString(styleHeader.Render(header))
	b.WriteString("\n\n")

	visibleHeight := m.treeHeight()

	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}

	if m.cursor >= m.scroll+visibleHeight {
		m.scroll = m.cursor - visibleHeight + 1
	}

	end := m.scroll + visibleHeight
	if end > len(rows) {
		end = len(rows)
	}

	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i == m.cursor))
		b.WriteString("\n")
	}

	if len(m.logLines) > 0 {
		b.WriteString(styleLogPane.Width(m.width).Render(strings.Join(m.logLines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(styleFooter.Render("↑/↓ move · enter/space expand · left collapse · q quit"))

	return b.String()
}

func (m *model) treeHeight() int {
	reserved := 4 + len(m.logLines)
	if len(m.logLines) > 0 {
		reserved++
	}

	h := m.height - reserved
	if h < 1 {
		h = 1
	}

	return h
}

func (m *model) renderRow(row visibleRow, selected bool) string {
	indent := strings.Repeat("  ", row.depth)

	marker := " "
	if row.n.isContainer() {
		if row.n.expanded {
			marker = "-"
		} else {
			marker = "+"
		}
	}

	label := styleLabel.Render(row.n.label)

	var preview string
	if row.n.isContainer() {
		preview = styleContainer.Render(scalarPreview(row.n.value))
	} else {
		preview = styleScalar.Render(scalarPreview(row.n.value))
	}

	line := indent + marker + " " + label + " " + preview

	if selected {
		return styleSelected.Render(line)
	}

	return line
}
