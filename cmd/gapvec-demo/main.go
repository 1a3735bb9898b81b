package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapvec/editor"
)

const scratchText = "Scratch buffer.\n\nType to edit. Arrows move, Ctrl+S saves, Ctrl+Q quits.\nPass a file path argument to edit a file instead."

type model struct {
	editor editor.Model
	path   string
	status string
}

func newModel(path, text string) model {
	cfg := editor.Config{
		Text:         text,
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
	}
	return model{
		editor: editor.New(cfg),
		path:   path,
		status: statusHint(path),
	}
}

func statusHint(path string) string {
	if path == "" {
		return "[scratch] ctrl+s save, ctrl+q quit"
	}
	return fmt.Sprintf("%s | ctrl+s save, ctrl+q quit", path)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.status = m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) save() string {
	if m.path == "" {
		return "no file to save; pass a path argument"
	}
	text := m.editor.Buffer().Text()
	if err := os.WriteFile(m.path, []byte(text), 0o644); err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	return fmt.Sprintf("saved %s (%d bytes)", m.path, len(text))
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.status
}

func main() {
	path := ""
	text := scratchText
	if len(os.Args) > 1 {
		path = os.Args[1]
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case errors.Is(err, os.ErrNotExist):
			text = ""
		default:
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
	}

	p := tea.NewProgram(newModel(path, text), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
