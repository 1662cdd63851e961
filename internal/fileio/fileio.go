package fileio

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
}

// SaveCmd writes the given lines to a text file named after the exporting
// page, e.g. "events-20250301T060000Z.txt" in the working directory.
func SaveCmd(name string, content []string) tea.Cmd {
	return func() tea.Msg {
		fullPath, err := save(name, content)
		if err != nil {
			return SaveCompleteMsg{ErrMessage: err.Error()}
		}
		return SaveCompleteMsg{
			FullPath:       fullPath,
			SuccessMessage: fmt.Sprintf("Saved to %s", fullPath),
		}
	}
}

func save(name string, lines []string) (string, error) {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	if name == "" {
		name = stamp
	} else {
		name = fmt.Sprintf("%s-%s", name, stamp)
	}
	name = expandHome(name)

	dir := filepath.Dir(name)
	base := filepath.Base(name)
	if filepath.Ext(base) == "" {
		base += ".txt"
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(absDir, base)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return "", err
	}
	return fullPath, nil
}

func expandHome(name string) string {
	if !strings.HasPrefix(name, "~") {
		return name
	}
	currUser, err := user.Current()
	if err != nil {
		return name
	}
	return filepath.Join(currUser.HomeDir, strings.TrimPrefix(name, "~"))
}
