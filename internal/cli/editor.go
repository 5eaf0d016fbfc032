package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// editorComment prefixes instruction lines that are stripped after editing.
const editorComment = "#"

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file.
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or pass the tagline as an argument instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "deck-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// EditTagline lets the user change a single tagline in $EDITOR.
// Comment lines and surrounding blank lines are ignored; the first
// remaining line is the new tagline.
func EditTagline(current string) (string, error) {
	content := current + "\n" +
		editorComment + " Edit the tagline above. Lines starting with '#' are ignored.\n"
	edited, err := EditInEditor([]byte(content), ".txt")
	if err != nil {
		return "", err
	}
	lines := parseEditorLines(edited)
	if len(lines) == 0 {
		return "", fmt.Errorf("empty tagline, nothing changed")
	}
	return lines[0], nil
}

// EditTaglines opens an empty buffer in $EDITOR and returns one tagline per
// non-empty, non-comment line.
func EditTaglines() ([]string, error) {
	content := editorComment + " Enter one tagline per line. Lines starting with '#' are ignored.\n"
	edited, err := EditInEditor([]byte(content), ".txt")
	if err != nil {
		return nil, err
	}
	return parseEditorLines(edited), nil
}

func parseEditorLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, editorComment) || strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
func runEditor(editor, path string) error {
	// Split editor into command and args (e.g., "code --wait")
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
