// Package prompt provides the interactive dotted-path input used by
// `pipeconf get --interactive`.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// Prompter wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a liner-based prompter with Ctrl+C abort.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// PathInput prompts for a dotted setting path, completing over the
// registry's known paths on Tab.
func PathInput(promptText string, paths []string) (string, error) {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var matches []string
		for _, path := range paths {
			if strings.HasPrefix(path, prefix) {
				matches = append(matches, path)
			}
		}
		return matches
	})

	result, err := line.Prompt(color.CyanString(promptText + " "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errors.New("cancelled by user")
		}
		return "", fmt.Errorf("path input failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// PathInputWithPrompter is PathInput with an injected prompter; the
// completer is wired only when the prompter is liner-backed.
func PathInputWithPrompter(prompter Prompter, promptText string, paths []string) (string, error) {
	if linerPrompter, ok := prompter.(*LinerPrompter); ok {
		linerPrompter.SetCompleter(func(prefix string) []string {
			var matches []string
			for _, path := range paths {
				if strings.HasPrefix(path, prefix) {
					matches = append(matches, path)
				}
			}
			return matches
		})
	}

	result, err := prompter.Prompt(color.CyanString(promptText + " "))
	if err != nil {
		return "", fmt.Errorf("path input failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}
