package cli

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// Select asks the user to pick one of choices and returns the picked value.
// Typing filters the list to choices starting with the input, ignoring case.
func Select(label string, choices []string) (string, error) {
	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Searcher: prefixSearcher(choices),
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

func prefixSearcher(choices []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" || index < 0 || index >= len(choices) {
			return false
		}

		return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
	}
}
