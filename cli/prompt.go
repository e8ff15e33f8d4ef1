package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var ErrNotAnInteger = errors.New("invalid integer")

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptInt asks for an integer, re-prompting until the input parses and
// passes check. A nil check accepts every integer.
func PromptInt(label string, check func(int) error) (int, error) {
	validate := intValidator(check)

	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parseInt(txt)
}

func parseInt(s string) (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, s)
	}

	return val, nil
}

func intValidator(check func(int) error) promptui.ValidateFunc {
	return func(s string) error {
		val, err := parseInt(s)
		if err != nil {
			return err
		}

		if check != nil {
			return check(val)
		}

		return nil
	}
}
