package wizard

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

func flagLabel(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

func promptFlagBool(f *pflag.Flag) (string, error) {
	validInput := "true/false"
	if def, err := parseBool(f.DefValue); err == nil {
		if def {
			validInput = "[true]/false"
		} else {
			validInput = "true/[false]"
		}
	}

	prompt := promptui.Prompt{
		Label: fmt.Sprintf("%s %s", flagLabel(f), validInput),
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			_, err := parseBool(input)
			return err
		},
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if result == "" {
		result = f.DefValue
	}
	v, _ := parseBool(result)
	return fmt.Sprintf("--%s=%t", f.Name, v), nil
}

func promptFlagString(f *pflag.Flag) (string, error) {
	prompt := promptui.Prompt{
		Label:   flagLabel(f),
		Default: f.DefValue,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("--%s=%s", f.Name, result), nil
}

// parseBool is strconv.ParseBool plus yes/no spellings.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
