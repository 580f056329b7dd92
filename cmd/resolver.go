package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// promptResolver answers the adjust run's questions with interactive
// prompts.
type promptResolver struct{}

func (promptResolver) ConfirmAdjustment(date string, missing float64) (bool, error) {
	ok := true
	err := runField(huh.NewConfirm().
		Title(fmt.Sprintf("You're missing %.2f hour(s) on %s, continue with adjustments?", missing, date)).
		Value(&ok))
	return ok, err
}

func (promptResolver) ChooseProject(codes []string) (string, error) {
	var code string
	err := runField(huh.NewSelect[string]().
		Title("Select the Harvest project associated with the missing time").
		Options(huh.NewOptions(codes...)...).
		Value(&code))
	return code, err
}

func (promptResolver) ChooseTask(names []string) (string, error) {
	var name string
	err := runField(huh.NewSelect[string]().
		Title("Select the Harvest project task").
		Options(huh.NewOptions(names...)...).
		Value(&name))
	return name, err
}

func (promptResolver) ConfirmSticky() (bool, error) {
	ok := true
	err := runField(huh.NewConfirm().
		Title("Use this project/task for any remaining days?").
		Value(&ok))
	return ok, err
}

func runField(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).Run()
}
