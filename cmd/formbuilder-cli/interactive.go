package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const doneChoice = "done"

// runInteractive loops an add-field prompt until the user picks done or
// interrupts. An interrupt keeps whatever fields were added so far.
func runInteractive(session *builder.Session) error {
	if session.Document().Name == "" {
		name, err := askName()
		if err != nil {
			return translateInterrupt(err)
		}
		session.Rename(name)
	}

	for {
		choice, err := askFieldType()
		if err != nil {
			return translateInterrupt(err)
		}
		if choice == doneChoice {
			return nil
		}

		fieldType := model.FieldType(choice)
		field := session.Insert(fieldType)

		patch, err := askFieldPatch(fieldType)
		if err != nil {
			return translateInterrupt(err)
		}
		if err := session.Update(field.ID, patch); err != nil {
			return fmt.Errorf("apply field settings: %w", err)
		}
		fmt.Printf("Added %s field %q\n", fieldType, labelOf(session, field.ID))
	}
}

func askName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Form name:",
		Help:    "Used as the save key; whitespace collapses into hyphens.",
	}
	err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required))
	return name, err
}

func askFieldType() (string, error) {
	options := make([]string, 0, len(model.Types)+1)
	for _, t := range model.Types {
		options = append(options, string(t))
	}
	options = append(options, doneChoice)

	var choice string
	prompt := &survey.Select{
		Message:  "Add a field:",
		Options:  options,
		PageSize: len(options),
	}
	err := survey.AskOne(prompt, &choice)
	return choice, err
}

func askFieldPatch(fieldType model.FieldType) (model.FieldPatch, error) {
	patch := model.FieldPatch{}

	var label string
	labelPrompt := &survey.Input{
		Message: "Label:",
		Default: model.DefaultLabel(fieldType),
	}
	if err := survey.AskOne(labelPrompt, &label); err != nil {
		return patch, err
	}
	patch.Label = &label

	if model.PlaceholderEligible(fieldType) {
		var placeholder string
		prompt := &survey.Input{Message: "Placeholder (optional):"}
		if err := survey.AskOne(prompt, &placeholder); err != nil {
			return patch, err
		}
		if placeholder != "" {
			patch.Placeholder = &placeholder
		}
	}

	if fieldType != model.FieldTypeButton {
		var required bool
		prompt := &survey.Confirm{Message: "Required?", Default: false}
		if err := survey.AskOne(prompt, &required); err != nil {
			return patch, err
		}
		if required {
			patch.Validate = &model.ValidationPatch{Required: &required}
		}
	}

	return patch, nil
}

func labelOf(session *builder.Session, fieldID string) string {
	for _, field := range session.Document().Fields {
		if field.ID == fieldID {
			return field.Label
		}
	}
	return ""
}

func translateInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}
