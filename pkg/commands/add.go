package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/commands/options"
	"tableflip.dev/goals/pkg/goal"
	"tableflip.dev/goals/pkg/runner/add"
	"tableflip.dev/goals/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a goal, started today unless --on says otherwise.",
		Example: `
goals add quit sugar
goals add run every morning --on 2024-02-28
goals add read more --on yesterday
goals add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive && len(args) == 0 {
				return errors.New("a goal name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name := strings.Join(args, " ")
			if interactive {
				var err error
				if name, on.OnString, err = promptGoal(cmd, name, on.OnString); err != nil {
					return oo.HandleError(err)
				}
			}

			date, err := on.GetOn(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				Name:    name,
				Date:    date,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Prompt for the name and start date.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// promptGoal asks for a name and a start date, offering the given values as
// defaults.
func promptGoal(cmd *cobra.Command, name, date string) (string, string, error) {
	namePrompt := promptui.Prompt{
		Label:   "Goal",
		Default: name,
		Validate: func(input string) error {
			if goal.NormalizeName(input) == "" {
				return goal.ErrEmptyName
			}
			return nil
		},
		Stdin:  readCloser(cmd),
		Stdout: writeCloser(cmd),
	}
	name, err := namePrompt.Run()
	if err != nil {
		return "", "", err
	}

	if date == "" {
		date = "today"
	}
	datePrompt := promptui.Prompt{
		Label:   "Started (YYYY-MM-DD, DD-MM-YYYY, today, yesterday)",
		Default: date,
		Validate: func(input string) error {
			_, err := timeutil.ParseInputDate(input, time.Now())
			return err
		},
		Stdin:  readCloser(cmd),
		Stdout: writeCloser(cmd),
	}
	date, err = datePrompt.Run()
	if err != nil {
		return "", "", err
	}
	return name, date, nil
}
