package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/goals/pkg/app"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func readCloser(cmd *cobra.Command) io.ReadCloser {
	return io.NopCloser(cmd.InOrStdin())
}

func writeCloser(cmd *cobra.Command) io.WriteCloser {
	return nopWriteCloser{cmd.OutOrStdout()}
}

// confirmDelete asks before a goal is deleted. Answering no, or pressing
// enter, keeps the goal.
func confirmDelete(cmd *cobra.Command) func(app.Row) (bool, error) {
	return func(row app.Row) (bool, error) {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete %q", row.Name),
			IsConfirm: true,
			Stdin:     readCloser(cmd),
			Stdout:    writeCloser(cmd),
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}
