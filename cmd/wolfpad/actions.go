package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wolfpad/wolfpad/pkg/actions"
	"github.com/wolfpad/wolfpad/pkg/domain"
)

var actionsCmd = &cobra.Command{
	Use:   "actions [action]",
	Short: "List the actions served by the gateway",
	Long:  `Lists every action with a short description. With an action name, prints its params schema.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			name := domain.ActionName(args[0])
			if !name.IsKnown() {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAction, args[0])
			}
			out, err := json.MarshalIndent(actions.ParamSchema(name), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range domain.ActionNames() {
			fmt.Fprintf(w, "%s\t%s\n", name, actions.Description(name))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
