package cli

import (
	"github.com/spf13/cobra"
)

var exophonesCmd = &cobra.Command{
	Use:   "exophones",
	Short: "Inspect the account's ExoPhone numbers",
}

var (
	exophonesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all ExoPhones",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetAllExophones(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	exophonesGetCmd = &cobra.Command{
		Use:   "get <exophone-sid>",
		Short: "Fetch a single ExoPhone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetExophoneDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	exophonesHeartbeatCmd = &cobra.Command{
		Use:   "heartbeat <exophone-sid>",
		Short: "Fetch an ExoPhone including connectivity information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetExophoneHeartbeat(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
)

func init() {
	exophonesCmd.AddCommand(exophonesListCmd)
	exophonesCmd.AddCommand(exophonesGetCmd)
	exophonesCmd.AddCommand(exophonesHeartbeatCmd)
}
