package cli

import (
	"github.com/spf13/cobra"

	"github.com/acme/exotel-go/exotel"
)

var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Send and inspect SMS",
}

var (
	smsFrom string
	smsTo   []string
	smsBody string

	smsSendCmd = &cobra.Command{
		Use:   "send",
		Short: "Send a static SMS to one or more numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SendBulkSMS(cmd.Context(), exotel.SendBulkSMSParams{
				From: smsFrom,
				To:   smsTo,
				Body: smsBody,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	smsGetCmd = &cobra.Command{
		Use:   "get <sms-sid>",
		Short: "Fetch a sent SMS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetSMSDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
)

func init() {
	smsSendCmd.Flags().StringVar(&smsFrom, "from", "", "sender ExoPhone")
	smsSendCmd.Flags().StringSliceVar(&smsTo, "to", nil, "E.164 recipient numbers")
	smsSendCmd.Flags().StringVar(&smsBody, "body", "", "message body")
	_ = smsSendCmd.MarkFlagRequired("from")
	_ = smsSendCmd.MarkFlagRequired("to")
	_ = smsSendCmd.MarkFlagRequired("body")

	smsCmd.AddCommand(smsSendCmd)
	smsCmd.AddCommand(smsGetCmd)
}
