package cli

import (
	"github.com/spf13/cobra"

	"github.com/acme/exotel-go/exotel"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Manage voice campaigns",
}

var (
	campaignCallerID  string
	campaignAppID     string
	campaignName      string
	campaignListName  string
	campaignNumbers   []string
	campaignCallbacks string

	campaignsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a voice campaign backed by an implicitly created contact list",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := exotel.CreateCampaignParams{
				CallerID:           campaignCallerID,
				AppID:              campaignAppID,
				Name:               campaignName,
				CallStatusCallback: campaignCallbacks,
			}

			resp, err := newClient().CreateCampaignWithList(
				cmd.Context(), campaignNumbers, defaultedListName(campaignListName), params)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	campaignsGetCmd = &cobra.Command{
		Use:   "get <campaign-id>",
		Short: "Fetch a single campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetCampaignDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	campaignsDeleteCmd = &cobra.Command{
		Use:   "delete <campaign-id>",
		Short: "Delete a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().DeleteCampaign(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	campaignFilter exotel.CampaignFilter

	campaignsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetBulkCampaignDetails(cmd.Context(), campaignFilter)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	callDetailsFilter exotel.CallDetailsFilter

	campaignsCallDetailsCmd = &cobra.Command{
		Use:   "call-details <campaign-id>",
		Short: "Fetch the call outcomes of a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetCampaignCallDetails(cmd.Context(), args[0], callDetailsFilter)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
)

func init() {
	campaignsCreateCmd.Flags().StringVar(&campaignCallerID, "caller-id", "", "ExoPhone placing the calls")
	campaignsCreateCmd.Flags().StringVar(&campaignAppID, "app-id", "", "flow identifier")
	campaignsCreateCmd.Flags().StringVar(&campaignName, "name", "", "campaign name")
	campaignsCreateCmd.Flags().StringVar(&campaignListName, "list-name", "", "name for the implicit contact list (random when empty)")
	campaignsCreateCmd.Flags().StringSliceVar(&campaignNumbers, "numbers", nil, "E.164 phone numbers")
	campaignsCreateCmd.Flags().StringVar(&campaignCallbacks, "call-status-callback", "", "callback URL for call status")
	_ = campaignsCreateCmd.MarkFlagRequired("caller-id")
	_ = campaignsCreateCmd.MarkFlagRequired("app-id")
	_ = campaignsCreateCmd.MarkFlagRequired("numbers")

	campaignsListCmd.Flags().IntVar(&campaignFilter.Offset, "offset", 0, "paging offset")
	campaignsListCmd.Flags().IntVar(&campaignFilter.Limit, "limit", 0, "records per page")
	campaignsListCmd.Flags().StringVar(&campaignFilter.Name, "name", "", "search on campaign name")
	campaignsListCmd.Flags().StringVar(&campaignFilter.Status, "status", "", "filter on status")
	campaignsListCmd.Flags().StringVar(&campaignFilter.SortBy, "sort-by", "", "sort expression")

	campaignsCallDetailsCmd.Flags().IntVar(&callDetailsFilter.Offset, "offset", 0, "paging offset")
	campaignsCallDetailsCmd.Flags().IntVar(&callDetailsFilter.Limit, "limit", 0, "records per page")
	campaignsCallDetailsCmd.Flags().StringVar(&callDetailsFilter.Status, "status", "", "filter on status")
	campaignsCallDetailsCmd.Flags().StringVar(&callDetailsFilter.SortBy, "sort-by", "", "sort expression")

	campaignsCmd.AddCommand(campaignsCreateCmd)
	campaignsCmd.AddCommand(campaignsGetCmd)
	campaignsCmd.AddCommand(campaignsDeleteCmd)
	campaignsCmd.AddCommand(campaignsListCmd)
	campaignsCmd.AddCommand(campaignsCallDetailsCmd)
}
