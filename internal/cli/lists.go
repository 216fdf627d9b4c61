package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/acme/exotel-go/exotel"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage contact lists",
}

// defaultedListName fills in a unique name when the user did not pick one.
func defaultedListName(name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("list-%s", uuid.NewString()[:8])
}

var (
	listName    string
	listTag     string
	listNumbers []string

	listsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a contact list, optionally populated with numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().CreateList(cmd.Context(), exotel.CreateListParams{
				Name:    defaultedListName(listName),
				Tag:     listTag,
				Numbers: listNumbers,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	listsGetCmd = &cobra.Command{
		Use:   "get <list-id>",
		Short: "Fetch a single contact list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetListDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	listsDeleteCmd = &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a contact list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().DeleteList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	listFilter exotel.ListFilter

	listsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List contact lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetBulkLists(cmd.Context(), listFilter)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	listContactsOffset int
	listContactsLimit  int

	listsContactsCmd = &cobra.Command{
		Use:   "contacts <list-id>",
		Short: "List the contacts of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetListContacts(cmd.Context(), args[0], listContactsOffset, listContactsLimit)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
)

func init() {
	listsCreateCmd.Flags().StringVar(&listName, "name", "", "list name (random when empty)")
	listsCreateCmd.Flags().StringVar(&listTag, "tag", "", "list tag")
	listsCreateCmd.Flags().StringSliceVar(&listNumbers, "numbers", nil, "E.164 phone numbers to add")

	listsListCmd.Flags().IntVar(&listFilter.Offset, "offset", 0, "paging offset")
	listsListCmd.Flags().IntVar(&listFilter.Limit, "limit", 0, "records per page")
	listsListCmd.Flags().StringVar(&listFilter.Name, "name", "", "search on list name")
	listsListCmd.Flags().StringVar(&listFilter.SortBy, "sort-by", "", "sort expression")

	listsContactsCmd.Flags().IntVar(&listContactsOffset, "offset", 0, "paging offset")
	listsContactsCmd.Flags().IntVar(&listContactsLimit, "limit", 0, "records per page")

	listsCmd.AddCommand(listsCreateCmd)
	listsCmd.AddCommand(listsGetCmd)
	listsCmd.AddCommand(listsDeleteCmd)
	listsCmd.AddCommand(listsListCmd)
	listsCmd.AddCommand(listsContactsCmd)
}
