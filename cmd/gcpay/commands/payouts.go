package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewPayoutsCommand creates the payouts command group.
func NewPayoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Inspect payouts",
		Long:  "List and inspect payouts of collected funds",
	}

	cmd.AddCommand(newPayoutsListCommand())
	cmd.AddCommand(newPayoutsGetCommand())

	return cmd
}

func newPayoutsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payouts",
		Long:  "List payouts, optionally filtered by status or creditor",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			if creditor, _ := cmd.Flags().GetString("creditor"); creditor != "" {
				params.WithFilter("creditor", creditor)
			}

			ctx := context.Background()

			var (
				payouts []gcpay.Payout
				more    *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				payouts, err = client.Payouts().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list payouts: %w", err)
				}
			} else {
				page, err := client.Payouts().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list payouts: %w", err)
				}

				payouts = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(payouts, func() error {
				if len(payouts) == 0 {
					_, _ = os.Stdout.WriteString("No payouts found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Amount", "Fees", "Status", "Arrival", "Reference")

				for _, payout := range payouts {
					_ = table.Append(
						payout.ID,
						formatAmount(payout.Amount, payout.Currency),
						formatAmount(payout.DeductedFees, payout.Currency),
						payout.Status,
						orNA(payout.ArrivalDate),
						orNA(payout.Reference),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				printMoreCursor(more)

				return nil
			})
		},
	}

	addListFlags(cmd)
	cmd.Flags().String("creditor", "", "filter by creditor ID")

	return cmd
}

func newPayoutsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYOUT_ID",
		Short: "Show a payout",
		Long:  "Show the details of a single payout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payout, err := client.Payouts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payout: %w", err)
			}

			return renderOutput(payout, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", payout.ID)
				_ = table.Append("Amount", formatAmount(payout.Amount, payout.Currency))
				_ = table.Append("Deducted Fees", formatAmount(payout.DeductedFees, payout.Currency))
				_ = table.Append("Status", payout.Status)
				_ = table.Append("Type", orNA(payout.PayoutType))
				_ = table.Append("Arrival Date", orNA(payout.ArrivalDate))
				_ = table.Append("Reference", orNA(payout.Reference))
				_ = table.Append("Creditor", orNA(payout.Links.Creditor))
				_ = table.Append("Created", formatTimestamp(payout.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
