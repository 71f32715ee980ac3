package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewRefundsCommand creates the refunds command group.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refunds",
		Short: "Manage refunds",
		Long:  "Create, list and inspect refunds",
	}

	cmd.AddCommand(newRefundsListCommand())
	cmd.AddCommand(newRefundsGetCommand())
	cmd.AddCommand(newRefundsCreateCommand())

	return cmd
}

func newRefundsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List refunds",
		Long:  "List refunds, optionally filtered by payment or mandate",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			if payment, _ := cmd.Flags().GetString("payment"); payment != "" {
				params.WithFilter("payment", payment)
			}

			if mandate, _ := cmd.Flags().GetString("mandate"); mandate != "" {
				params.WithFilter("mandate", mandate)
			}

			ctx := context.Background()

			var (
				refunds []gcpay.Refund
				more    *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				refunds, err = client.Refunds().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list refunds: %w", err)
				}
			} else {
				page, err := client.Refunds().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list refunds: %w", err)
				}

				refunds = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(refunds, func() error {
				if len(refunds) == 0 {
					_, _ = os.Stdout.WriteString("No refunds found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Amount", "Status", "Payment", "Created")

				for _, refund := range refunds {
					_ = table.Append(
						refund.ID,
						formatAmount(refund.Amount, refund.Currency),
						refund.Status,
						orNA(refund.Links.Payment),
						formatTimestamp(refund.CreatedAt),
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
	cmd.Flags().String("payment", "", "filter by payment ID")
	cmd.Flags().String("mandate", "", "filter by mandate ID")

	return cmd
}

func newRefundsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REFUND_ID",
		Short: "Show a refund",
		Long:  "Show the details of a single refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get refund: %w", err)
			}

			return renderOutput(refund, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", refund.ID)
				_ = table.Append("Amount", formatAmount(refund.Amount, refund.Currency))
				_ = table.Append("Status", refund.Status)
				_ = table.Append("Reference", orNA(refund.Reference))
				_ = table.Append("Payment", orNA(refund.Links.Payment))
				_ = table.Append("Created", formatTimestamp(refund.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newRefundsCreateCommand() *cobra.Command {
	var (
		amount            int
		payment           string
		totalConfirmation int
		reference         string
		idempotencyKey    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a refund",
		Long: `Create a refund against a collected payment.

Pass --total-confirmation with the total amount refunded on the payment
including this refund; the API rejects the request on a mismatch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 {
				return ErrAmountRequired
			}

			if payment == "" {
				return ErrPaymentRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.RefundCreateRequest{
				Amount:                  amount,
				TotalAmountConfirmation: totalConfirmation,
				Reference:               reference,
				Links:                   gcpay.RefundLinks{Payment: payment},
			}

			var opts []gcpay.RequestOption
			if idempotencyKey != "" {
				opts = append(opts, gcpay.WithIdempotencyKey(idempotencyKey))
			}

			refund, err := client.Refunds().Create(context.Background(), request, opts...)
			if err != nil {
				return fmt.Errorf("failed to create refund: %w", err)
			}

			return renderOutput(refund, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Created refund %s (%s)\n",
					refund.ID, formatAmount(refund.Amount, refund.Currency))

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount to refund in minor units (required)")
	cmd.Flags().StringVar(&payment, "payment", "", "payment to refund (required)")
	cmd.Flags().IntVar(&totalConfirmation, "total-confirmation", 0, "total refunded on the payment including this refund")
	cmd.Flags().StringVar(&reference, "reference", "", "bank statement reference")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key (generated when omitted)")

	return cmd
}
