package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage payments",
		Long:  "Create, list, inspect, cancel and retry payments",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsCancelCommand())
	cmd.AddCommand(newPaymentsRetryCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Long:  "List payments, optionally filtered by status, mandate or creation time",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			if mandate, _ := cmd.Flags().GetString("mandate"); mandate != "" {
				params.WithFilter("mandate", mandate)
			}

			if customer, _ := cmd.Flags().GetString("customer"); customer != "" {
				params.WithFilter("customer", customer)
			}

			ctx := context.Background()

			var (
				payments []gcpay.Payment
				more     *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				payments, err = client.Payments().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list payments: %w", err)
				}
			} else {
				page, err := client.Payments().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list payments: %w", err)
				}

				payments = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(payments, func() error {
				if len(payments) == 0 {
					_, _ = os.Stdout.WriteString("No payments found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Amount", "Status", "Charge Date", "Mandate", "Created")

				for _, payment := range payments {
					_ = table.Append(
						payment.ID,
						formatAmount(payment.Amount, payment.Currency),
						payment.Status,
						orNA(payment.ChargeDate),
						orNA(payment.Links.Mandate),
						formatTimestamp(payment.CreatedAt),
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
	cmd.Flags().String("mandate", "", "filter by mandate ID")
	cmd.Flags().String("customer", "", "filter by customer ID")

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Show a payment",
		Long:  "Show the details of a single payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			return renderOutput(payment, func() error {
				return renderPaymentTable(payment)
			})
		},
	}
}

func renderPaymentTable(payment *gcpay.Payment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", payment.ID)
	_ = table.Append("Amount", formatAmount(payment.Amount, payment.Currency))
	_ = table.Append("Refunded", formatAmount(payment.AmountRefunded, payment.Currency))
	_ = table.Append("Status", payment.Status)
	_ = table.Append("Charge Date", orNA(payment.ChargeDate))
	_ = table.Append("Description", orNA(payment.Description))
	_ = table.Append("Reference", orNA(payment.Reference))
	_ = table.Append("Mandate", orNA(payment.Links.Mandate))
	_ = table.Append("Payout", orNA(payment.Links.Payout))
	_ = table.Append("Created", formatTimestamp(payment.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPaymentsCreateCommand() *cobra.Command {
	var (
		amount         int
		currency       string
		mandate        string
		chargeDate     string
		description    string
		reference      string
		idempotencyKey string
		metadataPairs  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		Long:  "Create a payment collecting against a mandate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 {
				return ErrAmountRequired
			}

			if currency == "" {
				return ErrCurrencyRequired
			}

			if mandate == "" {
				return ErrMandateRequired
			}

			metadata, err := parseMetadataFlags(metadataPairs)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.PaymentCreateRequest{
				Amount:      amount,
				Currency:    currency,
				ChargeDate:  chargeDate,
				Description: description,
				Reference:   reference,
				Metadata:    metadata,
				Links:       gcpay.PaymentCreateLinks{Mandate: mandate},
			}

			var opts []gcpay.RequestOption
			if idempotencyKey != "" {
				opts = append(opts, gcpay.WithIdempotencyKey(idempotencyKey))
			}

			payment, err := client.Payments().Create(context.Background(), request, opts...)
			if err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}

			return renderOutput(payment, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Created payment %s (%s, %s)\n",
					payment.ID, formatAmount(payment.Amount, payment.Currency), payment.Status)

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount in minor units, e.g. pence (required)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code (required)")
	cmd.Flags().StringVar(&mandate, "mandate", "", "mandate to collect against (required)")
	cmd.Flags().StringVar(&chargeDate, "charge-date", "", "date to charge (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "payment description")
	cmd.Flags().StringVar(&reference, "reference", "", "bank statement reference")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key (generated when omitted)")
	cmd.Flags().StringArrayVar(&metadataPairs, "metadata", nil, "metadata entry as key=value (repeatable)")

	return cmd
}

func newPaymentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID",
		Short: "Cancel a payment",
		Long:  "Cancel a payment that has not been submitted to the banks yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel payment: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Cancelled payment %s\n", payment.ID)

			return nil
		},
	}
}

func newPaymentsRetryCommand() *cobra.Command {
	var idempotencyKey string

	cmd := &cobra.Command{
		Use:   "retry PAYMENT_ID",
		Short: "Retry a failed payment",
		Long:  "Collect a failed payment again on the next working day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var opts []gcpay.RequestOption
			if idempotencyKey != "" {
				opts = append(opts, gcpay.WithIdempotencyKey(idempotencyKey))
			}

			payment, err := client.Payments().Retry(context.Background(), args[0], opts...)
			if err != nil {
				return fmt.Errorf("failed to retry payment: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Retrying payment %s (%s)\n", payment.ID, payment.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key for the retry action")

	return cmd
}
