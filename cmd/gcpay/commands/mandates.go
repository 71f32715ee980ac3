package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewMandatesCommand creates the mandates command group.
func NewMandatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandates",
		Short: "Manage mandates",
		Long:  "Create, list, inspect, cancel and reinstate Direct Debit mandates",
	}

	cmd.AddCommand(newMandatesListCommand())
	cmd.AddCommand(newMandatesGetCommand())
	cmd.AddCommand(newMandatesCreateCommand())
	cmd.AddCommand(newMandatesCancelCommand())
	cmd.AddCommand(newMandatesReinstateCommand())

	return cmd
}

func newMandatesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mandates",
		Long:  "List mandates, optionally filtered by customer or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			if customer, _ := cmd.Flags().GetString("customer"); customer != "" {
				params.WithFilter("customer", customer)
			}

			ctx := context.Background()

			var (
				mandates []gcpay.Mandate
				more     *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				mandates, err = client.Mandates().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list mandates: %w", err)
				}
			} else {
				page, err := client.Mandates().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list mandates: %w", err)
				}

				mandates = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(mandates, func() error {
				if len(mandates) == 0 {
					_, _ = os.Stdout.WriteString("No mandates found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Status", "Scheme", "Reference", "Customer", "Next Charge")

				for _, mandate := range mandates {
					_ = table.Append(
						mandate.ID,
						mandate.Status,
						orNA(mandate.Scheme),
						orNA(mandate.Reference),
						orNA(mandate.Links.Customer),
						orNA(mandate.NextPossibleChargeDate),
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
	cmd.Flags().String("customer", "", "filter by customer ID")

	return cmd
}

func newMandatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MANDATE_ID",
		Short: "Show a mandate",
		Long:  "Show the details of a single mandate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mandate, err := client.Mandates().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get mandate: %w", err)
			}

			return renderOutput(mandate, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", mandate.ID)
				_ = table.Append("Status", mandate.Status)
				_ = table.Append("Scheme", orNA(mandate.Scheme))
				_ = table.Append("Reference", orNA(mandate.Reference))
				_ = table.Append("Customer", orNA(mandate.Links.Customer))
				_ = table.Append("Bank Account", orNA(mandate.Links.CustomerBankAccount))
				_ = table.Append("Next Charge", orNA(mandate.NextPossibleChargeDate))
				_ = table.Append("Created", formatTimestamp(mandate.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newMandatesCreateCommand() *cobra.Command {
	var (
		bankAccount string
		creditor    string
		scheme      string
		reference   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a mandate",
		Long:  "Create a mandate against a customer bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bankAccount == "" {
				return ErrBankAccountRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.MandateCreateRequest{
				Scheme:    scheme,
				Reference: reference,
				Links: gcpay.MandateCreateLinks{
					CustomerBankAccount: bankAccount,
					Creditor:            creditor,
				},
			}

			mandate, err := client.Mandates().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create mandate: %w", err)
			}

			return renderOutput(mandate, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Created mandate %s (%s)\n", mandate.ID, mandate.Status)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&bankAccount, "bank-account", "", "customer bank account ID (required)")
	cmd.Flags().StringVar(&creditor, "creditor", "", "creditor ID")
	cmd.Flags().StringVar(&scheme, "scheme", "", "Direct Debit scheme, e.g. bacs or sepa_core")
	cmd.Flags().StringVar(&reference, "reference", "", "mandate reference")

	return cmd
}

func newMandatesCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel MANDATE_ID",
		Short: "Cancel a mandate",
		Long:  "Cancel a mandate; no further payments can be collected against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mandate, err := client.Mandates().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel mandate: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Cancelled mandate %s\n", mandate.ID)

			return nil
		},
	}
}

func newMandatesReinstateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reinstate MANDATE_ID",
		Short: "Reinstate a mandate",
		Long:  "Reinstate a cancelled or expired mandate where the scheme allows it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mandate, err := client.Mandates().Reinstate(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to reinstate mandate: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Reinstated mandate %s (%s)\n", mandate.ID, mandate.Status)

			return nil
		},
	}
}
