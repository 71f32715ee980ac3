package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewCreditorsCommand creates the creditors command group.
func NewCreditorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creditors",
		Short: "Manage creditors",
		Long:  "List, inspect and update creditors",
	}

	cmd.AddCommand(newCreditorsListCommand())
	cmd.AddCommand(newCreditorsGetCommand())
	cmd.AddCommand(newCreditorsUpdateCommand())

	return cmd
}

func newCreditorsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List creditors",
		Long:  "List the creditors visible to the current token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			page, err := client.Creditors().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list creditors: %w", err)
			}

			return renderOutput(page.Items, func() error {
				if len(page.Items) == 0 {
					_, _ = os.Stdout.WriteString("No creditors found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Country", "Verification", "Created")

				for _, creditor := range page.Items {
					_ = table.Append(
						creditor.ID,
						creditor.Name,
						orNA(creditor.CountryCode),
						orNA(creditor.VerificationStatus),
						formatTimestamp(creditor.CreatedAt),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				printMoreCursor(page.Meta.Cursors.After)

				return nil
			})
		},
	}

	addListFlags(cmd)

	return cmd
}

func newCreditorsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CREDITOR_ID",
		Short: "Show a creditor",
		Long:  "Show the details of a single creditor, including scheme identifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			creditor, err := client.Creditors().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get creditor: %w", err)
			}

			return renderOutput(creditor, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", creditor.ID)
				_ = table.Append("Name", creditor.Name)
				_ = table.Append("Address", orNA(creditor.AddressLine1))
				_ = table.Append("City", orNA(creditor.City))
				_ = table.Append("Country", orNA(creditor.CountryCode))
				_ = table.Append("Verification", orNA(creditor.VerificationStatus))
				_ = table.Append("Created", formatTimestamp(creditor.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if len(creditor.SchemeIdentifiers) > 0 {
					_, _ = os.Stdout.WriteString("\nScheme identifiers:\n")
					for _, identifier := range creditor.SchemeIdentifiers {
						_, _ = fmt.Fprintf(os.Stdout, "  %s  %s  %s\n",
							identifier.Scheme, identifier.Name, identifier.Reference)
					}
				}

				return nil
			})
		},
	}
}

func newCreditorsUpdateCommand() *cobra.Command {
	var (
		name        string
		city        string
		countryCode string
	)

	cmd := &cobra.Command{
		Use:   "update CREDITOR_ID",
		Short: "Update a creditor",
		Long:  "Update selected fields of a creditor; omitted fields are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.CreditorUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("city") {
				request.City = &city
			}

			if cmd.Flags().Changed("country-code") {
				request.CountryCode = &countryCode
			}

			creditor, err := client.Creditors().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update creditor: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated creditor %s\n", creditor.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new creditor name")
	cmd.Flags().StringVar(&city, "city", "", "new city")
	cmd.Flags().StringVar(&countryCode, "country-code", "", "new ISO country code")

	return cmd
}
