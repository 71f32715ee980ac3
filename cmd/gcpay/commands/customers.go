package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
		Long:  "Create, list, inspect, update and remove customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersRemoveCommand())

	return cmd
}

func customerName(customer *gcpay.Customer) string {
	if customer.CompanyName != "" {
		return customer.CompanyName
	}

	name := strings.TrimSpace(customer.GivenName + " " + customer.FamilyName)
	if name == "" {
		return NotAvailable
	}

	return name
}

func newCustomersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, optionally filtered by creation time",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				customers []gcpay.Customer
				more      *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				customers, err = client.Customers().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list customers: %w", err)
				}
			} else {
				page, err := client.Customers().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list customers: %w", err)
				}

				customers = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(customers, func() error {
				if len(customers) == 0 {
					_, _ = os.Stdout.WriteString("No customers found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "Country", "Created")

				for index := range customers {
					customer := &customers[index]
					_ = table.Append(
						customer.ID,
						customerName(customer),
						orNA(customer.Email),
						orNA(customer.CountryCode),
						formatTimestamp(customer.CreatedAt),
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

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Show a customer",
		Long:  "Show the details of a single customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return renderOutput(customer, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", customer.ID)
				_ = table.Append("Name", customerName(customer))
				_ = table.Append("Email", orNA(customer.Email))
				_ = table.Append("Address", orNA(customer.AddressLine1))
				_ = table.Append("City", orNA(customer.City))
				_ = table.Append("Postal Code", orNA(customer.PostalCode))
				_ = table.Append("Country", orNA(customer.CountryCode))
				_ = table.Append("Language", orNA(customer.Language))
				_ = table.Append("Created", formatTimestamp(customer.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var request gcpay.CustomerCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a new customer record",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return renderOutput(customer, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Created customer %s (%s)\n", customer.ID, customerName(customer))

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "email address")
	cmd.Flags().StringVar(&request.GivenName, "given-name", "", "given name")
	cmd.Flags().StringVar(&request.FamilyName, "family-name", "", "family name")
	cmd.Flags().StringVar(&request.CompanyName, "company-name", "", "company name")
	cmd.Flags().StringVar(&request.AddressLine1, "address-line1", "", "address line 1")
	cmd.Flags().StringVar(&request.City, "city", "", "city")
	cmd.Flags().StringVar(&request.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&request.CountryCode, "country-code", "", "ISO country code")
	cmd.Flags().StringVar(&request.Language, "language", "", "preferred language (ISO 639-1)")

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var (
		email      string
		givenName  string
		familyName string
	)

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID",
		Short: "Update a customer",
		Long:  "Update selected fields of a customer; omitted fields are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.CustomerUpdateRequest{}
			if cmd.Flags().Changed("email") {
				request.Email = &email
			}

			if cmd.Flags().Changed("given-name") {
				request.GivenName = &givenName
			}

			if cmd.Flags().Changed("family-name") {
				request.FamilyName = &familyName
			}

			customer, err := client.Customers().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated customer %s\n", customer.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&givenName, "given-name", "", "new given name")
	cmd.Flags().StringVar(&familyName, "family-name", "", "new family name")

	return cmd
}

func newCustomersRemoveCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove CUSTOMER_ID",
		Short: "Remove a customer",
		Long:  "Remove a customer that has no active mandates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really remove customer '%s'? (y/N): ", identity)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Customers().Remove(context.Background(), identity)
			if err != nil {
				return fmt.Errorf("failed to remove customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Removed customer %s\n", identity)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
