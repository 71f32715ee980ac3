package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewBankAccountsCommand creates the bank-accounts command group.
func NewBankAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank-accounts",
		Short: "Manage customer bank accounts",
		Long:  "Create, list, inspect and disable customer bank accounts",
	}

	cmd.AddCommand(newBankAccountsListCommand())
	cmd.AddCommand(newBankAccountsGetCommand())
	cmd.AddCommand(newBankAccountsCreateCommand())
	cmd.AddCommand(newBankAccountsDisableCommand())

	return cmd
}

func newBankAccountsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customer bank accounts",
		Long:  "List customer bank accounts, optionally filtered by customer",
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
				accounts []gcpay.CustomerBankAccount
				more     *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				accounts, err = client.CustomerBankAccounts().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list bank accounts: %w", err)
				}
			} else {
				page, err := client.CustomerBankAccounts().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list bank accounts: %w", err)
				}

				accounts = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(accounts, func() error {
				if len(accounts) == 0 {
					_, _ = os.Stdout.WriteString("No bank accounts found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Holder", "Ending", "Bank", "Currency", "Enabled", "Customer")

				for _, account := range accounts {
					enabled := "no"
					if account.Enabled {
						enabled = "yes"
					}

					_ = table.Append(
						account.ID,
						account.AccountHolderName,
						"****"+account.AccountNumberEnding,
						orNA(account.BankName),
						account.Currency,
						enabled,
						account.Links.Customer,
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

func newBankAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BANK_ACCOUNT_ID",
		Short: "Show a customer bank account",
		Long:  "Show the details of a single customer bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.CustomerBankAccounts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get bank account: %w", err)
			}

			return renderOutput(account, func() error {
				enabled := "no"
				if account.Enabled {
					enabled = "yes"
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", account.ID)
				_ = table.Append("Holder", account.AccountHolderName)
				_ = table.Append("Account Ending", "****"+account.AccountNumberEnding)
				_ = table.Append("Bank", orNA(account.BankName))
				_ = table.Append("Country", orNA(account.CountryCode))
				_ = table.Append("Currency", account.Currency)
				_ = table.Append("Enabled", enabled)
				_ = table.Append("Customer", account.Links.Customer)
				_ = table.Append("Created", formatTimestamp(account.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newBankAccountsCreateCommand() *cobra.Command {
	var (
		customer      string
		holderName    string
		accountNumber string
		branchCode    string
		iban          string
		countryCode   string
		currency      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer bank account",
		Long:  "Create a bank account for a customer from local details or an IBAN",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customer == "" {
				return ErrCustomerRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.CustomerBankAccountCreateRequest{
				AccountHolderName: holderName,
				AccountNumber:     accountNumber,
				BranchCode:        branchCode,
				IBAN:              iban,
				CountryCode:       countryCode,
				Currency:          currency,
				Links:             gcpay.CustomerBankAccountLinks{Customer: customer},
			}

			account, err := client.CustomerBankAccounts().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create bank account: %w", err)
			}

			return renderOutput(account, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Created bank account %s (****%s)\n",
					account.ID, account.AccountNumberEnding)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer the account belongs to (required)")
	cmd.Flags().StringVar(&holderName, "holder-name", "", "account holder name")
	cmd.Flags().StringVar(&accountNumber, "account-number", "", "local account number")
	cmd.Flags().StringVar(&branchCode, "branch-code", "", "local branch code, e.g. UK sort code")
	cmd.Flags().StringVar(&iban, "iban", "", "IBAN (alternative to local details)")
	cmd.Flags().StringVar(&countryCode, "country-code", "", "ISO country code")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code")

	return cmd
}

func newBankAccountsDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable BANK_ACCOUNT_ID",
		Short: "Disable a customer bank account",
		Long:  "Disable a bank account; active mandates against it are cancelled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.CustomerBankAccounts().Disable(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to disable bank account: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Disabled bank account %s\n", account.ID)

			return nil
		},
	}
}
