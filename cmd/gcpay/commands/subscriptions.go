package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Manage subscriptions",
		Long:  "Create, list, inspect, pause, resume and cancel subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsPauseCommand())
	cmd.AddCommand(newSubscriptionsResumeCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions, optionally filtered by mandate or customer",
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
				subscriptions []gcpay.Subscription
				more          *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				subscriptions, err = client.Subscriptions().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list subscriptions: %w", err)
				}
			} else {
				page, err := client.Subscriptions().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list subscriptions: %w", err)
				}

				subscriptions = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(subscriptions, func() error {
				if len(subscriptions) == 0 {
					_, _ = os.Stdout.WriteString("No subscriptions found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Amount", "Interval", "Status", "Mandate")

				for _, subscription := range subscriptions {
					interval := fmt.Sprintf("every %s %s", itoa(subscription.Interval), subscription.IntervalUnit)
					_ = table.Append(
						subscription.ID,
						orNA(subscription.Name),
						formatAmount(subscription.Amount, subscription.Currency),
						interval,
						subscription.Status,
						orNA(subscription.Links.Mandate),
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

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Show a subscription",
		Long:  "Show the details of a single subscription, including upcoming payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return renderOutput(subscription, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", subscription.ID)
				_ = table.Append("Name", orNA(subscription.Name))
				_ = table.Append("Amount", formatAmount(subscription.Amount, subscription.Currency))
				_ = table.Append("Interval", fmt.Sprintf("every %s %s", itoa(subscription.Interval), subscription.IntervalUnit))
				_ = table.Append("Status", subscription.Status)
				_ = table.Append("Start Date", orNA(subscription.StartDate))
				_ = table.Append("End Date", orNA(subscription.EndDate))
				_ = table.Append("Mandate", orNA(subscription.Links.Mandate))
				_ = table.Append("Created", formatTimestamp(subscription.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if len(subscription.UpcomingPayments) > 0 {
					_, _ = os.Stdout.WriteString("\nUpcoming payments:\n")
					for _, upcoming := range subscription.UpcomingPayments {
						_, _ = fmt.Fprintf(os.Stdout, "  %s  %s\n",
							upcoming.ChargeDate, formatAmount(upcoming.Amount, subscription.Currency))
					}
				}

				return nil
			})
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		amount       int
		currency     string
		mandate      string
		name         string
		interval     int
		intervalUnit string
		startDate    string
		count        int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long:  "Create a recurring payment schedule against a mandate",
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

			if intervalUnit == "" {
				return ErrIntervalUnitRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gcpay.SubscriptionCreateRequest{
				Amount:       amount,
				Currency:     currency,
				Name:         name,
				Interval:     interval,
				IntervalUnit: intervalUnit,
				StartDate:    startDate,
				Count:        count,
				Links:        gcpay.SubscriptionLinks{Mandate: mandate},
			}

			subscription, err := client.Subscriptions().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			return renderOutput(subscription, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Created subscription %s (%s, %s)\n",
					subscription.ID, formatAmount(subscription.Amount, subscription.Currency), subscription.Status)

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount in minor units per collection (required)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code (required)")
	cmd.Flags().StringVar(&mandate, "mandate", "", "mandate to collect against (required)")
	cmd.Flags().StringVar(&name, "name", "", "subscription name")
	cmd.Flags().IntVar(&interval, "interval", 1, "number of interval units between collections")
	cmd.Flags().StringVar(&intervalUnit, "interval-unit", "", "weekly, monthly or yearly (required)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "date of the first collection (YYYY-MM-DD)")
	cmd.Flags().IntVar(&count, "count", 0, "total number of collections (0 for open-ended)")

	return cmd
}

func newSubscriptionsPauseCommand() *cobra.Command {
	var pauseCycles int

	cmd := &cobra.Command{
		Use:   "pause SUBSCRIPTION_ID",
		Short: "Pause a subscription",
		Long:  "Pause a subscription, optionally for a fixed number of cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var request *gcpay.SubscriptionPauseRequest
			if pauseCycles > 0 {
				request = &gcpay.SubscriptionPauseRequest{PauseCycles: pauseCycles}
			}

			subscription, err := client.Subscriptions().Pause(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to pause subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Paused subscription %s\n", subscription.ID)

			return nil
		},
	}

	cmd.Flags().IntVar(&pauseCycles, "cycles", 0, "number of cycles to pause for (indefinite when omitted)")

	return cmd
}

func newSubscriptionsResumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resume SUBSCRIPTION_ID",
		Short: "Resume a paused subscription",
		Long:  "Resume collections on a paused subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Resume(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resume subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Resumed subscription %s (%s)\n", subscription.ID, subscription.Status)

			return nil
		},
	}
}

func newSubscriptionsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription; pending payments are cancelled where possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Cancelled subscription %s\n", subscription.ID)

			return nil
		},
	}
}
