package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the event feed",
		Long:  "List and inspect events recorded against payments, mandates and other resources",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())

	return cmd
}

// eventResource names the resource an event concerns, whichever link is set.
func eventResource(event *gcpay.Event) string {
	switch {
	case event.Links.Payment != "":
		return event.Links.Payment
	case event.Links.Mandate != "":
		return event.Links.Mandate
	case event.Links.Refund != "":
		return event.Links.Refund
	case event.Links.Subscription != "":
		return event.Links.Subscription
	case event.Links.Payout != "":
		return event.Links.Payout
	default:
		return NotAvailable
	}
}

func newEventsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events, optionally filtered by resource type, action or linked resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(cmd)
			if err != nil {
				return err
			}

			if resourceType, _ := cmd.Flags().GetString("resource-type"); resourceType != "" {
				params.WithFilter("resource_type", resourceType)
			}

			if action, _ := cmd.Flags().GetString("action"); action != "" {
				params.WithFilter("action", action)
			}

			if payment, _ := cmd.Flags().GetString("payment"); payment != "" {
				params.WithFilter("payment", payment)
			}

			if mandate, _ := cmd.Flags().GetString("mandate"); mandate != "" {
				params.WithFilter("mandate", mandate)
			}

			ctx := context.Background()

			var (
				events []gcpay.Event
				more   *string
			)

			if allPages, _ := cmd.Flags().GetBool("all"); allPages {
				events, err = client.Events().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list events: %w", err)
				}
			} else {
				page, err := client.Events().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list events: %w", err)
				}

				events = page.Items
				more = page.Meta.Cursors.After
			}

			return renderOutput(events, func() error {
				if len(events) == 0 {
					_, _ = os.Stdout.WriteString("No events found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Resource Type", "Action", "Resource", "Cause", "Created")

				for index := range events {
					event := &events[index]
					_ = table.Append(
						event.ID,
						event.ResourceType,
						event.Action,
						eventResource(event),
						orNA(event.Details.Cause),
						formatTimestamp(event.CreatedAt),
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
	cmd.Flags().String("resource-type", "", "filter by resource type (payments, mandates, ...)")
	cmd.Flags().String("action", "", "filter by action (failed, cancelled, ...)")
	cmd.Flags().String("payment", "", "filter by payment ID")
	cmd.Flags().String("mandate", "", "filter by mandate ID")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Show an event",
		Long:  "Show the details of a single event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			return renderOutput(event, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", event.ID)
				_ = table.Append("Resource Type", event.ResourceType)
				_ = table.Append("Action", event.Action)
				_ = table.Append("Resource", eventResource(event))
				_ = table.Append("Origin", orNA(event.Details.Origin))
				_ = table.Append("Cause", orNA(event.Details.Cause))
				_ = table.Append("Description", orNA(event.Details.Description))
				_ = table.Append("Created", formatTimestamp(event.CreatedAt))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
