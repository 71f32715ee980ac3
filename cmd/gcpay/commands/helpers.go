package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/paykit-io/gcpay/pkg/gcclient"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultListLimit = 50
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired          = errors.New("access token is required (use --token, GCPAY_TOKEN or 'gcpay login')")
	ErrAmountRequired         = errors.New("amount is required (--amount)")
	ErrCurrencyRequired       = errors.New("currency is required (--currency)")
	ErrMandateRequired        = errors.New("mandate is required (--mandate)")
	ErrPaymentRequired        = errors.New("payment is required (--payment)")
	ErrCustomerRequired       = errors.New("customer is required (--customer)")
	ErrBankAccountRequired    = errors.New("customer bank account is required (--bank-account)")
	ErrIntervalUnitRequired   = errors.New("interval unit is required (--interval-unit)")
	ErrUnknownConfigKey       = errors.New("unknown configuration key")
	ErrNoConfiguredToken      = errors.New("no access token configured")
	ErrInvalidMetadataFormat  = errors.New("invalid metadata format, expected key=value")
	ErrInvalidCreatedAtFormat = errors.New("invalid timestamp, expected RFC 3339 (2006-01-02T15:04:05Z)")
)

// CreateClient builds a gcpay client from the effective CLI configuration.
func CreateClient() (gcpay.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	config := &gcpay.Config{
		AccessToken: token,
		Environment: gcpay.Environment(viper.GetString("environment")),
		Endpoint:    viper.GetString("endpoint"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewZerologAdapter(os.Stderr)
	}

	client, err := gcclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderOutput writes data as JSON or YAML per the --output flag, or calls
// renderTable for the default format.
func renderOutput(data interface{}, renderTable func() error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	default:
		return renderTable()
	}
}

// formatAmount renders minor currency units as a human amount, e.g.
// 1050 GBP -> "10.50 GBP".
func formatAmount(amount int, currency string) string {
	major := amount / 100
	minor := amount % 100

	if minor < 0 {
		minor = -minor
	}

	return fmt.Sprintf("%d.%02d %s", major, minor, currency)
}

// formatTimestamp renders an API timestamp for table output.
func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return NotAvailable
	}

	return value.Local().Format("2006-01-02 15:04:05")
}

// orNA substitutes N/A for empty strings in table cells.
func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// parseMetadataFlags converts repeated key=value flags into a metadata map.
func parseMetadataFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMetadataFormat, pair)
		}

		metadata[key] = value
	}

	return metadata, nil
}

// listParamsFromFlags builds ListParams from the shared list flags.
func listParamsFromFlags(cmd *cobra.Command) (*gcpay.ListParams, error) {
	params := gcpay.NewListParams()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 {
		params.WithLimit(limit)
	}

	after, _ := cmd.Flags().GetString("after")
	if after != "" {
		params.WithAfter(after)
	}

	statuses, _ := cmd.Flags().GetStringSlice("status")
	if len(statuses) > 0 {
		params.WithStatus(statuses...)
	}

	createdAfter, _ := cmd.Flags().GetString("created-after")
	if createdAfter != "" {
		parsed, err := time.Parse(time.RFC3339, createdAfter)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCreatedAtFormat, createdAfter)
		}

		params.WithCreatedAfter(parsed)
	}

	createdBefore, _ := cmd.Flags().GetString("created-before")
	if createdBefore != "" {
		parsed, err := time.Parse(time.RFC3339, createdBefore)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCreatedAtFormat, createdBefore)
		}

		params.WithCreatedBefore(parsed)
	}

	return params, nil
}

// addListFlags registers the shared pagination and filter flags.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", defaultListLimit, "number of records per page")
	cmd.Flags().String("after", "", "cursor to start after")
	cmd.Flags().StringSlice("status", nil, "filter by status (repeatable)")
	cmd.Flags().String("created-after", "", "only records created after this RFC 3339 timestamp")
	cmd.Flags().String("created-before", "", "only records created before this RFC 3339 timestamp")
	cmd.Flags().Bool("all", false, "fetch all pages")
}

// printMoreCursor prints the continuation cursor after a single-page listing.
func printMoreCursor(after *string) {
	if after != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore records available, continue with: --after %s\n", *after)
	}
}

// itoa is a small shim so tables can take ints without strconv noise at
// every call site.
func itoa(value int) string {
	return strconv.Itoa(value)
}
