package gcpay

import "time"

// Currency codes accepted by the API.
const (
	CurrencyGBP = "GBP"
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencySEK = "SEK"
	CurrencyDKK = "DKK"
	CurrencyAUD = "AUD"
	CurrencyNZD = "NZD"
	CurrencyCAD = "CAD"
)

// Payment statuses.
const (
	PaymentStatusPendingCustomerApproval = "pending_customer_approval"
	PaymentStatusPendingSubmission       = "pending_submission"
	PaymentStatusSubmitted               = "submitted"
	PaymentStatusConfirmed               = "confirmed"
	PaymentStatusPaidOut                 = "paid_out"
	PaymentStatusCancelled               = "cancelled"
	PaymentStatusCustomerApprovalDenied  = "customer_approval_denied"
	PaymentStatusFailed                  = "failed"
	PaymentStatusChargedBack             = "charged_back"
)

// Mandate statuses.
const (
	MandateStatusPendingCustomerApproval = "pending_customer_approval"
	MandateStatusPendingSubmission       = "pending_submission"
	MandateStatusSubmitted               = "submitted"
	MandateStatusActive                  = "active"
	MandateStatusFailed                  = "failed"
	MandateStatusCancelled               = "cancelled"
	MandateStatusExpired                 = "expired"
)

// Subscription statuses.
const (
	SubscriptionStatusPendingCustomerApproval = "pending_customer_approval"
	SubscriptionStatusCustomerApprovalDenied  = "customer_approval_denied"
	SubscriptionStatusActive                  = "active"
	SubscriptionStatusFinished                = "finished"
	SubscriptionStatusCancelled               = "cancelled"
	SubscriptionStatusPaused                  = "paused"
)

// Customer represents an end customer that payments are collected from.
type Customer struct {
	ID           string    `json:"id"                      yaml:"id"`
	CreatedAt    time.Time `json:"created_at"              yaml:"created_at"`
	Email        string    `json:"email,omitempty"         yaml:"email,omitempty"`
	GivenName    string    `json:"given_name,omitempty"    yaml:"given_name,omitempty"`
	FamilyName   string    `json:"family_name,omitempty"   yaml:"family_name,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"  yaml:"company_name,omitempty"`
	AddressLine1 string    `json:"address_line1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 string    `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	AddressLine3 string    `json:"address_line3,omitempty" yaml:"address_line3,omitempty"`
	City         string    `json:"city,omitempty"          yaml:"city,omitempty"`
	Region       string    `json:"region,omitempty"        yaml:"region,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty"   yaml:"postal_code,omitempty"`
	CountryCode  string    `json:"country_code,omitempty"  yaml:"country_code,omitempty"`
	Language     string    `json:"language,omitempty"      yaml:"language,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"  yaml:"phone_number,omitempty"`
	Metadata     Metadata  `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// CustomerCreateRequest represents a request to create a customer.
type CustomerCreateRequest struct {
	Email        string   `json:"email,omitempty"         yaml:"email,omitempty"`
	GivenName    string   `json:"given_name,omitempty"    yaml:"given_name,omitempty"`
	FamilyName   string   `json:"family_name,omitempty"   yaml:"family_name,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"  yaml:"company_name,omitempty"`
	AddressLine1 string   `json:"address_line1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 string   `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	AddressLine3 string   `json:"address_line3,omitempty" yaml:"address_line3,omitempty"`
	City         string   `json:"city,omitempty"          yaml:"city,omitempty"`
	Region       string   `json:"region,omitempty"        yaml:"region,omitempty"`
	PostalCode   string   `json:"postal_code,omitempty"   yaml:"postal_code,omitempty"`
	CountryCode  string   `json:"country_code,omitempty"  yaml:"country_code,omitempty"`
	Language     string   `json:"language,omitempty"      yaml:"language,omitempty"`
	PhoneNumber  string   `json:"phone_number,omitempty"  yaml:"phone_number,omitempty"`
	Metadata     Metadata `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// CustomerUpdateRequest represents a request to update a customer.
// Nil fields are left unchanged.
type CustomerUpdateRequest struct {
	Email        *string  `json:"email,omitempty"         yaml:"email,omitempty"`
	GivenName    *string  `json:"given_name,omitempty"    yaml:"given_name,omitempty"`
	FamilyName   *string  `json:"family_name,omitempty"   yaml:"family_name,omitempty"`
	CompanyName  *string  `json:"company_name,omitempty"  yaml:"company_name,omitempty"`
	AddressLine1 *string  `json:"address_line1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 *string  `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	AddressLine3 *string  `json:"address_line3,omitempty" yaml:"address_line3,omitempty"`
	City         *string  `json:"city,omitempty"          yaml:"city,omitempty"`
	Region       *string  `json:"region,omitempty"        yaml:"region,omitempty"`
	PostalCode   *string  `json:"postal_code,omitempty"   yaml:"postal_code,omitempty"`
	CountryCode  *string  `json:"country_code,omitempty"  yaml:"country_code,omitempty"`
	Language     *string  `json:"language,omitempty"      yaml:"language,omitempty"`
	PhoneNumber  *string  `json:"phone_number,omitempty"  yaml:"phone_number,omitempty"`
	Metadata     Metadata `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// CustomerBankAccount represents a bank account belonging to a customer.
type CustomerBankAccount struct {
	ID                  string                   `json:"id"                    yaml:"id"`
	CreatedAt           time.Time                `json:"created_at"            yaml:"created_at"`
	AccountHolderName   string                   `json:"account_holder_name"   yaml:"account_holder_name"`
	AccountNumberEnding string                   `json:"account_number_ending" yaml:"account_number_ending"`
	BankName            string                   `json:"bank_name,omitempty"   yaml:"bank_name,omitempty"`
	CountryCode         string                   `json:"country_code"          yaml:"country_code"`
	Currency            string                   `json:"currency"              yaml:"currency"`
	Enabled             bool                     `json:"enabled"               yaml:"enabled"`
	Metadata            Metadata                 `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	Links               CustomerBankAccountLinks `json:"links"                 yaml:"links"`
}

// CustomerBankAccountLinks relates a bank account to its customer.
type CustomerBankAccountLinks struct {
	Customer string `json:"customer" yaml:"customer"`
}

// CustomerBankAccountCreateRequest represents a request to create a
// customer bank account. Provide either local details (AccountNumber +
// BranchCode) or an IBAN.
type CustomerBankAccountCreateRequest struct {
	AccountHolderName string                   `json:"account_holder_name"      yaml:"account_holder_name"`
	AccountNumber     string                   `json:"account_number,omitempty" yaml:"account_number,omitempty"`
	BranchCode        string                   `json:"branch_code,omitempty"    yaml:"branch_code,omitempty"`
	BankCode          string                   `json:"bank_code,omitempty"      yaml:"bank_code,omitempty"`
	IBAN              string                   `json:"iban,omitempty"           yaml:"iban,omitempty"`
	CountryCode       string                   `json:"country_code,omitempty"   yaml:"country_code,omitempty"`
	Currency          string                   `json:"currency,omitempty"       yaml:"currency,omitempty"`
	Metadata          Metadata                 `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
	Links             CustomerBankAccountLinks `json:"links"                    yaml:"links"`
}

// Payment represents a single collection against a mandate.
// Amount is in the minor unit of Currency (pence, cents).
type Payment struct {
	ID              string       `json:"id"                         yaml:"id"`
	CreatedAt       time.Time    `json:"created_at"                 yaml:"created_at"`
	ChargeDate      string       `json:"charge_date,omitempty"      yaml:"charge_date,omitempty"`
	Amount          int          `json:"amount"                     yaml:"amount"`
	AmountRefunded  int          `json:"amount_refunded"            yaml:"amount_refunded"`
	Currency        string       `json:"currency"                   yaml:"currency"`
	Description     string       `json:"description,omitempty"      yaml:"description,omitempty"`
	Reference       string       `json:"reference,omitempty"        yaml:"reference,omitempty"`
	Status          string       `json:"status"                     yaml:"status"`
	RetryIfPossible bool         `json:"retry_if_possible"          yaml:"retry_if_possible"`
	Metadata        Metadata     `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
	Links           PaymentLinks `json:"links"                      yaml:"links"`
}

// PaymentLinks relates a payment to its mandate and downstream resources.
type PaymentLinks struct {
	Mandate          string `json:"mandate"                     yaml:"mandate"`
	Creditor         string `json:"creditor,omitempty"          yaml:"creditor,omitempty"`
	Payout           string `json:"payout,omitempty"            yaml:"payout,omitempty"`
	Subscription     string `json:"subscription,omitempty"      yaml:"subscription,omitempty"`
	InstalmentSchedule string `json:"instalment_schedule,omitempty" yaml:"instalment_schedule,omitempty"`
}

// PaymentCreateRequest represents a request to create a payment.
type PaymentCreateRequest struct {
	Amount          int          `json:"amount"                      yaml:"amount"`
	Currency        string       `json:"currency"                    yaml:"currency"`
	ChargeDate      string       `json:"charge_date,omitempty"       yaml:"charge_date,omitempty"`
	Description     string       `json:"description,omitempty"       yaml:"description,omitempty"`
	Reference       string       `json:"reference,omitempty"         yaml:"reference,omitempty"`
	AppFee          int          `json:"app_fee,omitempty"           yaml:"app_fee,omitempty"`
	RetryIfPossible bool         `json:"retry_if_possible,omitempty" yaml:"retry_if_possible,omitempty"`
	Metadata        Metadata     `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
	Links           PaymentCreateLinks `json:"links"                 yaml:"links"`
}

// PaymentCreateLinks names the mandate a payment is collected against.
type PaymentCreateLinks struct {
	Mandate string `json:"mandate" yaml:"mandate"`
}

// PaymentUpdateRequest represents a request to update a payment.
type PaymentUpdateRequest struct {
	Metadata        Metadata `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
	RetryIfPossible *bool    `json:"retry_if_possible,omitempty" yaml:"retry_if_possible,omitempty"`
}

// Refund represents a (partial) return of a collected payment.
type Refund struct {
	ID        string      `json:"id"                  yaml:"id"`
	CreatedAt time.Time   `json:"created_at"          yaml:"created_at"`
	Amount    int         `json:"amount"              yaml:"amount"`
	Currency  string      `json:"currency"            yaml:"currency"`
	Reference string      `json:"reference,omitempty" yaml:"reference,omitempty"`
	Status    string      `json:"status"              yaml:"status"`
	Metadata  Metadata    `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
	Links     RefundLinks `json:"links"               yaml:"links"`
}

// RefundLinks relates a refund to the payment or mandate it reverses.
type RefundLinks struct {
	Payment string `json:"payment,omitempty" yaml:"payment,omitempty"`
	Mandate string `json:"mandate,omitempty" yaml:"mandate,omitempty"`
}

// RefundCreateRequest represents a request to create a refund.
// TotalAmountConfirmation must equal the sum of this refund and all
// previous refunds of the payment; the API rejects mismatches.
type RefundCreateRequest struct {
	Amount                  int         `json:"amount"                              yaml:"amount"`
	TotalAmountConfirmation int         `json:"total_amount_confirmation,omitempty" yaml:"total_amount_confirmation,omitempty"`
	Reference               string      `json:"reference,omitempty"                 yaml:"reference,omitempty"`
	Metadata                Metadata    `json:"metadata,omitempty"                  yaml:"metadata,omitempty"`
	Links                   RefundLinks `json:"links"                               yaml:"links"`
}

// RefundUpdateRequest represents a request to update a refund.
type RefundUpdateRequest struct {
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Mandate represents an authorization to collect payments from a
// customer bank account.
type Mandate struct {
	ID                      string       `json:"id"                                  yaml:"id"`
	CreatedAt               time.Time    `json:"created_at"                          yaml:"created_at"`
	NextPossibleChargeDate  string       `json:"next_possible_charge_date,omitempty" yaml:"next_possible_charge_date,omitempty"`
	PaymentsRequireApproval bool         `json:"payments_require_approval"           yaml:"payments_require_approval"`
	Reference               string       `json:"reference,omitempty"                 yaml:"reference,omitempty"`
	Scheme                  string       `json:"scheme,omitempty"                    yaml:"scheme,omitempty"`
	Status                  string       `json:"status"                              yaml:"status"`
	Metadata                Metadata     `json:"metadata,omitempty"                  yaml:"metadata,omitempty"`
	Links                   MandateLinks `json:"links"                               yaml:"links"`
}

// MandateLinks relates a mandate to its bank account, creditor and customer.
type MandateLinks struct {
	CustomerBankAccount string `json:"customer_bank_account"       yaml:"customer_bank_account"`
	Creditor            string `json:"creditor,omitempty"          yaml:"creditor,omitempty"`
	Customer            string `json:"customer,omitempty"          yaml:"customer,omitempty"`
	NewMandate          string `json:"new_mandate,omitempty"       yaml:"new_mandate,omitempty"`
}

// MandateCreateRequest represents a request to create a mandate.
type MandateCreateRequest struct {
	Reference string             `json:"reference,omitempty" yaml:"reference,omitempty"`
	Scheme    string             `json:"scheme,omitempty"    yaml:"scheme,omitempty"`
	Metadata  Metadata           `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
	Links     MandateCreateLinks `json:"links"               yaml:"links"`
}

// MandateCreateLinks names the bank account (and optionally creditor)
// a mandate is set up against.
type MandateCreateLinks struct {
	CustomerBankAccount string `json:"customer_bank_account" yaml:"customer_bank_account"`
	Creditor            string `json:"creditor,omitempty"    yaml:"creditor,omitempty"`
}

// MandateUpdateRequest represents a request to update a mandate.
type MandateUpdateRequest struct {
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Subscription represents a recurring payment template against a mandate.
type Subscription struct {
	ID               string             `json:"id"                          yaml:"id"`
	CreatedAt        time.Time          `json:"created_at"                  yaml:"created_at"`
	Amount           int                `json:"amount"                      yaml:"amount"`
	Currency         string             `json:"currency"                    yaml:"currency"`
	Status           string             `json:"status"                      yaml:"status"`
	Name             string             `json:"name,omitempty"              yaml:"name,omitempty"`
	StartDate        string             `json:"start_date,omitempty"        yaml:"start_date,omitempty"`
	EndDate          string             `json:"end_date,omitempty"          yaml:"end_date,omitempty"`
	Interval         int                `json:"interval"                    yaml:"interval"`
	IntervalUnit     string             `json:"interval_unit"               yaml:"interval_unit"`
	DayOfMonth       *int               `json:"day_of_month,omitempty"      yaml:"day_of_month,omitempty"`
	Month            string             `json:"month,omitempty"             yaml:"month,omitempty"`
	PaymentReference string             `json:"payment_reference,omitempty" yaml:"payment_reference,omitempty"`
	AppFee           int                `json:"app_fee,omitempty"           yaml:"app_fee,omitempty"`
	UpcomingPayments []UpcomingPayment  `json:"upcoming_payments,omitempty" yaml:"upcoming_payments,omitempty"`
	Metadata         Metadata           `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
	Links            SubscriptionLinks  `json:"links"                       yaml:"links"`
}

// UpcomingPayment is a payment the subscription will create.
type UpcomingPayment struct {
	ChargeDate string `json:"charge_date" yaml:"charge_date"`
	Amount     int    `json:"amount"      yaml:"amount"`
}

// SubscriptionLinks relates a subscription to its mandate.
type SubscriptionLinks struct {
	Mandate string `json:"mandate" yaml:"mandate"`
}

// SubscriptionCreateRequest represents a request to create a subscription.
type SubscriptionCreateRequest struct {
	Amount           int               `json:"amount"                      yaml:"amount"`
	Currency         string            `json:"currency"                    yaml:"currency"`
	Name             string            `json:"name,omitempty"              yaml:"name,omitempty"`
	StartDate        string            `json:"start_date,omitempty"        yaml:"start_date,omitempty"`
	EndDate          string            `json:"end_date,omitempty"          yaml:"end_date,omitempty"`
	Interval         int               `json:"interval,omitempty"          yaml:"interval,omitempty"`
	IntervalUnit     string            `json:"interval_unit"               yaml:"interval_unit"`
	DayOfMonth       *int              `json:"day_of_month,omitempty"      yaml:"day_of_month,omitempty"`
	Month            string            `json:"month,omitempty"             yaml:"month,omitempty"`
	Count            int               `json:"count,omitempty"             yaml:"count,omitempty"`
	PaymentReference string            `json:"payment_reference,omitempty" yaml:"payment_reference,omitempty"`
	AppFee           int               `json:"app_fee,omitempty"           yaml:"app_fee,omitempty"`
	Metadata         Metadata          `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
	Links            SubscriptionLinks `json:"links"                       yaml:"links"`
}

// SubscriptionUpdateRequest represents a request to update a subscription.
type SubscriptionUpdateRequest struct {
	Amount           *int     `json:"amount,omitempty"            yaml:"amount,omitempty"`
	Name             *string  `json:"name,omitempty"              yaml:"name,omitempty"`
	PaymentReference *string  `json:"payment_reference,omitempty" yaml:"payment_reference,omitempty"`
	AppFee           *int     `json:"app_fee,omitempty"           yaml:"app_fee,omitempty"`
	Metadata         Metadata `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
}

// SubscriptionPauseRequest represents a request to pause a subscription.
type SubscriptionPauseRequest struct {
	PauseCycles int      `json:"pause_cycles,omitempty" yaml:"pause_cycles,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"     yaml:"metadata,omitempty"`
}

// Payout represents a transfer of collected funds to a creditor.
type Payout struct {
	ID           string      `json:"id"                      yaml:"id"`
	CreatedAt    time.Time   `json:"created_at"              yaml:"created_at"`
	Amount       int         `json:"amount"                  yaml:"amount"`
	ArrivalDate  string      `json:"arrival_date,omitempty"  yaml:"arrival_date,omitempty"`
	Currency     string      `json:"currency"                yaml:"currency"`
	DeductedFees int         `json:"deducted_fees"           yaml:"deducted_fees"`
	PayoutType   string      `json:"payout_type,omitempty"   yaml:"payout_type,omitempty"`
	Reference    string      `json:"reference,omitempty"     yaml:"reference,omitempty"`
	Status       string      `json:"status"                  yaml:"status"`
	Links        PayoutLinks `json:"links"                   yaml:"links"`
}

// PayoutLinks relates a payout to the creditor and receiving account.
type PayoutLinks struct {
	Creditor            string `json:"creditor"              yaml:"creditor"`
	CreditorBankAccount string `json:"creditor_bank_account" yaml:"creditor_bank_account"`
}

// Creditor represents the organization collecting payments.
type Creditor struct {
	ID                 string             `json:"id"                            yaml:"id"`
	CreatedAt          time.Time          `json:"created_at"                    yaml:"created_at"`
	Name               string             `json:"name"                          yaml:"name"`
	AddressLine1       string             `json:"address_line1,omitempty"       yaml:"address_line1,omitempty"`
	AddressLine2       string             `json:"address_line2,omitempty"       yaml:"address_line2,omitempty"`
	City               string             `json:"city,omitempty"                yaml:"city,omitempty"`
	Region             string             `json:"region,omitempty"              yaml:"region,omitempty"`
	PostalCode         string             `json:"postal_code,omitempty"         yaml:"postal_code,omitempty"`
	CountryCode        string             `json:"country_code,omitempty"        yaml:"country_code,omitempty"`
	VerificationStatus string             `json:"verification_status,omitempty" yaml:"verification_status,omitempty"`
	SchemeIdentifiers  []SchemeIdentifier `json:"scheme_identifiers,omitempty"  yaml:"scheme_identifiers,omitempty"`
}

// SchemeIdentifier is a creditor's identity within a payment scheme.
type SchemeIdentifier struct {
	Name      string `json:"name"      yaml:"name"`
	Scheme    string `json:"scheme"    yaml:"scheme"`
	Reference string `json:"reference" yaml:"reference"`
}

// CreditorUpdateRequest represents a request to update a creditor.
type CreditorUpdateRequest struct {
	Name         *string `json:"name,omitempty"          yaml:"name,omitempty"`
	AddressLine1 *string `json:"address_line1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"          yaml:"city,omitempty"`
	Region       *string `json:"region,omitempty"        yaml:"region,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"   yaml:"postal_code,omitempty"`
	CountryCode  *string `json:"country_code,omitempty"  yaml:"country_code,omitempty"`
}

// Event records something that happened to a resource (payment failed,
// mandate cancelled, and so on). Events are the webhook payload unit.
type Event struct {
	ID           string       `json:"id"                 yaml:"id"`
	CreatedAt    time.Time    `json:"created_at"         yaml:"created_at"`
	ResourceType string       `json:"resource_type"      yaml:"resource_type"`
	Action       string       `json:"action"             yaml:"action"`
	Details      EventDetails `json:"details"            yaml:"details"`
	Metadata     Metadata     `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Links        EventLinks   `json:"links"              yaml:"links"`
}

// EventDetails describes what caused an event.
type EventDetails struct {
	Origin      string `json:"origin,omitempty"       yaml:"origin,omitempty"`
	Cause       string `json:"cause,omitempty"        yaml:"cause,omitempty"`
	Description string `json:"description,omitempty"  yaml:"description,omitempty"`
	Scheme      string `json:"scheme,omitempty"       yaml:"scheme,omitempty"`
	ReasonCode  string `json:"reason_code,omitempty"  yaml:"reason_code,omitempty"`
}

// EventLinks names the resource an event concerns.
type EventLinks struct {
	Payment             string `json:"payment,omitempty"               yaml:"payment,omitempty"`
	Mandate             string `json:"mandate,omitempty"               yaml:"mandate,omitempty"`
	Refund              string `json:"refund,omitempty"                yaml:"refund,omitempty"`
	Subscription        string `json:"subscription,omitempty"          yaml:"subscription,omitempty"`
	Payout              string `json:"payout,omitempty"                yaml:"payout,omitempty"`
	ParentEvent         string `json:"parent_event,omitempty"          yaml:"parent_event,omitempty"`
	PreviousCustomerBankAccount string `json:"previous_customer_bank_account,omitempty" yaml:"previous_customer_bank_account,omitempty"`
	NewCustomerBankAccount      string `json:"new_customer_bank_account,omitempty"      yaml:"new_customer_bank_account,omitempty"`
}
