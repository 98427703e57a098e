package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// ReviewStatus represents the lifecycle status of a persisted review
type ReviewStatus string

const (
	ReviewStatusSubmitted ReviewStatus = "submitted"
	ReviewStatusRedeemed  ReviewStatus = "redeemed"
	ReviewStatusExpired   ReviewStatus = "expired"
)

// VoucherStatus represents the redemption status of a tip voucher
type VoucherStatus string

const (
	VoucherStatusAvailable VoucherStatus = "available"
	VoucherStatusUsed      VoucherStatus = "used"
)

// RewardKind distinguishes how a reward code was earned
type RewardKind string

const (
	RewardKindReview  RewardKind = "review"
	RewardKindMystery RewardKind = "mystery"
)

// ReceiptItem is a single line item extracted from a receipt image
type ReceiptItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ReceiptData is the structured result of receipt analysis. Numeric fields
// are validated as numbers at the analysis boundary, never coerced from strings.
type ReceiptData struct {
	TotalAmount float64       `json:"total_amount"`
	Items       []ReceiptItem `json:"items"`
}

// ToJSONB converts receipt data into a JSONB column value
func (r ReceiptData) ToJSONB() (JSONB, error) {
	bytes, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ReviewSummary is the per-review entry merged into a contact's metadata
type ReviewSummary struct {
	ReviewID       string    `json:"review_id"`
	InitialText    string    `json:"initial_text"`
	EnhancedText   *string   `json:"enhanced_text,omitempty"`
	ServerName     *string   `json:"server_name,omitempty"`
	RewardCode     string    `json:"reward_code"`
	ReceiptTotal   *float64  `json:"receipt_total,omitempty"`
	CompletedSteps []string  `json:"completed_steps"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// TipVoucherSummary is the per-voucher entry merged into a contact's metadata
type TipVoucherSummary struct {
	VoucherCode   string    `json:"voucher_code"`
	TipAmount     float64   `json:"tip_amount"`
	VoucherAmount float64   `json:"voucher_amount"`
	ServerName    string    `json:"server_name"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// ContactMetadata holds the additive maps merged into a customer contact.
// Merges are performed in SQL as a jsonb union so concurrent writers cannot
// clobber each other's entries; this type is the read-side schema.
type ContactMetadata struct {
	Reviews map[string]ReviewSummary     `json:"reviews"`
	Tips    map[string]TipVoucherSummary `json:"tips"`
}

// Value implements the driver.Valuer interface for ContactMetadata
func (m ContactMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for ContactMetadata
func (m *ContactMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = ContactMetadata{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for ContactMetadata")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*m = ContactMetadata{}
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// RewardCode is a unique redeemable code issued for a finalized review or
// a referral milestone
type RewardCode struct {
	Code         string     `db:"code" json:"code"`
	ReviewPageID string     `db:"review_page_id" json:"review_page_id"`
	Kind         RewardKind `db:"kind" json:"kind"`
	IssuedAt     time.Time  `db:"issued_at" json:"issued_at"`
}

// Review is a persisted customer review
type Review struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	UniqueCode     string       `db:"unique_code" json:"unique_code"`
	ReviewPageID   string       `db:"review_page_id" json:"review_page_id"`
	BusinessName   string       `db:"business_name" json:"business_name"`
	ServerName     *string      `db:"server_name" json:"server_name,omitempty"`
	ReviewText     string       `db:"review_text" json:"review_text"`
	RefinedReview  *string      `db:"refined_review" json:"refined_review,omitempty"`
	ReceiptData    JSONB        `db:"receipt_data" json:"receipt_data,omitempty"`
	Status         ReviewStatus `db:"status" json:"status"`
	StepTimestamps JSONB        `db:"step_timestamps" json:"step_timestamps"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// ContactList is a restaurant-scoped email list
type ContactList struct {
	ID             uuid.UUID `db:"id" json:"id"`
	RestaurantName string    `db:"restaurant_name" json:"restaurant_name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CustomerContact is one customer on a restaurant's contact list
type CustomerContact struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	ListID    uuid.UUID       `db:"list_id" json:"list_id"`
	Email     string          `db:"email" json:"email"`
	Metadata  ContactMetadata `db:"metadata" json:"metadata"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// TipVoucher is a future-visit credit issued against a tip
type TipVoucher struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	ListID        uuid.UUID     `db:"list_id" json:"list_id"`
	VoucherCode   string        `db:"voucher_code" json:"voucher_code"`
	TipAmount     float64       `db:"tip_amount" json:"tip_amount"`
	VoucherAmount float64       `db:"voucher_amount" json:"voucher_amount"`
	ServerName    string        `db:"server_name" json:"server_name"`
	CustomerEmail *string       `db:"customer_email" json:"customer_email,omitempty"`
	ExpiresAt     time.Time     `db:"expires_at" json:"expires_at"`
	Status        VoucherStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// ReferralCode is a referrer's code together with its star ledger
type ReferralCode struct {
	Code           string    `db:"code" json:"code"`
	ReferrerName   string    `db:"referrer_name" json:"referrer_name"`
	ReferrerEmail  string    `db:"referrer_email" json:"referrer_email"`
	RestaurantName string    `db:"restaurant_name" json:"restaurant_name"`
	TotalReferrals int       `db:"total_referrals" json:"total_referrals"`
	StarsCount     int       `db:"stars_count" json:"stars_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// PageAnalytics holds the live counters for one review page
type PageAnalytics struct {
	ReviewPageID        string    `db:"review_page_id" json:"review_page_id"`
	PageViews           int64     `db:"page_views" json:"page_views"`
	QRScans             int64     `db:"qr_scans" json:"qr_scans"`
	LinkClicks          int64     `db:"link_clicks" json:"link_clicks"`
	ReviewSubmissions   int64     `db:"review_submissions" json:"review_submissions"`
	ReceiptsUploaded    int64     `db:"receipts_uploaded" json:"receipts_uploaded"`
	RefinedReviewsCount int64     `db:"refined_reviews_count" json:"refined_reviews_count"`
	AvgReviewLength     float64   `db:"avg_review_length" json:"avg_review_length"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}
