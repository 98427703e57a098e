package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetOrCreateContactList = `
INSERT INTO contact_lists (restaurant_name)
VALUES ($1)
ON CONFLICT (restaurant_name) DO UPDATE SET restaurant_name = EXCLUDED.restaurant_name
RETURNING id, restaurant_name, created_at
`

// GetOrCreateContactList returns the restaurant's contact list, creating it
// on first use. The conflict target makes concurrent first uses converge on
// one list.
func (s *Store) GetOrCreateContactList(ctx context.Context, restaurantName string) (ContactList, error) {
	var list ContactList
	err := s.db.GetContext(ctx, &list, sqlGetOrCreateContactList, restaurantName)
	if err != nil {
		s.logger.Error(ctx, "failed to get or create contact list", err)
		return ContactList{}, fmt.Errorf("failed to get or create contact list: %w", err)
	}
	return list, nil
}

const sqlGetContactListByName = `
SELECT id, restaurant_name, created_at
FROM contact_lists
WHERE restaurant_name = $1
`

// GetContactListByName retrieves a contact list by restaurant name
func (s *Store) GetContactListByName(ctx context.Context, restaurantName string) (ContactList, error) {
	var list ContactList
	err := s.db.GetContext(ctx, &list, sqlGetContactListByName, restaurantName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ContactList{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact list by name", err)
		return ContactList{}, fmt.Errorf("failed to get contact list by name: %w", err)
	}
	return list, nil
}

// MergeContactReviewParams represents parameters for merging a review into a contact
type MergeContactReviewParams struct {
	ListID  uuid.UUID
	Email   string
	Summary ReviewSummary
}

const sqlMergeContactReview = `
INSERT INTO customer_contacts (list_id, email, metadata)
VALUES ($1, $2, jsonb_build_object('reviews', jsonb_build_object($3::text, $4::jsonb), 'tips', '{}'::jsonb))
ON CONFLICT (list_id, email) DO UPDATE SET
    metadata = jsonb_set(
        customer_contacts.metadata,
        '{reviews}',
        COALESCE(customer_contacts.metadata->'reviews', '{}'::jsonb) || jsonb_build_object($3::text, $4::jsonb)
    ),
    updated_at = now()
RETURNING id, list_id, email, metadata, created_at, updated_at
`

// MergeContactReview merges a review summary into the contact's metadata.
// The union happens inside the statement, keyed by review id, so an existing
// contact keeps every prior entry under concurrent merges.
func (s *Store) MergeContactReview(ctx context.Context, params MergeContactReviewParams) (CustomerContact, error) {
	summaryJSON, err := json.Marshal(params.Summary)
	if err != nil {
		return CustomerContact{}, fmt.Errorf("failed to marshal review summary: %w", err)
	}

	var contact CustomerContact
	err = s.db.GetContext(ctx, &contact, sqlMergeContactReview,
		params.ListID,
		params.Email,
		params.Summary.ReviewID,
		string(summaryJSON))
	if err != nil {
		s.logger.Error(ctx, "failed to merge contact review", err)
		return CustomerContact{}, fmt.Errorf("failed to merge contact review: %w", err)
	}
	return contact, nil
}

// MergeContactTipParams represents parameters for merging a tip voucher into a contact
type MergeContactTipParams struct {
	ListID  uuid.UUID
	Email   string
	Summary TipVoucherSummary
}

const sqlMergeContactTip = `
INSERT INTO customer_contacts (list_id, email, metadata)
VALUES ($1, $2, jsonb_build_object('reviews', '{}'::jsonb, 'tips', jsonb_build_object($3::text, $4::jsonb)))
ON CONFLICT (list_id, email) DO UPDATE SET
    metadata = jsonb_set(
        customer_contacts.metadata,
        '{tips}',
        COALESCE(customer_contacts.metadata->'tips', '{}'::jsonb) || jsonb_build_object($3::text, $4::jsonb)
    ),
    updated_at = now()
RETURNING id, list_id, email, metadata, created_at, updated_at
`

// MergeContactTip merges a tip voucher summary into the contact's metadata,
// keyed by voucher code
func (s *Store) MergeContactTip(ctx context.Context, params MergeContactTipParams) (CustomerContact, error) {
	summaryJSON, err := json.Marshal(params.Summary)
	if err != nil {
		return CustomerContact{}, fmt.Errorf("failed to marshal tip voucher summary: %w", err)
	}

	var contact CustomerContact
	err = s.db.GetContext(ctx, &contact, sqlMergeContactTip,
		params.ListID,
		params.Email,
		params.Summary.VoucherCode,
		string(summaryJSON))
	if err != nil {
		s.logger.Error(ctx, "failed to merge contact tip", err)
		return CustomerContact{}, fmt.Errorf("failed to merge contact tip: %w", err)
	}
	return contact, nil
}

const sqlGetContactByEmail = `
SELECT id, list_id, email, metadata, created_at, updated_at
FROM customer_contacts
WHERE list_id = $1 AND email = $2
`

// GetContactByEmail retrieves a single contact on a list
func (s *Store) GetContactByEmail(ctx context.Context, listID uuid.UUID, email string) (CustomerContact, error) {
	var contact CustomerContact
	err := s.db.GetContext(ctx, &contact, sqlGetContactByEmail, listID, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerContact{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact by email", err)
		return CustomerContact{}, fmt.Errorf("failed to get contact by email: %w", err)
	}
	return contact, nil
}

const sqlGetContactsByList = `
SELECT id, list_id, email, metadata, created_at, updated_at
FROM customer_contacts
WHERE list_id = $1
ORDER BY created_at DESC
`

// GetContactsByList retrieves every contact on a restaurant's list
func (s *Store) GetContactsByList(ctx context.Context, listID uuid.UUID) ([]CustomerContact, error) {
	var contacts []CustomerContact
	err := s.db.SelectContext(ctx, &contacts, sqlGetContactsByList, listID)
	if err != nil {
		s.logger.Error(ctx, "failed to get contacts by list", err)
		return nil, fmt.Errorf("failed to get contacts by list: %w", err)
	}
	return contacts, nil
}
