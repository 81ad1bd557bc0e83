package item

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle     = errors.New("item title cannot be empty")
	ErrNegativePrice  = errors.New("price per day cannot be negative")
	ErrUnknownListing = errors.New("unknown listing")
)

// Item is the rentable listing. Listings are managed by a separate service;
// this core only reads price/ownership and writes back cached rating fields.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	pricePerDay int64
}

func NewItem(id, ownerID uuid.UUID, title string, pricePerDay int64) (*Item, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if pricePerDay < 0 {
		return nil, ErrNegativePrice
	}
	return &Item{id: id, ownerID: ownerID, title: title, pricePerDay: pricePerDay}, nil
}

func (i *Item) ID() uuid.UUID      { return i.id }
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }
func (i *Item) Title() string      { return i.title }
func (i *Item) PricePerDay() int64 { return i.pricePerDay }

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}
