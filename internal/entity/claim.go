package entity

import "github.com/nordicmagic/backend/pkg/enum"

type ClaimStatus string

var (
	ClaimActive = enum.New(ClaimStatus("active"))
	ClaimUsed   = enum.New(ClaimStatus("used"))
)

type BenefitTier string

// Tiers register best first; their registration order is their value order.
var (
	BenefitFreeSpell = enum.New(BenefitTier("Hechizo Gratis"))
	Benefit25        = enum.New(BenefitTier("25%"))
	Benefit20        = enum.New(BenefitTier("20%"))
	Benefit15        = enum.New(BenefitTier("15%"))
	Benefit10        = enum.New(BenefitTier("10%"))
	Benefit5         = enum.New(BenefitTier("5%"))
)

// BetterThan reports whether b is a strictly more valuable tier than other.
// Unregistered values never beat a member.
func (b BenefitTier) BetterThan(other BenefitTier) bool {
	return enum.Rank(b) < enum.Rank(other)
}

// Valid reports whether b is a member of the closed tier set.
func (b BenefitTier) Valid() bool {
	return enum.Valid(b)
}

// Claim records one reward issued to one visitor identity. Rows are never
// deleted; Status is the only field that may change after creation.
type Claim struct {
	Base

	FingerprintHash string      `gorm:"uniqueIndex;size:256;not null"`
	IPHash          string      `gorm:"column:ip_hash;size:64;not null"`
	Rune            string      `gorm:"size:32;not null"`
	DiscountCode    string      `gorm:"uniqueIndex;size:32;not null"`
	Benefit         BenefitTier `gorm:"size:32;not null"`
	Status          ClaimStatus `gorm:"size:16;not null;default:active"`
}
