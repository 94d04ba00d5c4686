package entity

// Attempt records one issuance request for rate accounting only. Append-only,
// no uniqueness, no eviction.
type Attempt struct {
	Base

	IPHash string `gorm:"column:ip_hash;index;size:64;not null"`
}
