package models

import "time"

// SignerRole identifies which party a signature request addresses.
type SignerRole string

const (
	SignerEmployer SignerRole = "employer"
	SignerEmployee SignerRole = "employee"
)

// SignatureProvider selects the e-signature collaborator for a request.
type SignatureProvider string

const (
	ProviderDocuSign SignatureProvider = "docusign"
	ProviderCertSign SignatureProvider = "certsign"
	ProviderInternal SignatureProvider = "internal"
)

// SignatureStatus tracks one request through the provider flow.
type SignatureStatus string

const (
	SignatureStatusPending  SignatureStatus = "pending"
	SignatureStatusSent     SignatureStatus = "sent"
	SignatureStatusViewed   SignatureStatus = "viewed"
	SignatureStatusSigned   SignatureStatus = "signed"
	SignatureStatusDeclined SignatureStatus = "declined"
)

// SignatureRequest is one party's pending or completed signature on a
// contract.
type SignatureRequest struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ContractID string    `gorm:"size:36;index;not null" json:"contract_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Role  SignerRole `gorm:"size:20;not null" json:"role"`
	Name  string     `gorm:"size:255" json:"name"`
	Email string     `gorm:"size:255;not null" json:"email"`

	Provider SignatureProvider `gorm:"size:20;not null" json:"provider"`
	Status   SignatureStatus   `gorm:"size:20;default:'pending'" json:"status"`

	// SigningURL is set for the internal provider; ExternalRef for external ones
	SigningURL  string `gorm:"size:500" json:"signing_url,omitempty"`
	ExternalRef string `gorm:"size:255" json:"external_ref,omitempty"`

	SignatureData string     `gorm:"type:text" json:"signature_data,omitempty"`
	SignedAt      *time.Time `json:"signed_at,omitempty"`
}

// IsSigned returns true once the signature artifact has been recorded.
func (s *SignatureRequest) IsSigned() bool {
	return s.Status == SignatureStatusSigned
}
