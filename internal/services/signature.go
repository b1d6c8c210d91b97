package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diewo77/go-contracts/internal/models"
)

// SignatureService collects signature requests per contract and advances the
// contract status as signatures arrive.
type SignatureService struct {
	DB *gorm.DB
	// Senders maps external providers to their clients. The internal
	// provider never appears here; it is handled locally.
	Senders map[models.SignatureProvider]SignatureSender
}

func NewSignatureService(db *gorm.DB, senders map[models.SignatureProvider]SignatureSender) *SignatureService {
	if senders == nil {
		senders = map[models.SignatureProvider]SignatureSender{}
	}
	return &SignatureService{DB: db, Senders: senders}
}

// RequestSignature opens a signature request for one party. External
// providers are called synchronously for a reference id; a provider failure
// leaves the request pending rather than failing the call. A draft contract
// advances to pending_signature.
func (s *SignatureService) RequestSignature(ctx context.Context, contractID string, role models.SignerRole, email string, provider models.SignatureProvider) (*models.SignatureRequest, error) {
	var contract models.GeneratedContract
	err := s.DB.First(&contract, "id = ?", contractID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}

	name := contract.Metadata.EmployeeName
	if role == models.SignerEmployer {
		name = contract.Metadata.EmployerRepresentative
		if name == "" {
			name = contract.Metadata.EmployerName
		}
	}

	req := &models.SignatureRequest{
		ID:         uuid.NewString(),
		ContractID: contract.ID,
		Role:       role,
		Name:       name,
		Email:      email,
		Provider:   provider,
		Status:     models.SignatureStatusPending,
	}

	switch provider {
	case models.ProviderInternal:
		req.SigningURL = fmt.Sprintf("/sign/%s/%s", contract.ID, req.ID)
	default:
		sender, ok := s.Senders[provider]
		if !ok {
			return nil, &InputError{Field: "provider", Reason: fmt.Sprintf("unknown signature provider %q", provider)}
		}
		ref, err := sender.Send(ctx, contract.BodyHTML, email)
		if err != nil {
			// The request stays pending and can be re-sent; the
			// signature flow is not aborted by a provider hiccup.
			log.Printf("signature provider %s send failed for contract %s: %v", provider, contract.ID, err)
		} else {
			req.ExternalRef = ref
			req.Status = models.SignatureStatusSent
		}
	}

	if err := s.DB.Create(req).Error; err != nil {
		return nil, err
	}

	if contract.Status == models.ContractStatusDraft {
		if err := s.DB.Model(&contract).Update("status", models.ContractStatusPendingSignature).Error; err != nil {
			return nil, err
		}
	}
	return req, nil
}

// RecordSignature stores a signature artifact on a request. When every
// request on the contract is signed and at least two requests exist, the
// contract itself becomes signed: fewer than two recorded signatures cannot
// constitute a mutually executed contract.
func (s *SignatureService) RecordSignature(contractID, requestID, signatureData string) (*models.GeneratedContract, error) {
	var contract models.GeneratedContract
	err := s.DB.Preload("Signatures").First(&contract, "id = ?", contractID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}

	var req *models.SignatureRequest
	for i := range contract.Signatures {
		if contract.Signatures[i].ID == requestID {
			req = &contract.Signatures[i]
			break
		}
	}
	if req == nil {
		return nil, ErrSignatureNotFound
	}

	now := time.Now()
	req.Status = models.SignatureStatusSigned
	req.SignatureData = signatureData
	req.SignedAt = &now
	if err := s.DB.Save(req).Error; err != nil {
		return nil, err
	}

	allSigned := len(contract.Signatures) >= 2
	for i := range contract.Signatures {
		if !contract.Signatures[i].IsSigned() {
			allSigned = false
			break
		}
	}
	if allSigned {
		contract.Status = models.ContractStatusSigned
		contract.SignedAt = &now
		if err := s.DB.Model(&contract).Updates(map[string]any{
			"status":    contract.Status,
			"signed_at": contract.SignedAt,
		}).Error; err != nil {
			return nil, err
		}
	}
	return &contract, nil
}
