package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/internal/model"
	"github.com/nordicmagic/backend/internal/repository"
	"github.com/nordicmagic/backend/pkg/crypto"
	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type OracleDomain interface {
	Consult(context.Context, *model.ConsultOracleRequest) (*model.ConsultOracleResponse, error)
}

type oracleDomain struct {
	claimRepo   repository.ClaimRepository
	attemptRepo repository.AttemptRepository

	// roll returns a uniform value in [0,100). Injected so that draw
	// behavior is reproducible in tests.
	roll func() float64
}

func NewOracleDomain(
	claimRepo repository.ClaimRepository,
	attemptRepo repository.AttemptRepository,
	roll func() float64,
) *oracleDomain {
	if roll == nil {
		roll = func() float64 { return crypto.RandFloat64() * 100 }
	}

	return &oracleDomain{
		claimRepo:   claimRepo,
		attemptRepo: attemptRepo,
		roll:        roll,
	}
}

// maxFingerprintLen bounds the client-sent identity at a SHA-256 hex digest.
const maxFingerprintLen = 64

func (d *oracleDomain) Consult(
	ctx context.Context, req *model.ConsultOracleRequest,
) (*model.ConsultOracleResponse, error) {
	if req.FingerprintHash == "" || len(req.FingerprintHash) > maxFingerprintLen || req.Rune == "" {
		return nil, errorx.New(errorx.BadRequest, "Solicitud inválida")
	}

	cfg := xcontext.Configs(ctx).Oracle
	ipHash := crypto.SHA256Hex([]byte(clientIP(ctx)))

	existing, err := d.claimRepo.GetByFingerprint(ctx, req.FingerprintHash)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get claim by fingerprint: %v", err)
		return nil, errInternal
	}

	// Counting happens before the in-flight attempt is recorded, so a call
	// never counts against itself.
	since := time.Now().Add(-cfg.AttemptWindow.Duration)
	count, err := d.attemptRepo.CountByIPSince(ctx, ipHash, since)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count attempts: %v", err)
		return nil, errInternal
	}

	// Every consult is accounted, including repeat clicks that short-circuit
	// on an existing claim. Recording is fire-and-persist: a failure is
	// logged but never blocks issuance.
	d.recordAttempt(ctx, ipHash)

	if existing != nil {
		return &model.ConsultOracleResponse{
			Message:        "Este oráculo ya te ha revelado tu destino.",
			Code:           existing.DiscountCode,
			Benefit:        string(existing.Benefit),
			AlreadyClaimed: true,
		}, nil
	}

	luck := luckFor(req.Rune)
	if count > int64(cfg.SuspicionThreshold) {
		luck *= cfg.SuspicionDamping
	}

	claim := &entity.Claim{
		Base:            entity.Base{ID: uuid.NewString()},
		FingerprintHash: req.FingerprintHash,
		IPHash:          ipHash,
		Rune:            req.Rune,
		DiscountCode:    cfg.CodePrefix + crypto.RandHex(3),
		Benefit:         pickBenefit(luck, d.roll()),
		Status:          entity.ClaimActive,
	}

	// No retry on a code collision; the unique index is the backstop and the
	// request fails. Concurrent calls from one identity are arbitrated the
	// same way.
	if err := d.claimRepo.Create(ctx, claim); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create claim: %v", err)
		return nil, errInternal
	}

	return &model.ConsultOracleResponse{
		Message:        "El destino ha hablado.",
		Code:           claim.DiscountCode,
		Benefit:        string(claim.Benefit),
		AlreadyClaimed: false,
	}, nil
}

func (d *oracleDomain) recordAttempt(ctx context.Context, ipHash string) {
	attempt := &entity.Attempt{
		Base:   entity.Base{ID: uuid.NewString()},
		IPHash: ipHash,
	}

	if err := d.attemptRepo.Create(ctx, attempt); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot record attempt: %v", err)
	}
}
