package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/constants"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
)

// IssueOTP generates a completion challenge for a delivered trip. A fallback
// code is always stored on the trip (replacing any earlier one); the external
// provider is asked for a verificationId when a customer phone number is
// available. Provider failure degrades issuance to local-only.
func (uc *tripUC) IssueOTP(ctx context.Context, tripID string, req models.OTPIssueRequest) (*models.OTPIssueResponse, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tid)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDelivered {
		return nil, apperr.InvalidTransition(string(trip.Status), "issue_otp")
	}

	code, err := generateCode(uc.cfg.OTP.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	ok, err := uc.tripRepo.SetOTP(ctx, tid, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The trip left delivered between the read and the write
		trip, err = uc.tripRepo.GetTrip(ctx, tid)
		if err != nil {
			return nil, err
		}
		return nil, apperr.InvalidTransition(string(trip.Status), "issue_otp")
	}

	resp := &models.OTPIssueResponse{LocalCodeIssued: true}

	if req.PhoneNumber != "" {
		callCtx, cancel := context.WithTimeout(ctx, uc.otpTimeout())
		defer cancel()

		verificationID, err := uc.otpProvider.SendOTP(callCtx, req.PhoneNumber)
		if err != nil {
			logger.Warn("External OTP send failed, local fallback only",
				logger.String("trip_id", tid.String()),
				logger.Err(err))
		} else {
			resp.VerificationID = verificationID
		}
	}

	logger.Info("OTP challenge issued",
		logger.String("trip_id", tid.String()),
		logger.Bool("external", resp.VerificationID != ""))
	return resp, nil
}

// VerifyOTP checks both verification paths and completes the trip when
// either succeeds. The external call happens before the trip lock is taken;
// only the resulting transition runs under it.
func (uc *tripUC) VerifyOTP(ctx context.Context, tripID string, req models.OTPVerifyRequest) (*models.OTPVerifyResponse, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	if req.Code == "" {
		return nil, apperr.Validation("otp code is required")
	}

	// External path. Timeouts and provider errors contribute false; they
	// never abort the overall check.
	externalValid := false
	if req.VerificationID != "" {
		callCtx, cancel := context.WithTimeout(ctx, uc.otpTimeout())
		valid, err := uc.otpProvider.VerifyOTP(callCtx, req.VerificationID, req.Code)
		cancel()
		if err != nil {
			logger.Warn("External OTP verify failed, evaluating local path only",
				logger.String("trip_id", tid.String()),
				logger.Err(err))
		} else {
			externalValid = valid
		}
	}

	unlock := uc.locks.Lock(tid.String())
	defer unlock()

	trip, err := uc.tripRepo.GetTrip(ctx, tid)
	if err != nil {
		return nil, err
	}

	// Local fallback path: dispatcher-readable code stored at issuance
	localValid := trip.OTP != nil && *trip.OTP == req.Code

	if !externalValid && !localValid {
		return nil, apperr.InvalidOTP()
	}

	finalDistance, err := uc.recomputeDistance(ctx, tid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip, err = uc.applyTransition(ctx, tid, eventComplete,
		[]models.TripStatus{models.TripStatusDelivered},
		models.TripStatusCompleted,
		models.TripSideEffects{
			EndTime:  &now,
			Distance: &finalDistance,
			ClearOTP: true,
		})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.TopicTripCompleted, trip)

	logger.Info("Trip completed",
		logger.String("trip_id", tid.String()),
		logger.Bool("external_path", externalValid),
		logger.Bool("local_path", localValid),
		logger.Float64("final_distance_km", finalDistance))
	return &models.OTPVerifyResponse{Completed: true}, nil
}

func (uc *tripUC) otpTimeout() time.Duration {
	seconds := uc.cfg.OTP.TimeoutSeconds
	if seconds <= 0 {
		seconds = 5
	}
	return time.Duration(seconds) * time.Second
}

// generateCode returns a random numeric code of the given length
func generateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
