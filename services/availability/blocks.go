package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	blockRepo "casaherenia/database/repository/block"
	"casaherenia/models"
)

var (
	ErrInvalidUnit       = errors.New("unknown unit")
	ErrInvalidBlockDate  = errors.New("dates must be YYYY-MM-DD")
	ErrInvalidBlockRange = errors.New("end date must be on or after start date")
)

// ManualBlockService carries the admin calendar operations: list, create,
// delete. Ranges are validated here, before any store write; a stored
// inverted range would silently expand to nothing.
type ManualBlockService struct {
	Repo   blockRepo.BlockRepository
	Logger *zap.Logger
}

// List returns the blocks of one unit ordered by start date.
func (s *ManualBlockService) List(ctx context.Context, unit models.Unit) ([]models.ManualBlock, error) {
	if !unit.Valid() {
		return nil, ErrInvalidUnit
	}
	blocks, err := s.Repo.ByUnit(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("list manual blocks: %w", err)
	}
	return blocks, nil
}

// Create validates and stores a new block. Both dates are inclusive.
func (s *ManualBlockService) Create(ctx context.Context, unit models.Unit, startDate, endDate, reason string) (string, error) {
	if !unit.Valid() {
		return "", ErrInvalidUnit
	}
	start, err := ParseDay(startDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlockDate, startDate)
	}
	end, err := ParseDay(endDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlockDate, endDate)
	}
	if end.Before(start) {
		return "", ErrInvalidBlockRange
	}

	id, err := s.Repo.Create(ctx, models.ManualBlock{
		RoomID:    unit,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    strings.TrimSpace(reason),
	})
	if err != nil {
		return "", fmt.Errorf("create manual block: %w", err)
	}

	s.Logger.Info("manual block created",
		zap.String("unit", string(unit)),
		zap.String("start", startDate),
		zap.String("end", endDate))
	return id, nil
}

// Delete removes a block by ID.
func (s *ManualBlockService) Delete(ctx context.Context, blockID string) error {
	if err := s.Repo.Delete(ctx, blockID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return err
		}
		return fmt.Errorf("delete manual block: %w", err)
	}
	return nil
}
