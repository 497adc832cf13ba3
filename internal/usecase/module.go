package usecase

import (
	"go.uber.org/fx"

	"github.com/rmehra/stitchbook/internal/config"
	"github.com/rmehra/stitchbook/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(receipts repository.ReceiptRepository, cfg *config.Config) *ReceiptUseCase {
		return NewReceiptUseCase(receipts, cfg.ListLimit)
	},
)
