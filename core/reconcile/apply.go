package reconcile

import (
	"context"

	"go.uber.org/zap"
)

// DeviceWriter is the subset of the Netshot client needed to apply a plan.
type DeviceWriter interface {
	RegisterDevice(ctx context.Context, ip string, domainID int) error
	DisableDevice(ctx context.Context, ip string) error
}

// Apply executes the corrective actions of a plan against Netshot. Each
// action is attempted exactly once; a failure is logged as a warning and
// the batch moves on to the next IP. With DryRun set, nothing is invoked
// and the result is empty.
func Apply(ctx context.Context, writer DeviceWriter, plan *Plan, opts Options, logger *zap.Logger) Result {
	var result Result

	if opts.DryRun {
		logger.Info("check mode: no change pushed to netshot",
			zap.Int("would_register", len(plan.ToRegister)),
			zap.Int("would_disable", len(plan.ToDisable)))
		return result
	}

	for _, ip := range plan.ToRegister {
		if err := writer.RegisterDevice(ctx, ip, opts.DomainID); err != nil {
			logger.Warn("registration failure",
				zap.String("ip", ip),
				zap.Error(err))
			result.Failed++
			continue
		}
		logger.Info("device registered",
			zap.String("ip", ip),
			zap.Int("domain_id", opts.DomainID))
		result.Registered++
	}

	for _, ip := range plan.ToDisable {
		if err := writer.DisableDevice(ctx, ip); err != nil {
			logger.Warn("disable failure",
				zap.String("ip", ip),
				zap.Error(err))
			result.Failed++
			continue
		}
		logger.Info("device disabled", zap.String("ip", ip))
		result.Disabled++
	}

	return result
}
