package cmd

import (
	"context"
	"fmt"

	"netsync/core/config"
	"netsync/core/inventory"
	"netsync/core/logger"
	"netsync/core/netbox"
	"netsync/core/netshot"
	"netsync/core/reconcile"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkMode bool

// syncCmd performs one inventory synchronization run.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the Netshot inventory from NetBox",
	Long: `Fetch the device inventories of NetBox and Netshot, compare them by
management IP, register in Netshot the devices only NetBox knows about
and disable in Netshot the devices NetBox no longer lists.

A single action failure is logged and skipped; the run only fails when
one of the inventories cannot be fetched.

Examples:
  # Report only, push nothing
  netsync sync --check

  # Full synchronization
  netsync sync`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&checkMode, "check", false, "Check mode, will not push any change to Netshot")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger, tagged so all lines of this run correlate
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = l.With(zap.String("run_id", uuid.NewString()))

	l.Info("Starting inventory synchronization", zap.Bool("check", checkMode))

	// Build both API clients
	netboxClient, err := netbox.NewClient(cfg.Netbox, l)
	if err != nil {
		return fmt.Errorf("failed to build netbox client: %w", err)
	}
	netshotClient, err := netshot.NewClient(cfg.Netshot, l)
	if err != nil {
		return fmt.Errorf("failed to build netshot client: %w", err)
	}

	if err := netboxClient.Ping(ctx); err != nil {
		return err
	}
	if err := netshotClient.Ping(ctx); err != nil {
		return err
	}

	// Fetch both inventories; either failure is fatal, reconciliation
	// needs two complete listings.
	l.Info("Getting devices list from Netshot")
	netshotDevices, err := netshotClient.Devices(ctx)
	if err != nil {
		return err
	}

	l.Info("Getting devices list from NetBox")
	netboxDevices, err := netboxClient.Devices(ctx, cfg.Netbox.DevicesFilter)
	if err != nil {
		return err
	}

	if cfg.Netbox.VMsFilter != "" {
		l.Info("Getting virtual machines list from NetBox")
		vms, err := netboxClient.VirtualMachines(ctx, cfg.Netbox.VMsFilter)
		if err != nil {
			return err
		}
		netboxDevices = append(netboxDevices, vms...)
	}

	// Normalize into the canonical IP keyed inventories
	source := inventory.FromNetbox(netboxDevices, l)
	managed := inventory.FromNetshot(netshotDevices)
	l.Debug("Simplified inventories built",
		zap.Int("netbox", len(source)),
		zap.Int("netshot", len(managed)))

	// Plan
	plan := reconcile.Diff(source, managed, l)
	printSyncReport(l, plan)

	// Apply (skipped entirely in check mode)
	result := reconcile.Apply(ctx, netshotClient, plan, reconcile.Options{
		DryRun:   checkMode,
		DomainID: cfg.Netshot.DomainID,
	}, l)

	if !checkMode {
		l.Info("Synchronization complete",
			zap.Int("registered", result.Registered),
			zap.Int("disabled", result.Disabled),
			zap.Int("failed", result.Failed))
	}

	return nil
}

// printSyncReport prints a formatted reconciliation report using logger.
func printSyncReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("netbox_devices", s.SourceDevices),
		zap.Int("netshot_devices", s.ManagedDevices),
		zap.Int("matched", s.Matched),
		zap.Int("to_register", s.ToRegister),
		zap.Int("to_disable", s.ToDisable),
	)
}
