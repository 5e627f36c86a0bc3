package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mobile-transfer/internal/config"
	"mobile-transfer/internal/domain"
	"mobile-transfer/internal/gateway"
	"mobile-transfer/internal/usecase"
)

func main() {
	// Define command-line flags
	configPath := pflag.String("config", "", "Path to a YAML config file")
	directoryPath := pflag.String("directory", "", "Path to a payee directory CSV file (id,name,account_number,bank,frequent)")
	recipient := pflag.String("recipient", "", "Recipient account number (required)")
	amount := pflag.String("amount", "", "Amount to transfer, e.g. 200.00 (required)")
	transferType := pflag.String("type", string(domain.TransferTypeDuitNow), "Transfer type: duitnow or interbank")
	note := pflag.String("note", "", "Optional note for the recipient")
	pins := pflag.StringArray("pin", nil, "PIN attempt; repeat the flag for several attempts")
	exportPath := pflag.String("export", "", "Write the transaction history to this CSV file")
	logLevel := pflag.String("log-level", "info", "Log level: debug, info, warn or error")
	pflag.Parse()

	// Validate required flags
	if *recipient == "" || *amount == "" {
		fmt.Fprintln(os.Stderr, "Error: --recipient and --amount are required.")
		pflag.Usage()
		os.Exit(1)
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	ctx := context.Background()
	csvRepo := gateway.NewCSVDirectoryRepository()
	if *directoryPath != "" {
		contacts, err := csvRepo.GetContacts(ctx, *directoryPath)
		if err != nil {
			logger.Fatal("could not load directory", zap.Error(err))
		}
		cfg.Directory = contacts
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the simulated backend and device (the outermost layer)
	api := gateway.NewMockBankAPI(gateway.MockBankConfig{
		LookupLatency:   cfg.Mock.LookupLatency,
		TransferLatency: cfg.Mock.TransferLatency,
		ContactsLatency: cfg.Mock.ContactsLatency,
		FailureRate:     cfg.Mock.FailureRate,
		ServiceCeiling:  cfg.Limits.ServiceCeiling,
	}, cfg.Directory)
	device := &gateway.SimulatedBiometric{Available: cfg.Mock.BiometricAvailable, Type: cfg.Mock.BiometricType}

	// 2. Create the session and the use cases on top of it (the core logic layer)
	opts := []usecase.Option{usecase.WithLogger(logger)}
	session := usecase.NewSession(cfg.Owner, nil, nil)
	notifications := usecase.NewNotificationCenter(opts...)
	validator := usecase.NewTransferValidator(usecase.Limits{MinAmount: cfg.Limits.MinAmount, MaxPerTransfer: cfg.Limits.MaxPerTransfer})
	transfers := usecase.NewTransferUseCase(session, validator, api, notifications, opts...)
	accounts := usecase.NewAccountValidator(api, usecase.LookupConfig{
		MinLength: cfg.Lookup.MinLength,
		Debounce:  cfg.Lookup.Debounce,
		CacheTTL:  cfg.Lookup.CacheTTL,
	}, opts...)
	directory := usecase.NewRecipientDirectory(api, session)
	pinGate := usecase.NewGate(usecase.NewPINChallenge(usecase.PINConfig{
		Code:        cfg.PIN.Code,
		Length:      cfg.PIN.Length,
		MaxAttempts: cfg.PIN.MaxAttempts,
	}), session, opts...)
	confirmGate := usecase.NewGate(usecase.NewBiometricChallenge(device, usecase.DefaultBiometricConfig(), opts...), session, opts...)

	// --- Execute the flow ---
	report := func(receipt *domain.Receipt, err error) domain.SessionReport {
		r := domain.SessionReport{
			Owner:              session.Owner(),
			Receipt:            receipt,
			RecentTransactions: session.RecentTransactions(),
			Notifications:      notifications.List(),
			UnreadCount:        notifications.UnreadCount(),
		}
		if err != nil {
			r.Error = domain.UserMessage(err)
		}
		return r
	}

	transfers.Start()
	if err := passPINGate(ctx, pinGate, *pins); err != nil {
		printJSON(report(nil, err))
		os.Exit(1)
	}

	payee, err := resolveRecipient(ctx, directory, accounts, *recipient)
	if err != nil {
		printJSON(report(nil, err))
		os.Exit(1)
	}

	form := usecase.TransferForm{
		Amount:       domain.NormalizeAmountInput(*amount),
		Recipient:    &payee,
		TransferType: domain.TransferType(*transferType),
		Note:         *note,
	}
	if result := transfers.Review(form); !result.Valid() {
		printJSON(result.Messages())
		os.Exit(1)
	}

	if _, err := confirmGate.Activate(ctx); err != nil {
		logger.Fatal("could not start confirmation", zap.Error(err))
	}
	if confirmGate.State() == usecase.GateChallenging {
		if _, err := confirmGate.Respond(ctx, ""); err != nil {
			logger.Fatal("confirmation failed", zap.Error(err))
		}
	}
	if confirmGate.State() != usecase.GateValidated {
		confirmGate.Cancel()
		printJSON(report(nil, domain.ErrNotAuthenticated))
		os.Exit(1)
	}

	tx, err := transfers.Submit(ctx)
	if err != nil {
		printJSON(report(nil, err))
		os.Exit(1)
	}
	receipt := usecase.BuildReceipt(tx, session.Owner())

	if *exportPath != "" {
		if err := csvRepo.WriteTransactions(ctx, *exportPath, session.RecentTransactions()); err != nil {
			logger.Fatal("could not export history", zap.Error(err))
		}
	}

	// --- Present the Output ---
	printJSON(report(&receipt, nil))
}

func passPINGate(ctx context.Context, gate *usecase.Gate, pins []string) error {
	if _, err := gate.Activate(ctx); err != nil {
		return err
	}
	for _, pin := range pins {
		if gate.State() != usecase.GateChallenging {
			break
		}
		if _, err := gate.Respond(ctx, pin); err != nil {
			return err
		}
	}
	switch gate.State() {
	case usecase.GateValidated:
		return nil
	case usecase.GateDenied:
		return domain.ErrLockedOut
	default:
		gate.Cancel()
		return domain.ErrNotAuthenticated
	}
}

// resolveRecipient prefers a saved contact and otherwise types the number
// into the account field one digit at a time, as a user would.
func resolveRecipient(ctx context.Context, directory *usecase.RecipientDirectory, accounts *usecase.AccountValidator, accountNumber string) (domain.Recipient, error) {
	if contact, ok, err := directory.Find(ctx, accountNumber); err != nil {
		return domain.Recipient{}, err
	} else if ok {
		return contact.Recipient(), nil
	}

	results := make(chan usecase.LookupResult, len(accountNumber))
	for i := range accountNumber {
		accounts.Input(ctx, accountNumber[:i+1], func(r usecase.LookupResult) { results <- r })
	}
	defer accounts.Stop()

	timeout := time.After(30 * time.Second)
	for {
		select {
		case r := <-results:
			if r.AccountNumber != accountNumber {
				continue
			}
			switch r.Status {
			case usecase.LookupFound:
				payee, _ := r.Recipient()
				return payee, nil
			case usecase.LookupNotFound:
				return domain.Recipient{}, domain.ErrAccountNotFound
			case usecase.LookupFailed:
				return domain.Recipient{}, domain.ErrNetwork
			default:
				return domain.Recipient{}, domain.ErrAccountNotFound
			}
		case <-timeout:
			return domain.Recipient{}, domain.ErrNetwork
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func printJSON(v any) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate JSON output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}
