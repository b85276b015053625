package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"presalecontract/chaincode"
	"presalecontract/internal/config"
	"presalecontract/program"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	program.SetLogger(logger)

	cc, err := chaincode.New()
	if err != nil {
		logger.Error("error creating presale chaincode", "err", err)
		os.Exit(1)
	}

	if cfg.ChaincodeServerAddress == "" {
		if err := cc.Start(); err != nil {
			logger.Error("error starting presale chaincode", "err", err)
			os.Exit(1)
		}
		return
	}

	tlsProps, err := tlsProperties(cfg)
	if err != nil {
		logger.Error("error reading chaincode tls material", "err", err)
		os.Exit(1)
	}
	server := &shim.ChaincodeServer{
		CCID:     cfg.ChaincodeID,
		Address:  cfg.ChaincodeServerAddress,
		CC:       cc,
		TLSProps: tlsProps,
	}
	logger.Info("starting presale chaincode service", "address", cfg.ChaincodeServerAddress, "program_id", program.ProgramID.String())
	if err := server.Start(); err != nil {
		logger.Error("error starting presale chaincode service", "err", err)
		os.Exit(1)
	}
}

func tlsProperties(cfg config.Config) (shim.TLSProperties, error) {
	if cfg.TLSDisabled {
		return shim.TLSProperties{Disabled: true}, nil
	}

	key, err := os.ReadFile(cfg.TLSKeyFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read tls key: %w", err)
	}
	cert, err := os.ReadFile(cfg.TLSCertFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read tls cert: %w", err)
	}

	var clientCACerts []byte
	if cfg.TLSClientCACertFile != "" {
		clientCACerts, err = os.ReadFile(cfg.TLSClientCACertFile)
		if err != nil {
			return shim.TLSProperties{}, fmt.Errorf("failed to read client ca cert: %w", err)
		}
	}

	return shim.TLSProperties{
		Disabled:      false,
		Key:           key,
		Cert:          cert,
		ClientCACerts: clientCACerts,
	}, nil
}
