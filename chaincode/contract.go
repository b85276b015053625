package chaincode

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-contract-api-go/metadata"

	"presalecontract/program"
)

const (
	// ContractName is the namespace the contract is registered under.
	ContractName = "presale_contract"

	Version = "0.1.0"
)

// PresaleContract provides the program's transactions
type PresaleContract struct {
	contractapi.Contract
}

// NewPresaleContract returns the contract with its invocation context,
// account descriptors and log publication wired in.
func NewPresaleContract() *PresaleContract {
	descriptors := program.Descriptors{
		"Initialize": program.Initialize{},
	}

	c := new(PresaleContract)
	c.Name = ContractName
	c.Info = metadata.InfoMetadata{
		Title:   "Presale Contract",
		Version: Version,
	}
	c.TransactionContextHandler = new(program.Context)
	c.BeforeTransaction = descriptors.BeforeTransaction
	c.AfterTransaction = program.PublishLogs
	c.UnknownTransaction = program.RejectUnknown
	return c
}

// Initialize logs a greeting naming the program
func (c *PresaleContract) Initialize(ctx program.ContextInterface) error {
	ctx.Msg("Greetings from: %s", ctx.ProgramID())
	return nil
}

// New creates the presale chaincode with PresaleContract as its default
// contract, so "Initialize" and "presale_contract:Initialize" both route to it.
func New() (*contractapi.ContractChaincode, error) {
	cc, err := contractapi.NewChaincode(NewPresaleContract())
	if err != nil {
		return nil, err
	}
	cc.DefaultContract = ContractName
	cc.Info.Title = "presale_contract"
	cc.Info.Version = Version
	return cc, nil
}
