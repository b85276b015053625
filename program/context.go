package program

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// LogPrefix starts every line in the program log.
const LogPrefix = "Program log: "

// ContextInterface is the invocation context handed to transactions.
type ContextInterface interface {
	contractapi.TransactionContextInterface

	ProgramID() ID
	Accounts() []AccountMeta
	SetAccounts([]AccountMeta)

	// Msg appends a formatted line to the program log.
	Msg(format string, args ...interface{})
	Logs() []string
}

// Context is created by the runtime for a single call and dropped when the
// call returns.
type Context struct {
	contractapi.TransactionContext

	accounts []AccountMeta
	logs     []string
}

func (c *Context) ProgramID() ID {
	return ProgramID
}

func (c *Context) Accounts() []AccountMeta {
	return c.accounts
}

func (c *Context) SetAccounts(accounts []AccountMeta) {
	c.accounts = accounts
}

func (c *Context) Msg(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	c.logs = append(c.logs, LogPrefix+text)

	attrs := []interface{}{"program_id", ProgramID.String()}
	if stub := c.GetStub(); stub != nil {
		attrs = append(attrs, "tx_id", stub.GetTxID())
	}
	currentLogger().Info(text, attrs...)
}

func (c *Context) Logs() []string {
	return c.logs
}
