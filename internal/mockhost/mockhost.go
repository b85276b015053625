// Package mockhost runs chaincode against an in-memory Fabric stub with a
// generated client identity, so calls go through the same dispatch and
// validation as on a peer.
package mockhost

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/msp"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// DefaultMSPID is the membership service the generated identity belongs to.
const DefaultMSPID = "Org1MSP"

// Host wraps a mock stub.
type Host struct {
	Stub *shimtest.MockStub

	txSeq int
}

// New creates a host for cc whose calls are made by a fresh identity in mspID.
func New(name, mspID string, cc shim.Chaincode) (*Host, error) {
	creator, err := newCreator(mspID)
	if err != nil {
		return nil, err
	}

	stub := shimtest.NewMockStub(name, cc)
	stub.Creator = creator
	return &Host{Stub: stub}, nil
}

// Invoke calls fn with args and returns the response with the events the
// call emitted.
func (h *Host) Invoke(fn string, args ...string) (peer.Response, []*peer.ChaincodeEvent) {
	h.txSeq++
	txID := fmt.Sprintf("tx%d", h.txSeq)

	callArgs := make([][]byte, 0, len(args)+1)
	callArgs = append(callArgs, []byte(fn))
	for _, arg := range args {
		callArgs = append(callArgs, []byte(arg))
	}

	res := h.Stub.MockInvoke(txID, callArgs)
	return res, h.drainEvents()
}

func (h *Host) drainEvents() []*peer.ChaincodeEvent {
	var events []*peer.ChaincodeEvent
	for {
		select {
		case ev := <-h.Stub.ChaincodeEventsChannel:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func newCreator(mspID string) ([]byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate identity key: %v", err)
	}

	now := time.Now()
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(now.UnixNano()),
		Subject: pkix.Name{
			CommonName:   "presale-operator",
			Organization: []string{mspID},
		},
		NotBefore: now.Add(-time.Hour),
		NotAfter:  now.Add(24 * time.Hour),
		KeyUsage:  x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity certificate: %v", err)
	}

	sid := &msp.SerializedIdentity{
		Mspid:   mspID,
		IdBytes: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
	}
	return proto.Marshal(sid)
}
