package chaincode

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"presalecontract/internal/mockhost"
	"presalecontract/program"
)

const deployedID = "FrLwXqLQ1oQ5feJTx7qj9nJZjiLxtsi7pEMaWir7tvcB"

func newHost(t *testing.T) (*mockhost.Host, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	program.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { program.SetLogger(slog.Default()) })

	cc, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	host, err := mockhost.New(ContractName, mockhost.DefaultMSPID, cc)
	if err != nil {
		t.Fatalf("mockhost.New: %v", err)
	}
	return host, &buf
}

func programLog(t *testing.T, events []*peer.ChaincodeEvent) program.LogEvent {
	t.Helper()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].EventName != program.LogEventName {
		t.Fatalf("event name = %q", events[0].EventName)
	}
	var ev program.LogEvent
	if err := json.Unmarshal(events[0].Payload, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	return ev
}

func TestInitialize(t *testing.T) {
	host, buf := newHost(t)

	res, events := host.Invoke("Initialize")
	if res.Status != shim.OK {
		t.Fatalf("status %d: %s", res.Status, res.Message)
	}

	ev := programLog(t, events)
	if ev.ProgramID != program.ProgramID {
		t.Fatalf("event program id = %s", ev.ProgramID)
	}
	if ev.TxID != "tx1" {
		t.Fatalf("event tx id = %q", ev.TxID)
	}
	want := "Program log: Greetings from: " + deployedID
	if len(ev.Logs) != 1 || ev.Logs[0] != want {
		t.Fatalf("logs = %q, want [%q]", ev.Logs, want)
	}
	if !strings.Contains(buf.String(), deployedID) {
		t.Fatalf("process log missing program id: %s", buf.String())
	}
}

func TestInitializeNamespaced(t *testing.T) {
	host, _ := newHost(t)

	res, events := host.Invoke(ContractName + ":Initialize")
	if res.Status != shim.OK {
		t.Fatalf("status %d: %s", res.Status, res.Message)
	}
	programLog(t, events)
}

func TestInitializeRejectsAccounts(t *testing.T) {
	cases := map[string]struct {
		accounts []string
		message  string
	}{
		"one account":  {[]string{deployedID}, "too many accounts"},
		"two accounts": {[]string{deployedID, "11111111111111111111111111111111"}, "too many accounts"},
		"malformed":    {[]string{"not-a-key"}, "invalid account key"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			host, buf := newHost(t)

			res, events := host.Invoke("Initialize", tc.accounts...)
			if res.Status != shim.ERROR {
				t.Fatalf("status = %d, want %d", res.Status, shim.ERROR)
			}
			if !strings.Contains(res.Message, tc.message) {
				t.Fatalf("message %q does not mention %q", res.Message, tc.message)
			}
			if len(events) != 0 {
				t.Fatalf("rejected call emitted %d events", len(events))
			}
			if strings.Contains(buf.String(), "Greetings") {
				t.Fatal("handler ran for a rejected call")
			}
		})
	}
}

func TestInitializeTwice(t *testing.T) {
	host, _ := newHost(t)

	var logs [][]string
	for i := 0; i < 2; i++ {
		res, events := host.Invoke("Initialize")
		if res.Status != shim.OK {
			t.Fatalf("call %d: status %d: %s", i, res.Status, res.Message)
		}
		logs = append(logs, programLog(t, events).Logs)
	}

	if len(logs[0]) != 1 || len(logs[1]) != 1 || logs[0][0] != logs[1][0] {
		t.Fatalf("calls logged differently: %q vs %q", logs[0], logs[1])
	}
	if len(host.Stub.State) != 0 {
		t.Fatalf("world state written: %d keys", len(host.Stub.State))
	}
}

func TestUnknownTransaction(t *testing.T) {
	host, _ := newHost(t)

	res, events := host.Invoke("Purchase")
	if res.Status != shim.ERROR {
		t.Fatalf("status = %d, want %d", res.Status, shim.ERROR)
	}
	if !strings.Contains(res.Message, "unknown transaction") {
		t.Fatalf("message = %q", res.Message)
	}
	if len(events) != 0 {
		t.Fatal("unknown transaction emitted events")
	}
}

func TestInitializeDirect(t *testing.T) {
	ctx := new(program.Context)
	if err := NewPresaleContract().Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	logs := ctx.Logs()
	if len(logs) != 1 || !strings.Contains(logs[0], deployedID) {
		t.Fatalf("logs = %q", logs)
	}
}
