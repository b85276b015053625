package program

import (
	"encoding/json"
	"errors"
	"testing"
)

const deployedID = "FrLwXqLQ1oQ5feJTx7qj9nJZjiLxtsi7pEMaWir7tvcB"

func TestProgramIDRoundTrip(t *testing.T) {
	if got := ProgramID.String(); got != deployedID {
		t.Fatalf("ProgramID.String() = %q, want %q", got, deployedID)
	}
	if ProgramID.IsZero() {
		t.Fatal("ProgramID is zero")
	}

	parsed, err := ParseID(deployedID)
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if parsed != ProgramID {
		t.Fatal("parsed id differs from ProgramID")
	}
}

func TestParseIDRejects(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"bad alphabet": "0OIl",
		"too short":    "3mJr7AoUXx2Wqd",
		"too long":     deployedID + deployedID,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseID(in)
			if !errors.Is(err, ErrInvalidID) {
				t.Fatalf("ParseID(%q) err = %v, want ErrInvalidID", in, err)
			}
		})
	}
}

func TestZeroID(t *testing.T) {
	var id ID
	if !id.IsZero() {
		t.Fatal("zero value should be zero")
	}
	if got := id.String(); got != "11111111111111111111111111111111" {
		t.Fatalf("zero id = %q", got)
	}
}

func TestIDJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		ID ID `json:"id"`
	}{ProgramID})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"id":"`+deployedID+`"}` {
		t.Fatalf("unexpected json %s", data)
	}

	var out struct {
		ID ID `json:"id"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.ID != ProgramID {
		t.Fatal("id changed across json")
	}

	if err := json.Unmarshal([]byte(`{"id":"nope"}`), &out); err == nil {
		t.Fatal("expected error for malformed id")
	}
}
