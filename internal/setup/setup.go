// Package setup checks that a project checkout is ready to build and deploy.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"presalecontract/internal/deployment"
	"presalecontract/program"
)

// RequiredFiles are paths, relative to the project root, that must exist.
var RequiredFiles = []string{
	"go.mod",
	"main.go",
	"chaincode/contract.go",
	"program/id.go",
}

// Check is the outcome of one verification step.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

type Report struct {
	Checks []Check
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Missing returns the names of failed checks.
func (r Report) Missing() []string {
	var names []string
	for _, c := range r.Checks {
		if !c.OK {
			names = append(names, c.Name)
		}
	}
	return names
}

func (r *Report) add(name string, ok bool, detail string) {
	r.Checks = append(r.Checks, Check{Name: name, OK: ok, Detail: detail})
}

// Verify inspects the project at root. Deployment records are informational:
// having none is not a failure.
func Verify(root, deploymentsDir string) Report {
	var r Report

	for _, f := range RequiredFiles {
		info, err := os.Stat(filepath.Join(root, f))
		switch {
		case err != nil:
			r.add(f, false, "missing")
		case info.IsDir():
			r.add(f, false, "is a directory")
		default:
			r.add(f, true, "found")
		}
	}

	if _, err := program.ParseID(program.ProgramID.String()); err != nil {
		r.add("program id", false, err.Error())
	} else {
		r.add("program id", true, program.ProgramID.String())
	}

	if !filepath.IsAbs(deploymentsDir) {
		deploymentsDir = filepath.Join(root, deploymentsDir)
	}
	networks, err := deployment.List(deploymentsDir)
	switch {
	case err != nil:
		r.add("deployments", false, err.Error())
	case len(networks) == 0:
		r.add("deployments", true, "none recorded")
	default:
		r.add("deployments", true, fmt.Sprintf("recorded for %s", strings.Join(networks, ", ")))
	}

	return r
}
