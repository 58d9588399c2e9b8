package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies walks every registered node under internal/ and
// fails when a node's DependsOn list and the deps it actually resolves via
// graft.Dep drift apart in either direction.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}
