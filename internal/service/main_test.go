package service_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Every dispatched operation must have returned by the end of the package.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
