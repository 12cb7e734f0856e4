package gateway_test

import (
	"os"
	"testing"

	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/suite"
)

var suit *suite.Suite = nil

func TestMain(m *testing.M) {
	var err error
	suit, err = suite.CreateSuite()
	if err != nil {
		log.Error.Fatalf("suite creation failed: %s", err)
	}
	os.Exit(m.Run())
}
