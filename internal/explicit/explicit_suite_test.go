package explicit

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestExplicit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Explicit Formula Suite")
}
