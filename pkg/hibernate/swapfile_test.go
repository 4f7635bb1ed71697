package hibernate_test

import (
	"io"

	. "github.com/mudler/hibernate/pkg/hibernate"
	consoletests "github.com/mudler/hibernate/tests/console"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CreateSwapfile", func() {
	testConsole := consoletests.TestConsole{}
	l := logrus.New()
	l.SetOutput(io.Discard)

	BeforeEach(func() {
		consoletests.Reset()
	})

	It("allocates, protects, formats and activates in order", func() {
		cfg := DefaultConfig()
		cfg.SwapSizeGB = 16

		Expect(CreateSwapfile(l, cfg, testConsole)).To(Succeed())
		Expect(consoletests.Commands).To(Equal([]string{
			"fallocate -l 16G /swapfile",
			"chmod 600 /swapfile",
			"mkswap /swapfile",
			"swapon /swapfile",
		}))
	})

	It("stops at the first failing step", func() {
		cfg := DefaultConfig()
		consoletests.Failures["mkswap /swapfile"] = errors.New("exit status 1")

		Expect(CreateSwapfile(l, cfg, testConsole)).ToNot(Succeed())
		Expect(consoletests.Commands).To(Equal([]string{
			"fallocate -l 32G /swapfile",
			"chmod 600 /swapfile",
			"mkswap /swapfile",
		}))
	})
})
