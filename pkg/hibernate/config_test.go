package hibernate_test

import (
	. "github.com/mudler/hibernate/pkg/hibernate"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	It("accepts the defaults", func() {
		Expect(DefaultConfig().Validate()).To(Succeed())
	})

	It("rejects a non-positive swap size", func() {
		cfg := DefaultConfig()
		cfg.SwapSizeGB = 0

		err := cfg.Validate()
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("positive number of gigabytes"))
	})

	It("collects every problem at once", func() {
		cfg := Config{}

		err := cfg.Validate()
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("swapfile path"))
		Expect(err.Error()).To(ContainSubstring("fstab path"))
	})
})
