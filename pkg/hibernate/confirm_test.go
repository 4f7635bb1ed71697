package hibernate_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/mudler/hibernate/pkg/hibernate"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Confirmer", func() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	oldLines := []string{"one", "two"}
	newLines := []string{"one", "two", "three"}

	It("refuses when there is no difference", func() {
		out := &bytes.Buffer{}
		c := NewConfirmer(l, DefaultConfig(), strings.NewReader("y\n"), out)

		Expect(c.Confirm("/etc/fstab", oldLines, oldLines)).To(BeFalse())
		Expect(out.String()).To(BeEmpty())
	})

	It("consents without prompting in non-interactive mode", func() {
		cfg := DefaultConfig()
		cfg.NonInteractive = true
		out := &bytes.Buffer{}
		c := NewConfirmer(l, cfg, strings.NewReader(""), out)

		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeTrue())
		Expect(out.String()).To(BeEmpty())
	})

	It("consents in preview mode", func() {
		cfg := DefaultConfig()
		cfg.Preview = true
		c := NewConfirmer(l, cfg, strings.NewReader(""), io.Discard)

		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeTrue())
	})

	It("shows the diff and accepts y in any case", func() {
		out := &bytes.Buffer{}
		c := NewConfirmer(l, DefaultConfig(), strings.NewReader("y\n"), out)

		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("--- Diff ---"))
		Expect(out.String()).To(ContainSubstring("three"))
		Expect(out.String()).To(ContainSubstring("Apply these changes to /etc/fstab?"))

		c = NewConfirmer(l, DefaultConfig(), strings.NewReader("Y\n"), io.Discard)
		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeTrue())
	})

	It("refuses on anything but y", func() {
		c := NewConfirmer(l, DefaultConfig(), strings.NewReader("n\n"), io.Discard)
		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeFalse())

		c = NewConfirmer(l, DefaultConfig(), strings.NewReader("yes\n"), io.Discard)
		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeFalse())

		c = NewConfirmer(l, DefaultConfig(), strings.NewReader(""), io.Discard)
		Expect(c.Confirm("/etc/fstab", oldLines, newLines)).To(BeFalse())
	})
})
