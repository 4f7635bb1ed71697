package hibernate_test

import (
	"io"
	"strings"

	. "github.com/mudler/hibernate/pkg/hibernate"
	consoletests "github.com/mudler/hibernate/tests/console"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs/v4/vfst"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EnsureFstabEntry", func() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	cfg := DefaultConfig()
	cfg.NonInteractive = true
	confirm := NewConfirmer(l, cfg, strings.NewReader(""), io.Discard)

	const fstab = "# Static information about the filesystems.\nUUID=abcd / ext4 rw,relatime 0 1\n"

	BeforeEach(func() {
		consoletests.Reset()
	})

	It("appends exactly one entry across repeated runs", func() {
		fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{"/etc/fstab": fstab})
		Expect(err).Should(BeNil())
		defer cleanup()

		Expect(EnsureFstabEntry(l, cfg, fs, confirm)).To(Succeed())
		Expect(EnsureFstabEntry(l, cfg, fs, confirm)).To(Succeed())

		b, err := fs.ReadFile("/etc/fstab")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(strings.Count(string(b), "/swapfile none swap defaults 0 0")).To(Equal(1))
		Expect(string(b)).To(HavePrefix("# Static information"))
	})

	It("keeps existing lines untouched", func() {
		fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{"/etc/fstab": fstab})
		Expect(err).Should(BeNil())
		defer cleanup()

		Expect(EnsureFstabEntry(l, cfg, fs, confirm)).To(Succeed())

		b, _ := fs.ReadFile("/etc/fstab")
		Expect(string(b)).To(ContainSubstring("UUID=abcd / ext4 rw,relatime 0 1\n"))
	})

	It("never writes in preview mode", func() {
		previewCfg := cfg
		previewCfg.Preview = true
		previewConfirm := NewConfirmer(l, previewCfg, strings.NewReader(""), io.Discard)

		fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{"/etc/fstab": fstab})
		Expect(err).Should(BeNil())
		defer cleanup()

		Expect(EnsureFstabEntry(l, previewCfg, fs, previewConfirm)).To(Succeed())

		b, _ := fs.ReadFile("/etc/fstab")
		Expect(string(b)).To(Equal(fstab))
	})
})
