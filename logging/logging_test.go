package logging_test

import (
	"bytes"

	"github.com/charmbracelet/log"

	"github.com/fakelag/jukebox/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Creating the logger", func() {
	It("Filters records below the configured level", func() {
		var buf bytes.Buffer
		logger, err := logging.NewWithWriter(&buf, "warn")
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.GetLevel()).To(Equal(log.WarnLevel))

		logger.Info("hidden")
		logger.Warn("shown", "guild", "1")

		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring("shown"))
		Expect(buf.String()).To(ContainSubstring("guild=1"))
	})

	It("Rejects unknown levels", func() {
		_, err := logging.NewWithWriter(&bytes.Buffer{}, "loud")
		Expect(err).To(HaveOccurred())
	})
})
