package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jedirandy/tomasulo/config"
)

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("validates", func() {
			Expect(config.DefaultConfig().Validate()).To(Succeed())
		})
	})

	Describe("SchedQueueCapacity", func() {
		It("derives twice the total unit count", func() {
			cfg := &config.Config{K0: 2, K1: 1, K2: 3}
			Expect(cfg.SchedQueueCapacity()).To(Equal(uint64(12)))
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = config.DefaultConfig()
		})

		It("rejects zero result buses", func() {
			cfg.ResultBuses = 0
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("result_buses")))
		})

		It("rejects zero fetch width", func() {
			cfg.FetchWidth = 0
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("fetch_width")))
		})

		It("rejects a machine with no functional units", func() {
			cfg.K0, cfg.K1, cfg.K2 = 0, 0, 0
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("functional unit")))
		})

		It("rejects an inverted dump window", func() {
			cfg.BeginDump = 10
			cfg.EndDump = 5
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("end_dump")))
		})

		It("accepts a disabled dump window", func() {
			cfg.BeginDump = 0
			cfg.EndDump = 0
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Describe("Load", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "config")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() { os.RemoveAll(dir) })
		})

		It("round-trips through Save and a JSON file", func() {
			cfg := &config.Config{
				ResultBuses: 3, K0: 2, K1: 1, K2: 1,
				FetchWidth: 8, BeginDump: 5, EndDump: 50,
			}
			path := filepath.Join(dir, "machine.json")
			Expect(cfg.Save(path)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("reads YAML files", func() {
			path := filepath.Join(dir, "machine.yaml")
			text := "resultBuses: 4\nk0: 3\nfetchWidth: 2\n"
			Expect(os.WriteFile(path, []byte(text), 0644)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.ResultBuses).To(Equal(uint64(4)))
			Expect(loaded.K0).To(Equal(uint64(3)))
			Expect(loaded.FetchWidth).To(Equal(uint64(2)))
			// Unset fields keep their defaults.
			Expect(loaded.K1).To(Equal(config.DefaultConfig().K1))
		})

		It("rejects unknown extensions", func() {
			path := filepath.Join(dir, "machine.toml")
			Expect(os.WriteFile(path, []byte("r = 1"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(MatchError(ContainSubstring("unsupported config extension")))
		})

		It("rejects configurations that fail validation", func() {
			path := filepath.Join(dir, "machine.json")
			Expect(os.WriteFile(path, []byte(`{"result_buses": 0}`), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(MatchError(ContainSubstring("invalid configuration")))
		})

		It("reports missing files", func() {
			_, err := config.Load(filepath.Join(dir, "absent.json"))
			Expect(err).To(MatchError(ContainSubstring("failed to read")))
		})
	})
})
