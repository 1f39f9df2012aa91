package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/bnema/estate-admin-cli/internal/config"
	"github.com/bnema/estate-admin-cli/internal/domain"
)

var _ = Describe("Config", func() {
	var home string

	writeConfig := func(content string) {
		dir := filepath.Join(home, config.DirName)
		Expect(os.MkdirAll(dir, 0o700)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600)).To(Succeed())
	}

	BeforeEach(func() {
		home = GinkgoT().TempDir()
	})

	Describe("Load", func() {
		Context("without a config file", func() {
			It("uses the defaults", func() {
				cfg, err := config.Load(viper.New(), home)
				Expect(err).NotTo(HaveOccurred())

				profiles, err := cfg.Profiles()
				Expect(err).NotTo(HaveOccurred())
				Expect(profiles.Local.BaseURL).To(Equal(domain.DefaultLocalBaseURL))
				Expect(profiles.Local.Timeout).To(Equal(10 * time.Second))
				Expect(profiles.Remote.BaseURL).To(Equal(domain.DefaultRemoteBaseURL))
				Expect(profiles.Remote.Timeout).To(Equal(15 * time.Second))
				Expect(cfg.ProbeTimeout()).To(Equal(3 * time.Second))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelWarn))
			})

			It("expands paths against home", func() {
				v := viper.New()
				cfg, err := config.Load(v, home)
				Expect(err).NotTo(HaveOccurred())

				Expect(cfg.Preferences.Path).To(Equal(filepath.Join(home, ".estate-admin", "environment.toml")))
				Expect(cfg.Session.Dir).To(Equal(filepath.Join(home, ".estate-admin", "session")))
				Expect(v.GetString(config.KeyPreferencePath)).To(Equal(cfg.Preferences.Path))
			})
		})

		Context("with a config file", func() {
			It("overrides the defaults", func() {
				writeConfig(`
[environments.local]
base_url = "http://127.0.0.1:9000/"
timeout = "2s"

[probe]
timeout = "500ms"

[logging]
level = "DEBUG"
`)
				cfg, err := config.Load(viper.New(), home)
				Expect(err).NotTo(HaveOccurred())

				profiles, err := cfg.Profiles()
				Expect(err).NotTo(HaveOccurred())
				Expect(profiles.Local.BaseURL).To(Equal("http://127.0.0.1:9000"))
				Expect(profiles.Local.Timeout).To(Equal(2 * time.Second))
				Expect(profiles.Remote.BaseURL).To(Equal(domain.DefaultRemoteBaseURL))
				Expect(cfg.ProbeTimeout()).To(Equal(500 * time.Millisecond))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelDebug))
			})

			It("rejects a non http base URL", func() {
				writeConfig(`
[environments.remote]
base_url = "ftp://files.example.com"
`)
				_, err := config.Load(viper.New(), home)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("http or https"))
			})

			It("rejects a negative timeout", func() {
				writeConfig(`
[environments.local]
timeout = "-1s"
`)
				_, err := config.Load(viper.New(), home)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("must be positive"))
			})

			It("rejects an unknown log level", func() {
				writeConfig(`
[logging]
level = "chatty"
`)
				_, err := config.Load(viper.New(), home)
				Expect(err).To(HaveOccurred())
			})

			It("reports a malformed file", func() {
				writeConfig("[environments\n")
				_, err := config.Load(viper.New(), home)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("read config file"))
			})
		})

		Context("with environment variables", func() {
			It("lets EA_ variables win over the file", func() {
				writeConfig(`
[environments.remote]
base_url = "https://file.example.com"
`)
				GinkgoT().Setenv("EA_ENVIRONMENTS_REMOTE_BASE_URL", "https://env.example.com")

				cfg, err := config.Load(viper.New(), home)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environments.Remote.BaseURL).To(Equal("https://env.example.com"))
			})
		})
	})
})
