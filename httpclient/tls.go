package httpclient

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/pavel-v-chernykh/keystore-go/v4"

	"github.com/rkbennett/logstash-output-opensearch/errors"
	"github.com/rkbennett/logstash-output-opensearch/secret"
)

// TLSSettings is the resolved TLS material for the connection.
//
// Enabled=false means TLS was explicitly disabled; no other field is read.
// CA material comes from either CAFile (PEM) or Truststore (JKS), never both.
type TLSSettings struct {
	// Enabled reports whether TLS is on for the connection.
	Enabled bool

	// CAFile is a PEM file holding the CA certificates to trust.
	CAFile string

	// Truststore is a JKS file holding the CA certificates to trust.
	Truststore string
	// TruststorePassword unlocks the truststore.
	TruststorePassword secret.Secret

	// Keystore is a JKS file holding the client certificate and key.
	Keystore string
	// KeystorePassword unlocks the keystore.
	KeystorePassword secret.Secret

	// CertFile and KeyFile are a PEM client certificate pair. Both are set
	// or neither is.
	CertFile string
	KeyFile  string

	// VerifyDisabled turns off server certificate verification.
	VerifyDisabled bool
}

// Validate checks the mutual-exclusion and pairing rules over the TLS
// material. Rules apply only when TLS is enabled.
func (c *TLSSettings) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if c.CAFile != "" && c.Truststore != "" {
		return errors.Conflicting("cacert", "truststore",
			"Use either \"cacert\" or \"truststore\" when configuring the CA certificate")
	}
	if c.CertFile != "" && c.KeyFile == "" {
		return errors.MissingSetting("tls_key",
			"Using \"tls_certificate\" requires \"tls_key\"")
	}
	if c.KeyFile != "" && c.CertFile == "" {
		return errors.MissingSetting("tls_certificate",
			"Using \"tls_key\" requires \"tls_certificate\"")
	}
	return nil
}

// Build materializes a *tls.Config from the settings. Returns nil when TLS
// is disabled.
func (c *TLSSettings) Build() (*tls.Config, error) {
	if c == nil || !c.Enabled {
		return nil, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.VerifyDisabled,
		MinVersion:         tls.VersionTLS12,
	}

	if err := c.loadCA(cfg); err != nil {
		return nil, err
	}
	if err := c.loadClientCert(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadCA populates RootCAs from the PEM CA file or the JKS truststore.
func (c *TLSSettings) loadCA(cfg *tls.Config) error {
	if c.CAFile != "" {
		ca, err := os.ReadFile(c.CAFile)
		if err != nil {
			return fmt.Errorf("read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(ca) {
			return fmt.Errorf("parse CA certificate from %s", c.CAFile)
		}
		cfg.RootCAs = pool
		return nil
	}

	if c.Truststore == "" {
		return nil
	}

	ks, err := loadJKS(c.Truststore, secret.Reveal(c.TruststorePassword))
	if err != nil {
		return fmt.Errorf("load truststore: %w", err)
	}

	pool := x509.NewCertPool()
	found := false
	for _, alias := range ks.Aliases() {
		if !ks.IsTrustedCertificateEntry(alias) {
			continue
		}
		entry, err := ks.GetTrustedCertificateEntry(alias)
		if err != nil {
			return fmt.Errorf("read truststore entry %s: %w", alias, err)
		}
		cert, err := x509.ParseCertificate(entry.Certificate.Content)
		if err != nil {
			return fmt.Errorf("parse truststore certificate %s: %w", alias, err)
		}
		pool.AddCert(cert)
		found = true
	}
	if !found {
		return fmt.Errorf("truststore %s holds no trusted certificates", c.Truststore)
	}
	cfg.RootCAs = pool
	return nil
}

// loadClientCert populates Certificates from the PEM pair or the JKS keystore.
func (c *TLSSettings) loadClientCert(cfg *tls.Config) error {
	if c.CertFile != "" && c.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return fmt.Errorf("load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
		return nil
	}

	if c.Keystore == "" {
		return nil
	}

	password := secret.Reveal(c.KeystorePassword)
	ks, err := loadJKS(c.Keystore, password)
	if err != nil {
		return fmt.Errorf("load keystore: %w", err)
	}

	for _, alias := range ks.Aliases() {
		if !ks.IsPrivateKeyEntry(alias) {
			continue
		}
		entry, err := ks.GetPrivateKeyEntry(alias, []byte(password))
		if err != nil {
			return fmt.Errorf("read keystore entry %s: %w", alias, err)
		}
		key, err := x509.ParsePKCS8PrivateKey(entry.PrivateKey)
		if err != nil {
			return fmt.Errorf("parse keystore private key %s: %w", alias, err)
		}
		chain := make([][]byte, 0, len(entry.CertificateChain))
		for _, kc := range entry.CertificateChain {
			chain = append(chain, kc.Content)
		}
		cfg.Certificates = []tls.Certificate{{
			Certificate: chain,
			PrivateKey:  key,
		}}
		return nil
	}
	return fmt.Errorf("keystore %s holds no private key entry", c.Keystore)
}

// loadJKS reads and decrypts a JKS file.
func loadJKS(path, password string) (keystore.KeyStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keystore.KeyStore{}, err
	}
	ks := keystore.New()
	if err := ks.Load(bytes.NewReader(data), []byte(password)); err != nil {
		return keystore.KeyStore{}, err
	}
	return ks, nil
}
