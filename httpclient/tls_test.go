package httpclient

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pavel-v-chernykh/keystore-go/v4"

	"github.com/rkbennett/logstash-output-opensearch/secret"
)

// selfSignedCert returns a self-signed certificate in DER form along with
// its PKCS#8 private key.
func selfSignedCert(t *testing.T) (derBytes, keyPKCS8 []byte) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "opensearch-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IsCA:         true,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	return der, pkcs8
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTLSSettings_BuildDisabled(t *testing.T) {
	var nilSettings *TLSSettings
	if cfg, err := nilSettings.Build(); err != nil || cfg != nil {
		t.Errorf("expected nil config for nil settings, got %v %v", cfg, err)
	}
	off := &TLSSettings{Enabled: false, CAFile: "ignored.pem"}
	if cfg, err := off.Build(); err != nil || cfg != nil {
		t.Errorf("expected nil config for disabled TLS, got %v %v", cfg, err)
	}
}

func TestTLSSettings_Validate_CAConflict(t *testing.T) {
	s := &TLSSettings{Enabled: true, CAFile: "ca.pem", Truststore: "ts.jks"}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for cacert+truststore")
	}
}

func TestTLSSettings_Validate_CertWithoutKey(t *testing.T) {
	s := &TLSSettings{Enabled: true, CertFile: "cert.pem"}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for certificate without key")
	}
}

func TestTLSSettings_Validate_KeyWithoutCert(t *testing.T) {
	s := &TLSSettings{Enabled: true, KeyFile: "key.pem"}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for key without certificate")
	}
}

func TestTLSSettings_Validate_DisabledSkipsRules(t *testing.T) {
	s := &TLSSettings{Enabled: false, CAFile: "ca.pem", Truststore: "ts.jks"}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTLSSettings_BuildWithPEMCA(t *testing.T) {
	der, _ := selfSignedCert(t)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	caPath := writeTemp(t, "ca.pem", pemBytes)

	s := &TLSSettings{Enabled: true, CAFile: caPath}
	cfg, err := s.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RootCAs == nil {
		t.Error("expected RootCAs to be populated")
	}
	if cfg.InsecureSkipVerify {
		t.Error("expected verification enabled by default")
	}
}

func TestTLSSettings_BuildWithTruststore(t *testing.T) {
	der, _ := selfSignedCert(t)

	ks := keystore.New()
	err := ks.SetTrustedCertificateEntry("ca", keystore.TrustedCertificateEntry{
		CreationTime: time.Now(),
		Certificate:  keystore.Certificate{Type: "X509", Content: der},
	})
	if err != nil {
		t.Fatalf("set truststore entry: %v", err)
	}
	var buf bytes.Buffer
	if err := ks.Store(&buf, []byte("changeit")); err != nil {
		t.Fatalf("store truststore: %v", err)
	}
	tsPath := writeTemp(t, "truststore.jks", buf.Bytes())

	s := &TLSSettings{
		Enabled:            true,
		Truststore:         tsPath,
		TruststorePassword: secret.Static("changeit"),
	}
	cfg, err := s.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RootCAs == nil {
		t.Error("expected RootCAs from truststore")
	}
}

func TestTLSSettings_BuildWithKeystore(t *testing.T) {
	der, keyPKCS8 := selfSignedCert(t)

	ks := keystore.New()
	err := ks.SetPrivateKeyEntry("client", keystore.PrivateKeyEntry{
		CreationTime: time.Now(),
		PrivateKey:   keyPKCS8,
		CertificateChain: []keystore.Certificate{
			{Type: "X509", Content: der},
		},
	}, []byte("kspass"))
	if err != nil {
		t.Fatalf("set keystore entry: %v", err)
	}
	var buf bytes.Buffer
	if err := ks.Store(&buf, []byte("kspass")); err != nil {
		t.Fatalf("store keystore: %v", err)
	}
	ksPath := writeTemp(t, "keystore.jks", buf.Bytes())

	s := &TLSSettings{
		Enabled:          true,
		Keystore:         ksPath,
		KeystorePassword: secret.Static("kspass"),
	}
	cfg, err := s.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Certificates) != 1 {
		t.Fatalf("expected one client certificate, got %d", len(cfg.Certificates))
	}
}

func TestTLSSettings_BuildVerifyDisabled(t *testing.T) {
	s := &TLSSettings{Enabled: true, VerifyDisabled: true}
	cfg, err := s.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify")
	}
}

func TestTLSSettings_BuildMissingCAFile(t *testing.T) {
	s := &TLSSettings{Enabled: true, CAFile: "/does/not/exist.pem"}
	if _, err := s.Build(); err == nil {
		t.Fatal("expected error for missing CA file")
	}
}

func TestTLSSettings_BuildWrongTruststorePassword(t *testing.T) {
	der, _ := selfSignedCert(t)
	ks := keystore.New()
	_ = ks.SetTrustedCertificateEntry("ca", keystore.TrustedCertificateEntry{
		CreationTime: time.Now(),
		Certificate:  keystore.Certificate{Type: "X509", Content: der},
	})
	var buf bytes.Buffer
	if err := ks.Store(&buf, []byte("correct")); err != nil {
		t.Fatalf("store truststore: %v", err)
	}
	tsPath := writeTemp(t, "truststore.jks", buf.Bytes())

	s := &TLSSettings{
		Enabled:            true,
		Truststore:         tsPath,
		TruststorePassword: secret.Static("wrong"),
	}
	if _, err := s.Build(); err == nil {
		t.Fatal("expected error for wrong truststore password")
	}
}
