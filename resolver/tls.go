package resolver

import (
	"github.com/rkbennett/logstash-output-opensearch/httpclient"
	"github.com/rkbennett/logstash-output-opensearch/logger"
	"github.com/rkbennett/logstash-output-opensearch/options"
)

const verifyDisabledWarning = `** WARNING ** Detected UNSAFE options in the output configuration!
** WARNING ** You have enabled encryption but DISABLED certificate verification.
** WARNING ** To make sure your data is secure set ssl_certificate_verification => true`

// resolveTLS reconciles the explicit ssl setting with the host schemes and
// reads the TLS material. Returns nil when TLS is neither forced by an
// https host nor requested explicitly; a non-nil settings value with
// Enabled=false when explicitly disabled.
//
// The forced-TLS decision is a local derived value; the caller's input map
// is never written to.
func resolveTLS(opts options.Options, hosts []httpclient.Host, log *logger.Logger) (*httpclient.TLSSettings, error) {
	forced := false
	for _, h := range hosts {
		if h.IsTLS() {
			forced = true
			break
		}
	}

	explicit, explicitSet := opts.Bool("ssl")
	if !forced && !explicitSet {
		return nil, nil
	}
	if !forced && !explicit {
		return &httpclient.TLSSettings{Enabled: false}, nil
	}

	settings := &httpclient.TLSSettings{
		Enabled:            true,
		CAFile:             opts.StringOr("cacert", ""),
		Truststore:         opts.StringOr("truststore", ""),
		TruststorePassword: opts.Secret("truststore_password"),
		Keystore:           opts.StringOr("keystore", ""),
		KeystorePassword:   opts.Secret("keystore_password"),
		CertFile:           opts.StringOr("tls_certificate", ""),
		KeyFile:            opts.StringOr("tls_key", ""),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if !opts.BoolOr("ssl_certificate_verification", true) {
		settings.VerifyDisabled = true
		log.Warn(verifyDisabledWarning)
	}

	return settings, nil
}
