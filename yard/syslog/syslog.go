// Package syslog forwards the log entries of finished builds to an external
// syslog collector. Entries are read back from the store, so only redacted,
// persisted lines ever leave the process, and a build is marked drained only
// once all of its entries went out: delivery is at-least-once.
package syslog

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/racksec/srslog"

	"github.com/slipway/slipway/yard"
)

// Syslog is one connection to the collector. The drainer dials a fresh one
// per sweep and closes it afterwards, so a collector restart costs at most
// one sweep.
type Syslog struct {
	writer *srslog.Writer
}

// Dial connects to the collector. Supported transports are "udp", "tcp" and
// "tls" (TCP with TLS; caCert optionally pins the collector's CA).
func Dial(transport, address, caCert string) (*Syslog, error) {
	var (
		writer *srslog.Writer
		err    error
	)

	switch transport {
	case "tls":
		config := &tls.Config{}
		if caCert != "" {
			pem, readErr := os.ReadFile(caCert)
			if readErr != nil {
				return nil, fmt.Errorf("read syslog CA certificate: %w", readErr)
			}

			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("no certificates parsed from %s", caCert)
			}

			config.RootCAs = pool
		}

		writer, err = srslog.DialWithTLSConfig("tcp+tls", address, srslog.LOG_USER|srslog.LOG_INFO, "slipway", config)
	case "tcp", "udp":
		writer, err = srslog.Dial(transport, address, srslog.LOG_USER|srslog.LOG_INFO, "slipway")
	default:
		return nil, fmt.Errorf("unsupported syslog transport %q", transport)
	}

	if err != nil {
		return nil, fmt.Errorf("dial syslog collector %s://%s: %w", transport, address, err)
	}

	return &Syslog{writer: writer}, nil
}

// Write forwards one entry as an RFC 5424 message carrying the entry's own
// timestamp and sequence number. Severity follows the entry kind: errors and
// failed steps go out as ERR, warnings as WARNING, everything else as INFO.
func (s *Syslog) Write(hostname, tag string, event yard.LogEvent) error {
	at := time.Unix(event.Time, 0).UTC().Format(time.RFC3339)

	s.writer.SetFormatter(func(p srslog.Priority, _, _, content string) string {
		return fmt.Sprintf("<%d>1 %s %s %s - %d - %s", p, at, hostname, tag, event.Sequence, content)
	})

	switch event.Kind {
	case yard.EventError, yard.EventStepFailed:
		return s.writer.Err(event.Message)
	case yard.EventWarning:
		return s.writer.Warning(event.Message)
	default:
		return s.writer.Info(event.Message)
	}
}

func (s *Syslog) Close() error {
	return s.writer.Close()
}
