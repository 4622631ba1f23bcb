package certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"
)

// Manager loads the certificate pair the server listens with.
type Manager struct {
	certFile string
	keyFile  string
	now      func() time.Time
}

// NewManager creates a Manager for a PEM certificate and key.
func NewManager(certFile, keyFile string) *Manager {
	return &Manager{certFile: certFile, keyFile: keyFile, now: time.Now}
}

// Leaf parses the first certificate in the cert file.
func (m *Manager) Leaf() (*x509.Certificate, error) {
	data, err := os.ReadFile(m.certFile)
	if err != nil {
		return nil, fmt.Errorf("read certificate: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, errors.New("failed to parse certificate PEM")
	}
	return x509.ParseCertificate(block.Bytes)
}

// TLSConfig loads the key pair into a server TLS config.
func (m *Manager) TLSConfig() (*tls.Config, error) {
	pair, err := tls.LoadX509KeyPair(m.certFile, m.keyFile)
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{pair},
	}, nil
}

// IsExpired checks if a certificate is expired.
func (m *Manager) IsExpired(cert *x509.Certificate) bool {
	return cert.NotAfter.Before(m.now())
}

// ExpiresWithin reports whether cert stops being valid within d.
func (m *Manager) ExpiresWithin(cert *x509.Certificate, d time.Duration) bool {
	return cert.NotAfter.Before(m.now().Add(d))
}
