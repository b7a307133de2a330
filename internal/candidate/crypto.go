package candidate

import (
	"fmt"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

func sealPII(d *CandidateDetails) (*CandidateDetails, error) {
	cp := *d
	var err error
	if cp.Phone != "" {
		if cp.Phone, err = config.Encrypt(cp.Phone); err != nil {
			return nil, fmt.Errorf("encrypt phone: %w", err)
		}
	}
	if cp.Address != "" {
		if cp.Address, err = config.Encrypt(cp.Address); err != nil {
			return nil, fmt.Errorf("encrypt address: %w", err)
		}
	}
	return &cp, nil
}

func openPII(d *CandidateDetails) error {
	var err error
	if d.Phone != "" {
		if d.Phone, err = config.Decrypt(d.Phone); err != nil {
			return fmt.Errorf("decrypt phone: %w", err)
		}
	}
	if d.Address != "" {
		if d.Address, err = config.Decrypt(d.Address); err != nil {
			return fmt.Errorf("decrypt address: %w", err)
		}
	}
	return nil
}
