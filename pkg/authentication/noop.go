// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier that treats the raw token as the user ID,
// for local development only.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(_ context.Context, rawToken string) (string, error) {
	if rawToken == "" {
		return "", errors.New("empty token")
	}
	return rawToken, nil
}
