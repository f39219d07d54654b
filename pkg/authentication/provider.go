// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// NewProvider discovers the issuer's keys through its well-known configuration.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return provider, nil
}

// NewVerifierWithJWKS skips discovery and reads signing keys from jwksURL.
func NewVerifierWithJWKS(ctx context.Context, issuer, jwksURL string) *oidc.IDTokenVerifier {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	return oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), &oidc.Config{SkipClientIDCheck: true})
}
