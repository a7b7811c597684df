package services

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
)

const diagnosticSampleSize = 5

// DiagnosticReport is the outcome of a successful catalog check.
type DiagnosticReport struct {
	GotToken bool
	Sample   []string
}

// Diagnostics checks catalog credentials and reachability for operators.
type Diagnostics struct {
	tokens  ports.TokenChecker
	catalog ports.Catalog
}

func NewDiagnostics(tokens ports.TokenChecker, catalog ports.Catalog) *Diagnostics {
	return &Diagnostics{tokens: tokens, catalog: catalog}
}

// Diagnose fetches a token and a few US featured playlists. Unlike Analyze it
// surfaces every failure.
func (d *Diagnostics) Diagnose(ctx context.Context) (DiagnosticReport, error) {
	token, err := d.tokens.Token(ctx)
	if err != nil {
		return DiagnosticReport{}, fmt.Errorf("diagnostics: %w", err)
	}

	playlists, err := d.catalog.FeaturedPlaylists(ctx, domain.DefaultMarket, diagnosticSampleSize)
	if err != nil {
		return DiagnosticReport{}, fmt.Errorf("diagnostics: %w", err)
	}

	names := make([]string, 0, len(playlists))
	for _, p := range playlists {
		names = append(names, p.Name)
	}
	return DiagnosticReport{GotToken: token != "", Sample: names}, nil
}
