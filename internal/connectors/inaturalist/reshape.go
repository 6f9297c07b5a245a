package inaturalist

import (
	"fmt"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// Reshape extracts the fixed frontmatter field set from a detail
// document. Every source field must be present; a null value is fine but
// an absent key reports domain.ErrMissingField, which aborts the run.
// The content body is deliberately left empty: the upstream field it
// would come from is never populated.
func Reshape(id int64, detail map[string]any) (*domain.Observation, error) {
	uri, err := require(detail, "uri")
	if err != nil {
		return nil, fmt.Errorf("reshape observation %d: %w", id, err)
	}
	date, err := require(detail, "time_observed_at")
	if err != nil {
		return nil, fmt.Errorf("reshape observation %d: %w", id, err)
	}

	taxonVal, err := require(detail, "taxon")
	if err != nil {
		return nil, fmt.Errorf("reshape observation %d: %w", id, err)
	}
	taxonMap, ok := taxonVal.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("reshape observation %d: %w: taxon", id, domain.ErrMissingField)
	}
	taxonName, err := require(taxonMap, "name")
	if err != nil {
		return nil, fmt.Errorf("reshape observation %d: taxon: %w", id, err)
	}
	commonName, err := require(taxonMap, "preferred_common_name")
	if err != nil {
		return nil, fmt.Errorf("reshape observation %d: taxon: %w", id, err)
	}

	m := domain.Metadata{
		Syndication: uri,
		Date:        date,
		Taxon: domain.Taxon{
			Name:       taxonName,
			CommonName: commonName,
		},
	}

	// The remaining fields copy over unchanged, keeping whatever JSON
	// value the API sent.
	copied := []struct {
		key string
		dst *any
	}{
		{"quality_grade", &m.QualityGrade},
		{"identifications_most_agree", &m.IdentificationsMostAgree},
		{"species_guess", &m.SpeciesGuess},
		{"identifications_most_disagree", &m.IdentificationsMostDisagree},
		{"captive", &m.Captive},
		{"project_ids", &m.ProjectIDs},
		{"community_taxon_id", &m.CommunityTaxonID},
		{"geojson", &m.GeoJSON},
		{"owners_identification_from_vision", &m.OwnersIdentificationFromVision},
		{"identifications_count", &m.IdentificationsCount},
		{"obscured", &m.Obscured},
		{"num_identification_agreements", &m.NumIdentificationAgreements},
		{"num_identification_disagreements", &m.NumIdentificationDisagreements},
		{"place_guess", &m.PlaceGuess},
		{"photos", &m.Photos},
	}
	for _, f := range copied {
		v, err := require(detail, f.key)
		if err != nil {
			return nil, fmt.Errorf("reshape observation %d: %w", id, err)
		}
		*f.dst = v
	}

	return &domain.Observation{ID: id, Metadata: m, Content: ""}, nil
}

// require looks up key in m, distinguishing an absent key from a null
// value: null passes through, absence is an error.
func require(m map[string]any, key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, key)
	}
	return v, nil
}
