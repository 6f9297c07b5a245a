package domain

import (
	"encoding/json"
	"reflect"
)

// Observation is the canonical local representation of one iNaturalist
// observation after reshaping. Metadata becomes the file's frontmatter;
// Content becomes its body.
type Observation struct {
	// ID is the observation identifier assigned by iNaturalist.
	ID int64

	// Metadata holds the fixed frontmatter field set.
	Metadata Metadata

	// Content is the free-text body. The reshaping step never populates
	// it; the upstream field it would come from is not filled in, so it
	// stays empty on every write.
	Content string
}

// Taxon carries the organism's scientific and common names.
type Taxon struct {
	Name       any `json:"name"`
	CommonName any `json:"common_name"`
}

// Metadata is the fixed frontmatter field set extracted from an
// observation's detail document. Field order here fixes the key order in
// the serialised frontmatter, so encoding is byte-for-byte reproducible.
//
// Values are carried as decoded JSON: the remote API may send null for
// most of them and the local format preserves whatever it sent.
type Metadata struct {
	Syndication                    any   `json:"syndication"`
	Date                           any   `json:"date"`
	Taxon                          Taxon `json:"taxon"`
	QualityGrade                   any   `json:"quality_grade"`
	IdentificationsMostAgree       any   `json:"identifications_most_agree"`
	SpeciesGuess                   any   `json:"species_guess"`
	IdentificationsMostDisagree    any   `json:"identifications_most_disagree"`
	Captive                        any   `json:"captive"`
	ProjectIDs                     any   `json:"project_ids"`
	CommunityTaxonID               any   `json:"community_taxon_id"`
	GeoJSON                        any   `json:"geojson"`
	OwnersIdentificationFromVision any   `json:"owners_identification_from_vision"`
	IdentificationsCount           any   `json:"identifications_count"`
	Obscured                       any   `json:"obscured"`
	NumIdentificationAgreements    any   `json:"num_identification_agreements"`
	NumIdentificationDisagreements any   `json:"num_identification_disagreements"`
	PlaceGuess                     any   `json:"place_guess"`
	Photos                         any   `json:"photos"`
}

// MetadataKeys lists the frontmatter keys in serialisation order.
func MetadataKeys() []string {
	return []string{
		"syndication", "date", "taxon",
		"quality_grade", "identifications_most_agree", "species_guess",
		"identifications_most_disagree", "captive", "project_ids",
		"community_taxon_id", "geojson", "owners_identification_from_vision",
		"identifications_count", "obscured", "num_identification_agreements",
		"num_identification_disagreements", "place_guess", "photos",
	}
}

// Equal reports whether the metadata matches frontmatter previously read
// from disk. The comparison is structural and order-independent: both
// sides are reduced to generic decoded JSON before comparing, so an
// unchanged observation compares equal regardless of key order or the Go
// types it was decoded into.
func (m Metadata) Equal(frontmatter map[string]any) bool {
	data, err := json.Marshal(m)
	if err != nil {
		return false
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return false
	}
	return reflect.DeepEqual(generic, frontmatter)
}
