package dto

import "stoper/internal/domain"

// Catalog carries the fixed reference lists the withdrawal form offers.
type Catalog struct {
	Models      []string `json:"models"`
	Types       []string `json:"types"`
	Reasons     []string `json:"reasons"`
	Supervisors []string `json:"supervisors"`
	RigTags     []string `json:"rigTags"`
	Teams       []string `json:"teams"`
}

func CatalogFromDomain() Catalog {
	reasons := make([]string, 0, len(domain.Reasons))
	for _, r := range domain.Reasons {
		reasons = append(reasons, string(r))
	}

	teams := make([]string, 0, len(domain.Teams))
	for _, t := range domain.Teams {
		teams = append(teams, string(t))
	}

	return Catalog{
		Models:      []string{string(domain.ModelT45), string(domain.ModelT50), string(domain.ModelT51)},
		Types:       []string{string(domain.TypePunho), string(domain.TypeHaste), string(domain.TypeBit35), string(domain.TypeBit45)},
		Reasons:     reasons,
		Supervisors: domain.Supervisors,
		RigTags:     domain.RigTags,
		Teams:       teams,
	}
}
