// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Article describes a single DORA article and the SOC 2 Trust Services
// Criteria categories that evidence it.
type Article struct {
	Title         string   `json:"title"`
	TSCCategories []string `json:"tscCategories"`
	Weight        float64  `json:"weight"`
	Description   string   `json:"description"`
}

// ArticleMatrix maps DORA articles to the SOC 2 TSC categories whose controls
// count as evidence. Weights express how heavy an article sits in the overall
// coverage score.
var ArticleMatrix = map[string]Article{
	// Chapter II, ICT risk management
	"Article 5": {
		Title:         "ICT risk management framework",
		TSCCategories: []string{"CC1", "CC3", "CC4", "CC9"},
		Weight:        1.0,
		Description:   "Governance and accountability for ICT risk management",
	},
	"Article 6": {
		Title:         "ICT systems, protocols and tools",
		TSCCategories: []string{"CC6", "CC7", "CC8", "A"},
		Weight:        1.0,
		Description:   "ICT systems resilience and protection",
	},
	"Article 7": {
		Title:         "Identification",
		TSCCategories: []string{"CC3", "CC6"},
		Weight:        0.8,
		Description:   "Identification of ICT risks and business functions",
	},
	"Article 8": {
		Title:         "Protection and prevention",
		TSCCategories: []string{"CC5", "CC6", "CC7", "C"},
		Weight:        1.0,
		Description:   "ICT security policies and access controls",
	},
	"Article 9": {
		Title:         "Detection",
		TSCCategories: []string{"CC7", "CC4"},
		Weight:        0.8,
		Description:   "Detection of anomalous activities and incidents",
	},
	"Article 10": {
		Title:         "Response and recovery",
		TSCCategories: []string{"CC7", "CC9", "A"},
		Weight:        1.0,
		Description:   "Incident response and recovery procedures",
	},
	"Article 11": {
		Title:         "Backup policies and procedures",
		TSCCategories: []string{"A", "CC7", "CC9"},
		Weight:        0.9,
		Description:   "Data backup and restoration",
	},
	"Article 12": {
		Title:         "Learning and evolving",
		TSCCategories: []string{"CC4", "CC3"},
		Weight:        0.6,
		Description:   "Lessons learned and continuous improvement",
	},
	"Article 13": {
		Title:         "Communication",
		TSCCategories: []string{"CC2", "CC7"},
		Weight:        0.7,
		Description:   "Crisis communication procedures",
	},

	// Chapter III, ICT incident reporting
	"Article 17": {
		Title:         "ICT-related incident management process",
		TSCCategories: []string{"CC7", "CC2"},
		Weight:        1.0,
		Description:   "Incident classification and management",
	},
	"Article 18": {
		Title:         "Classification of ICT-related incidents",
		TSCCategories: []string{"CC7"},
		Weight:        0.8,
		Description:   "Incident classification criteria",
	},
	"Article 19": {
		Title:         "Reporting of major ICT-related incidents",
		TSCCategories: []string{"CC7", "CC2"},
		Weight:        1.0,
		Description:   "Regulatory incident reporting",
	},

	// Chapter IV, resilience testing
	"Article 24": {
		Title:         "General requirements for testing",
		TSCCategories: []string{"CC4", "CC7", "A"},
		Weight:        0.9,
		Description:   "Testing program requirements",
	},
	"Article 25": {
		Title:         "Testing of ICT tools and systems",
		TSCCategories: []string{"CC7", "CC8", "A"},
		Weight:        0.8,
		Description:   "Vulnerability assessments and testing",
	},

	// Chapter V, third-party risk management
	"Article 28": {
		Title:         "General principles for third-party risk",
		TSCCategories: []string{"CC9"},
		Weight:        1.0,
		Description:   "Third-party ICT risk management strategy",
	},
	"Article 29": {
		Title:         "Preliminary assessment of ICT concentration risk",
		TSCCategories: []string{"CC3", "CC9"},
		Weight:        0.8,
		Description:   "Concentration risk assessment",
	},
	"Article 30": {
		Title:         "Key contractual provisions",
		TSCCategories: []string{"CC9"},
		Weight:        0.9,
		Description:   "Contract requirements for ICT services",
	},

	// Chapter VI, information sharing
	"Article 45": {
		Title:         "Information sharing arrangements",
		TSCCategories: []string{"CC2", "CC7"},
		Weight:        0.5,
		Description:   "Threat intelligence sharing",
	},
}

type CoverageLevel string

const (
	CoverageFull    CoverageLevel = "full"
	CoveragePartial CoverageLevel = "partial"
	CoverageNone    CoverageLevel = "none"
)

// SOC2Control is an extracted control statement from a SOC 2 report.
type SOC2Control struct {
	ControlID   string `json:"controlId"`
	TSCCategory string `json:"tscCategory"`
	Description string `json:"description"`
}

// ArticleMapping is the result of matching the controls of one report against
// a single DORA article.
type ArticleMapping struct {
	Article       string        `json:"article"`
	CoverageLevel CoverageLevel `json:"coverageLevel"`
	Confidence    float64       `json:"confidence"`
	SOC2ControlID string        `json:"soc2ControlId"`
}

// ArticleCoverage is the per-article line of a coverage report.
type ArticleCoverage struct {
	Title         string        `json:"title"`
	CoverageLevel CoverageLevel `json:"coverageLevel"`
	Confidence    float64       `json:"confidence"`
	SOC2ControlID string        `json:"soc2ControlId"`
	Weight        float64       `json:"weight"`
}

type CoverageResult struct {
	OverallScore      float64                    `json:"overallScore"`
	ArticlesCovered   int                        `json:"articlesCovered"`
	ArticlesTotal     int                        `json:"articlesTotal"`
	CoverageByArticle map[string]ArticleCoverage `json:"coverageByArticle"`
}

// Gap is an article with missing or only partial evidence, including a
// remediation hint naming the TSC categories that would close it.
type Gap struct {
	Article       string        `json:"article"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	CoverageLevel CoverageLevel `json:"coverageLevel"`
	RequiredTSC   []string      `json:"requiredTscCategories"`
	Remediation   string        `json:"remediation"`
}

// sortedArticles returns the matrix keys in numeric article order so mapping
// output is deterministic.
func sortedArticles() []string {
	keys := make([]string, 0, len(ArticleMatrix))
	for key := range ArticleMatrix {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return articleNumber(keys[i]) < articleNumber(keys[j])
	})
	return keys
}

func articleNumber(article string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(article, "Article "))
	if err != nil {
		return 0
	}
	return n
}

// MapControls matches extracted SOC 2 controls against every DORA article.
// An article counts as fully covered when at least as many controls exist as
// it lists TSC categories, with confidence 0.95 when there are twice as many.
// Fewer controls give partial coverage with a confidence that grows with the
// ratio of matched categories.
func MapControls(controls []SOC2Control) []ArticleMapping {
	byCategory := make(map[string][]SOC2Control)
	for _, control := range controls {
		category := strings.ToUpper(control.TSCCategory)
		byCategory[category] = append(byCategory[category], control)
	}

	mappings := make([]ArticleMapping, 0, len(ArticleMatrix))
	for _, article := range sortedArticles() {
		info := ArticleMatrix[article]

		var matched []SOC2Control
		for _, category := range info.TSCCategories {
			matched = append(matched, byCategory[category]...)
		}

		mapping := ArticleMapping{Article: article}
		switch {
		case len(matched) == 0:
			mapping.CoverageLevel = CoverageNone
		case len(matched) >= len(info.TSCCategories)*2:
			mapping.CoverageLevel = CoverageFull
			mapping.Confidence = 0.95
			mapping.SOC2ControlID = matched[0].ControlID
		case len(matched) >= len(info.TSCCategories):
			mapping.CoverageLevel = CoverageFull
			mapping.Confidence = 0.85
			mapping.SOC2ControlID = matched[0].ControlID
		default:
			mapping.CoverageLevel = CoveragePartial
			mapping.Confidence = 0.6 + float64(len(matched))/float64(len(info.TSCCategories))*0.25
			mapping.SOC2ControlID = matched[0].ControlID
		}
		mappings = append(mappings, mapping)
	}
	return mappings
}

// CalculateCoverage folds per-article mappings into a weighted overall score.
// Full coverage counts fully, partial counts half, both dampened by the
// mapping confidence.
func CalculateCoverage(mappings []ArticleMapping) CoverageResult {
	result := CoverageResult{
		ArticlesTotal:     len(ArticleMatrix),
		CoverageByArticle: map[string]ArticleCoverage{},
	}
	if len(mappings) == 0 {
		return result
	}

	var weightedScore, totalWeight float64
	for _, mapping := range mappings {
		info, ok := ArticleMatrix[mapping.Article]
		weight := info.Weight
		if !ok {
			weight = 1.0
		}

		var score float64
		switch mapping.CoverageLevel {
		case CoverageFull:
			score = 1.0
		case CoveragePartial:
			score = 0.5
		}

		weightedScore += score * weight * mapping.Confidence
		totalWeight += weight

		if mapping.CoverageLevel != CoverageNone {
			result.ArticlesCovered++
		}

		result.CoverageByArticle[mapping.Article] = ArticleCoverage{
			Title:         info.Title,
			CoverageLevel: mapping.CoverageLevel,
			Confidence:    mapping.Confidence,
			SOC2ControlID: mapping.SOC2ControlID,
			Weight:        weight,
		}
	}

	if totalWeight > 0 {
		result.OverallScore = round3(weightedScore / totalWeight)
	}
	return result
}

// Gaps lists the articles with no or only partial evidence, heaviest first.
func Gaps(coverage CoverageResult) []Gap {
	var gaps []Gap
	for _, article := range sortedArticles() {
		data, ok := coverage.CoverageByArticle[article]
		if !ok || data.CoverageLevel == CoverageFull {
			continue
		}
		info := ArticleMatrix[article]
		gaps = append(gaps, Gap{
			Article:       article,
			Title:         info.Title,
			Description:   info.Description,
			CoverageLevel: data.CoverageLevel,
			RequiredTSC:   info.TSCCategories,
			Remediation:   fmt.Sprintf("Implement controls addressing %s to meet %s requirements.", strings.Join(info.TSCCategories, ", "), article),
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return ArticleMatrix[gaps[i].Article].Weight > ArticleMatrix[gaps[j].Article].Weight
	})
	return gaps
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
