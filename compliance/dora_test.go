// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapControls(t *testing.T) {
	t.Run("no controls means no coverage anywhere", func(t *testing.T) {
		mappings := MapControls(nil)
		assert.Len(t, mappings, len(ArticleMatrix))
		for _, mapping := range mappings {
			assert.Equal(t, CoverageNone, mapping.CoverageLevel)
			assert.Equal(t, 0.0, mapping.Confidence)
		}
	})

	t.Run("output order is deterministic", func(t *testing.T) {
		mappings := MapControls(nil)
		assert.Equal(t, "Article 5", mappings[0].Article)
		assert.Equal(t, "Article 45", mappings[len(mappings)-1].Article)
	})

	t.Run("enough controls per category give full coverage", func(t *testing.T) {
		// Article 18 needs only CC7. One control matches at 0.85, two at 0.95.
		mappings := MapControls([]SOC2Control{
			{ControlID: "CC7.1", TSCCategory: "CC7"},
		})
		article18 := findMapping(t, mappings, "Article 18")
		assert.Equal(t, CoverageFull, article18.CoverageLevel)
		assert.Equal(t, 0.85, article18.Confidence)
		assert.Equal(t, "CC7.1", article18.SOC2ControlID)

		mappings = MapControls([]SOC2Control{
			{ControlID: "CC7.1", TSCCategory: "CC7"},
			{ControlID: "CC7.2", TSCCategory: "cc7"},
		})
		article18 = findMapping(t, mappings, "Article 18")
		assert.Equal(t, CoverageFull, article18.CoverageLevel)
		assert.Equal(t, 0.95, article18.Confidence)
	})

	t.Run("fewer controls than categories give partial coverage", func(t *testing.T) {
		// Article 7 needs CC3 and CC6. A single CC3 control covers half.
		mappings := MapControls([]SOC2Control{
			{ControlID: "CC3.2", TSCCategory: "CC3"},
		})
		article7 := findMapping(t, mappings, "Article 7")
		assert.Equal(t, CoveragePartial, article7.CoverageLevel)
		assert.InDelta(t, 0.725, article7.Confidence, 0.0001)
		assert.Equal(t, "CC3.2", article7.SOC2ControlID)
	})
}

func TestCalculateCoverage(t *testing.T) {
	t.Run("no mappings", func(t *testing.T) {
		result := CalculateCoverage(nil)
		assert.Equal(t, 0.0, result.OverallScore)
		assert.Equal(t, 0, result.ArticlesCovered)
		assert.Equal(t, len(ArticleMatrix), result.ArticlesTotal)
	})

	t.Run("weighted score dampened by confidence", func(t *testing.T) {
		result := CalculateCoverage([]ArticleMapping{
			{Article: "Article 28", CoverageLevel: CoverageFull, Confidence: 0.95, SOC2ControlID: "CC9.1"},
			{Article: "Article 30", CoverageLevel: CoveragePartial, Confidence: 0.7, SOC2ControlID: "CC9.2"},
			{Article: "Article 18", CoverageLevel: CoverageNone},
		})

		// (1.0*1.0*0.95 + 0.5*0.9*0.7 + 0) / (1.0 + 0.9 + 0.8)
		assert.InDelta(t, 0.469, result.OverallScore, 0.001)
		assert.Equal(t, 2, result.ArticlesCovered)

		article30 := result.CoverageByArticle["Article 30"]
		assert.Equal(t, "Key contractual provisions", article30.Title)
		assert.Equal(t, CoveragePartial, article30.CoverageLevel)
		assert.Equal(t, 0.9, article30.Weight)
	})
}

func TestGaps(t *testing.T) {
	coverage := CalculateCoverage([]ArticleMapping{
		{Article: "Article 28", CoverageLevel: CoverageFull, Confidence: 0.95},
		{Article: "Article 30", CoverageLevel: CoveragePartial, Confidence: 0.7},
		{Article: "Article 17", CoverageLevel: CoverageNone},
		{Article: "Article 45", CoverageLevel: CoverageNone},
	})

	gaps := Gaps(coverage)
	assert.Len(t, gaps, 3)

	// heaviest first: Article 17 (1.0), Article 30 (0.9), Article 45 (0.5)
	assert.Equal(t, "Article 17", gaps[0].Article)
	assert.Equal(t, "Article 30", gaps[1].Article)
	assert.Equal(t, "Article 45", gaps[2].Article)

	assert.Equal(t, []string{"CC9"}, gaps[1].RequiredTSC)
	assert.Contains(t, gaps[1].Remediation, "CC9")
	assert.Contains(t, gaps[1].Remediation, "Article 30")
}

func findMapping(t *testing.T, mappings []ArticleMapping, article string) ArticleMapping {
	t.Helper()
	for _, mapping := range mappings {
		if mapping.Article == article {
			return mapping
		}
	}
	t.Fatalf("no mapping for %s", article)
	return ArticleMapping{}
}
