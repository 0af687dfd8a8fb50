// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

type Dimension string

const (
	DimensionInherent Dimension = "inherent"
	DimensionResidual Dimension = "residual"
)

// RiskPoint is the projection of a risk row the heat map works on.
type RiskPoint struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	InherentLikelihood int    `json:"inherentLikelihood"`
	InherentImpact     int    `json:"inherentImpact"`
	ResidualLikelihood int    `json:"residualLikelihood"`
	ResidualImpact     int    `json:"residualImpact"`
}

func (r RiskPoint) position(dim Dimension) Position {
	likelihood := r.InherentLikelihood
	impact := r.InherentImpact
	if dim == DimensionResidual {
		likelihood = r.ResidualLikelihood
		impact = r.ResidualImpact
	}
	score := Score(likelihood, impact)
	return Position{
		Likelihood: ClampScale(likelihood),
		Impact:     ClampScale(impact),
		Score:      score,
		Level:      LevelForScore(score),
	}
}

type Position struct {
	Likelihood int   `json:"likelihood"`
	Impact     int   `json:"impact"`
	Score      int   `json:"score"`
	Level      Level `json:"level"`
}

type Cell struct {
	Likelihood int      `json:"likelihood"`
	Impact     int      `json:"impact"`
	Score      int      `json:"score"`
	Level      Level    `json:"level"`
	Count      int      `json:"count"`
	RiskIDs    []string `json:"riskIds"`
}

type Distribution struct {
	Total       int               `json:"total"`
	Counts      map[Level]int     `json:"counts"`
	Percentages map[Level]float64 `json:"percentages"`
}

type HeatMap struct {
	Dimension    Dimension    `json:"dimension"`
	Cells        []Cell       `json:"cells"`
	Distribution Distribution `json:"distribution"`
}

// BuildHeatMap buckets the risks into the 25 cells of the matrix. Cells are
// ordered likelihood-major (L1I1, L1I2, ... L5I5) so renderers can index
// directly.
func BuildHeatMap(risks []RiskPoint, dim Dimension) HeatMap {
	cells := make([]Cell, 0, 25)
	index := make(map[[2]int]int, 25)
	for likelihood := 1; likelihood <= 5; likelihood++ {
		for impact := 1; impact <= 5; impact++ {
			score := likelihood * impact
			index[[2]int{likelihood, impact}] = len(cells)
			cells = append(cells, Cell{
				Likelihood: likelihood,
				Impact:     impact,
				Score:      score,
				Level:      LevelForScore(score),
				RiskIDs:    []string{},
			})
		}
	}

	for _, risk := range risks {
		pos := risk.position(dim)
		i := index[[2]int{pos.Likelihood, pos.Impact}]
		cells[i].Count++
		cells[i].RiskIDs = append(cells[i].RiskIDs, risk.ID)
	}

	return HeatMap{
		Dimension:    dim,
		Cells:        cells,
		Distribution: distribution(cells),
	}
}

func distribution(cells []Cell) Distribution {
	counts := map[Level]int{
		LevelLow:      0,
		LevelMedium:   0,
		LevelHigh:     0,
		LevelCritical: 0,
	}
	total := 0
	for _, cell := range cells {
		counts[cell.Level] += cell.Count
		total += cell.Count
	}

	percentages := make(map[Level]float64, len(counts))
	for level, count := range counts {
		if total == 0 {
			percentages[level] = 0
			continue
		}
		percentages[level] = round2(float64(count) / float64(total) * 100)
	}

	return Distribution{
		Total:       total,
		Counts:      counts,
		Percentages: percentages,
	}
}

// PositionMarker describes the movement of a single risk from its inherent to
// its residual position, used to draw arrows on the heat map.
type PositionMarker struct {
	RiskID  string   `json:"riskId"`
	Title   string   `json:"title"`
	From    Position `json:"from"`
	To      Position `json:"to"`
	Reduced bool     `json:"reduced"`
}

func PositionMarkers(risks []RiskPoint) []PositionMarker {
	markers := make([]PositionMarker, 0, len(risks))
	for _, risk := range risks {
		from := risk.position(DimensionInherent)
		to := risk.position(DimensionResidual)
		markers = append(markers, PositionMarker{
			RiskID:  risk.ID,
			Title:   risk.Title,
			From:    from,
			To:      to,
			Reduced: to.Score < from.Score,
		})
	}
	return markers
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
