package domain

import "github.com/nordicmagic/backend/internal/entity"

// runeLuck reshapes the reward-tier probability per selected rune. Both the
// Elder Futhark glyph and the rune name are accepted; anything else draws
// with the default factor.
var runeLuck = map[string]float64{
	"ᚠ": 1.0, "Fehu": 1.0,
	"ᚢ": 0.9, "Uruz": 0.9,
	"ᚦ": 0.8, "Thurisaz": 0.8,
	"ᚨ": 1.0, "Ansuz": 1.0,
	"ᚱ": 0.9, "Raidho": 0.9,
	"ᚲ": 1.1, "Kenaz": 1.1,
	"ᚷ": 1.25, "Gebo": 1.25,
	"ᚹ": 1.15, "Wunjo": 1.15,
}

const defaultLuck = 1.0

func luckFor(rune string) float64 {
	if luck, ok := runeLuck[rune]; ok {
		return luck
	}

	return defaultLuck
}

// benefitBands are the unscaled probability widths of each tier, best first.
// Their cumulative sums (0.5, 5.5, 15.5, 35.5, 65.5) are scaled by the luck
// factor before the draw; the remainder falls through to the lowest tier.
var benefitBands = []struct {
	width float64
	tier  entity.BenefitTier
}{
	{0.5, entity.BenefitFreeSpell},
	{5, entity.Benefit25},
	{10, entity.Benefit20},
	{20, entity.Benefit15},
	{30, entity.Benefit10},
}

// pickBenefit maps a uniform roll in [0,100) to a benefit tier. Thresholds
// are evaluated ascending with half-open semantics so no boundary value is
// covered twice.
func pickBenefit(luck, roll float64) entity.BenefitTier {
	threshold := 0.0
	for _, band := range benefitBands {
		threshold += band.width * luck
		if roll < threshold {
			return band.tier
		}
	}

	return entity.Benefit5
}
