package taxtable

import "github.com/smbledger/sapayroll/internal/domain"

// builtIn returns the statutory tables published by SARS.
// 2024/2025 and 2025/2026 carry the 2023/2024 brackets unchanged.
func builtIn() []*domain.TaxTable {
	return []*domain.TaxTable{
		table2023(),
		table2024(2024),
		table2024(2025),
		table2024(2026),
	}
}

// 2022/2023
func table2023() *domain.TaxTable {
	return &domain.TaxTable{
		Year: 2023,
		Brackets: []domain.TaxBracket{
			{Min: d(0), Max: upTo(226000), Rate: rate("0.18"), BaseTax: d(0)},
			{Min: d(226001), Max: upTo(353100), Rate: rate("0.26"), BaseTax: d(40680)},
			{Min: d(353101), Max: upTo(488700), Rate: rate("0.31"), BaseTax: d(73726)},
			{Min: d(488701), Max: upTo(641400), Rate: rate("0.36"), BaseTax: d(115762)},
			{Min: d(641401), Max: upTo(817600), Rate: rate("0.39"), BaseTax: d(170734)},
			{Min: d(817601), Max: upTo(1731600), Rate: rate("0.41"), BaseTax: d(239452)},
			{Min: d(1731601), Rate: rate("0.45"), BaseTax: d(614192)},
		},
		Rebates: domain.Rebates{
			Primary:   d(16425),
			Secondary: d(9000),
			Tertiary:  d(2997),
		},
		Thresholds: domain.Thresholds{
			Under65:   d(91250),
			Age65To74: d(141250),
			Age75Plus: d(157900),
		},
		UIFRate:               rate("0.01"),
		UIFMonthlyEarningsCap: d(17712),
		SDLRate:               rate("0.01"),
	}
}

// 2023/2024 schedule, reused while brackets were not adjusted for inflation
func table2024(year int) *domain.TaxTable {
	return &domain.TaxTable{
		Year: year,
		Brackets: []domain.TaxBracket{
			{Min: d(0), Max: upTo(237100), Rate: rate("0.18"), BaseTax: d(0)},
			{Min: d(237101), Max: upTo(370500), Rate: rate("0.26"), BaseTax: d(42678)},
			{Min: d(370501), Max: upTo(512800), Rate: rate("0.31"), BaseTax: d(77362)},
			{Min: d(512801), Max: upTo(673000), Rate: rate("0.36"), BaseTax: d(121475)},
			{Min: d(673001), Max: upTo(857900), Rate: rate("0.39"), BaseTax: d(179147)},
			{Min: d(857901), Max: upTo(1817000), Rate: rate("0.41"), BaseTax: d(251258)},
			{Min: d(1817001), Rate: rate("0.45"), BaseTax: d(644489)},
		},
		Rebates: domain.Rebates{
			Primary:   d(17235),
			Secondary: d(9444),
			Tertiary:  d(3145),
		},
		Thresholds: domain.Thresholds{
			Under65:   d(95750),
			Age65To74: d(148217),
			Age75Plus: d(165689),
		},
		UIFRate:               rate("0.01"),
		UIFMonthlyEarningsCap: d(17712),
		SDLRate:               rate("0.01"),
	}
}
