package catalog

// Default returns the built-in reference dataset. It mirrors the shipped
// catalog file so the CLIs work without any configuration; deployments
// that tune ranges load their own JSON via Load.
func Default() *Catalog {
	return &Catalog{
		Profiles: []Profile{
			{
				Name: "Vitamin A",
				Description: "Vitamin A deficiency often presents as dry, rough skin " +
					"(phrynoderma) with follicular hyperkeratosis, most visible on the " +
					"outer arms and thighs.",
				ColorRanges: map[string]RegionRanges{
					SkinRegion: {
						RGB: ColorRange{Min: [3]float64{150, 110, 90}, Max: [3]float64{230, 180, 160}},
						HSV: ColorRange{Min: [3]float64{0, 30, 100}, Max: [3]float64{25, 140, 230}},
					},
				},
				Texture: TexturePattern{
					PatternType:    PatternRough,
					RoughThreshold: 1200,
					EdgeDensityMin: 0.08,
				},
				Symptoms: []string{
					"Dry, rough or scaly skin",
					"Night blindness",
					"Frequent infections",
					"Dry eyes",
				},
				RiskFactors: []string{
					"Low intake of orange and leafy green vegetables",
					"Fat malabsorption disorders",
					"Restrictive diets",
				},
			},
			{
				Name: "Vitamin B12",
				Description: "B12 deficiency can cause pallor with a faint yellow tint " +
					"(mild jaundice) and a smooth, uniform skin appearance.",
				ColorRanges: map[string]RegionRanges{
					SkinRegion: {
						RGB: ColorRange{Min: [3]float64{190, 160, 130}, Max: [3]float64{255, 225, 200}},
						HSV: ColorRange{Min: [3]float64{10, 20, 160}, Max: [3]float64{35, 110, 255}},
					},
				},
				Texture: TexturePattern{
					PatternType:    PatternSmooth,
					RoughThreshold: 900,
					EdgeDensityMin: 0.03,
				},
				Symptoms: []string{
					"Pale or slightly yellow skin",
					"Fatigue and weakness",
					"Tingling in hands and feet",
					"Glossitis (smooth, sore tongue)",
				},
				RiskFactors: []string{
					"Vegan or vegetarian diet without supplementation",
					"Pernicious anemia",
					"Gastric surgery or reduced stomach acid",
					"Age over 60",
				},
			},
			{
				Name: "Vitamin C",
				Description: "Scurvy-spectrum deficiency shows rough skin with " +
					"perifollicular redness, easy bruising, and corkscrew hairs.",
				ColorRanges: map[string]RegionRanges{
					SkinRegion: {
						RGB: ColorRange{Min: [3]float64{170, 110, 100}, Max: [3]float64{245, 180, 170}},
						HSV: ColorRange{Min: [3]float64{0, 40, 110}, Max: [3]float64{20, 160, 245}},
					},
				},
				Texture: TexturePattern{
					PatternType:    PatternRough,
					RoughThreshold: 1500,
					EdgeDensityMin: 0.10,
				},
				Symptoms: []string{
					"Easy bruising",
					"Rough, bumpy skin",
					"Slow wound healing",
					"Bleeding or swollen gums",
				},
				RiskFactors: []string{
					"Diet low in fresh fruit and vegetables",
					"Smoking",
					"Alcohol dependence",
				},
			},
			{
				Name: "Vitamin D",
				Description: "Vitamin D deficiency is associated with dull, pale skin " +
					"and a generally flat, low-contrast complexion.",
				ColorRanges: map[string]RegionRanges{
					SkinRegion: {
						RGB: ColorRange{Min: [3]float64{200, 150, 120}, Max: [3]float64{255, 200, 180}},
						HSV: ColorRange{Min: [3]float64{0, 50, 150}, Max: [3]float64{30, 150, 255}},
					},
				},
				Texture: TexturePattern{
					PatternType:    PatternSmooth,
					RoughThreshold: 1000,
					EdgeDensityMin: 0.05,
				},
				Symptoms: []string{
					"Pale, dull skin",
					"Bone or back pain",
					"Low mood",
					"Muscle weakness",
				},
				RiskFactors: []string{
					"Limited sun exposure",
					"Darker skin pigmentation at high latitudes",
					"Indoor lifestyle",
					"Age over 65",
				},
			},
			{
				Name: "Iron",
				Description: "Iron deficiency commonly presents as marked pallor, " +
					"most visible on the face and inner eyelids, sometimes with " +
					"brittle or ridged skin texture.",
				ColorRanges: map[string]RegionRanges{
					SkinRegion: {
						RGB: ColorRange{Min: [3]float64{180, 150, 140}, Max: [3]float64{250, 220, 210}},
						HSV: ColorRange{Min: [3]float64{0, 10, 140}, Max: [3]float64{30, 90, 255}},
					},
				},
				Texture: TexturePattern{
					PatternType:    PatternRough,
					RoughThreshold: 1100,
					EdgeDensityMin: 0.07,
				},
				Symptoms: []string{
					"Unusual paleness",
					"Fatigue",
					"Brittle nails",
					"Cold hands and feet",
				},
				RiskFactors: []string{
					"Heavy menstrual periods",
					"Low dietary iron",
					"Frequent blood donation",
					"Gastrointestinal blood loss",
				},
			},
		},
		Recommendations: map[string][]string{
			"Vitamin A": {
				"Eat orange and yellow vegetables such as carrots and sweet potatoes",
				"Include leafy greens like spinach and kale",
				"Consider liver, eggs, and fortified dairy",
			},
			"Vitamin B12": {
				"Include meat, fish, eggs, or dairy regularly",
				"Use fortified plant milks or nutritional yeast on plant-based diets",
				"Discuss B12 supplementation or injections with a clinician",
			},
			"Vitamin C": {
				"Eat citrus fruit, berries, and kiwi daily",
				"Add raw peppers, broccoli, and tomatoes to meals",
				"Avoid prolonged boiling of vegetables",
			},
			"Vitamin D": {
				"Get regular midday sun exposure where practical",
				"Eat oily fish such as salmon or mackerel",
				"Consider vitamin D3 supplementation in winter",
			},
			"Iron": {
				"Include red meat, lentils, and beans",
				"Pair plant iron sources with vitamin C to aid absorption",
				"Avoid tea or coffee with iron-rich meals",
			},
		},
	}
}
