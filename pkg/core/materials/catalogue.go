package materials

// =============================================================================
// MATERIAL CATALOGUE
// Densities are handbook values; raw costs and manufacturing multipliers are
// literature-derived procurement benchmarks (2024 USD). Constructed once at
// process start and never mutated.
// =============================================================================

// catalogue maps lowercase canonical code -> Material.
var catalogue = map[string]Material{
	// Plasma-facing / structural metals
	"w":     {Name: "Tungsten", Code: "W", Density: 19250, RawCost: 100, MfgMult: 3.0, MaxTemp: 3500},
	"fs":    {Name: "Ferritic Steel (F82H)", Code: "FS", Density: 7800, RawCost: 10, MfgMult: 3.0, MaxTemp: 823},
	"ss316": {Name: "Stainless Steel 316", Code: "SS316", Density: 7860, RawCost: 5, MfgMult: 2.0, MaxTemp: 900},
	"cu":    {Name: "Copper", Code: "Cu", Density: 8960, RawCost: 10, MfgMult: 1.5, MaxTemp: 573},
	"sic":   {Name: "Silicon Carbide", Code: "SiC", Density: 3200, RawCost: 150, MfgMult: 3.0, MaxTemp: 1900},

	// Breeders, multipliers and liquid blankets
	"li4sio4": {Name: "Lithium Orthosilicate", Code: "Li4SiO4", Density: 2390, RawCost: 50, MfgMult: 2.0, MaxTemp: 1100},
	"be":      {Name: "Beryllium", Code: "Be", Density: 1850, RawCost: 850, MfgMult: 2.0, MaxTemp: 1000},
	"flibe":   {Name: "FLiBe Molten Salt", Code: "FLiBe", Density: 1940, RawCost: 40, MfgMult: 1.2, MaxTemp: 1700},
	"pbli":    {Name: "Lead-Lithium Eutectic", Code: "PbLi", Density: 9400, RawCost: 10, MfgMult: 1.2, MaxTemp: 1900},
	"li":      {Name: "Liquid Lithium", Code: "Li", Density: 512, RawCost: 70, MfgMult: 1.2, MaxTemp: 1600},

	// Magnet conductors
	"hts":   {Name: "REBCO Tape Composite", Code: "HTS", Density: 6000, RawCost: 80, MfgMult: 2.0, MaxTemp: 77},
	"nb3sn": {Name: "Nb3Sn Cable Composite", Code: "Nb3Sn", Density: 8100, RawCost: 50, MfgMult: 2.0, MaxTemp: 18},

	// Civil / shielding bulk
	"concrete": {Name: "Structural Concrete", Code: "Concrete", Density: 2300, RawCost: 0.2, MfgMult: 1.5, MaxTemp: 600},
	"b4c":      {Name: "Boron Carbide", Code: "B4C", Density: 2520, RawCost: 50, MfgMult: 2.0, MaxTemp: 2000},
}

// aliasToCode maps lowercase human-readable labels and legacy codes to the
// canonical catalogue code. Lookup lowercases before consulting this table.
var aliasToCode = map[string]string{
	"tungsten":              "w",
	"ferritic steel":        "fs",
	"f82h":                  "fs",
	"rafm":                  "fs",
	"stainless steel":       "ss316",
	"stainless":             "ss316",
	"316ss":                 "ss316",
	"copper":                "cu",
	"silicon carbide":       "sic",
	"lithium orthosilicate": "li4sio4",
	"solid breeder":         "li4sio4",
	"ceramic breeder":       "li4sio4",
	"beryllium":             "be",
	"flibe molten salt":     "flibe",
	"molten salt":           "flibe",
	"lead lithium":          "pbli",
	"lead-lithium":          "pbli",
	"pb-li":                 "pbli",
	"lithium":               "li",
	"liquid lithium":        "li",
	"rebco":                 "hts",
	"rebco tape":            "hts",
	"ybco":                  "hts",
	"niobium tin":           "nb3sn",
	"lts":                   "nb3sn",
	"boron carbide":         "b4c",
}
