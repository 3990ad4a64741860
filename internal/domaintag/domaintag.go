// Package domaintag assigns a coarse subject-domain label to an article from
// its visible Wikipedia category names. Matching is plain substring search of
// keyword fragments over the joined lowercase category list; the domain with
// the most keyword hits wins.
package domaintag

import "strings"

// DefaultDomain is assigned when no keyword group matches.
const DefaultDomain = "Other"

// keyword fragments per domain, matched against lowercase category text.
var domainKeywords = map[string][]string{
	"Sciences": {
		"biology", "species", "organism", "chemical", "chemistry",
		"physics", "astronomy", "geology", "ecology", "anatomy",
		"medicine", "disease", "genetic", "cell biology", "molecular",
		"neuroscience", "zoology", "botany", "paleontology", "evolution",
		"mineral", "element", "biochem", "virology", "immunology",
		"pharmacology", "meteorology", "oceanography",
	},
	"Technology & Engineering": {
		"technology", "engineering", "computer", "software", "programming",
		"electronics", "telecommunications", "aviation", "automobile",
		"railway", "bridge", "spacecraft", "robotics", "internet",
	},
	"Mathematics": {
		"mathematics", "theorem", "algebra", "geometry", "topology",
		"number theory", "statistics", "probability", "combinatorics",
	},
	"History": {
		"history", "war ", "battle", "ancient", "medieval", "century",
		"empire", "dynasty", "revolution", "colonial", "world war",
	},
	"Geography & Places": {
		"geography", "countries", "cities", "islands", "rivers",
		"mountains", "regions", "states of", "provinces", "territories",
		"counties", "districts", "villages", "towns", "populated places",
		"neighborhoods",
	},
	"Arts & Culture": {
		"art", "music", "films", "literature", "novels", "albums",
		"songs", "painting", "sculpture", "theatre", "dance", "poetry",
		"television", "video game", "anime", "manga", "comics",
	},
	"Philosophy & Religion": {
		"philosophy", "religion", "theology", "ethics", "churches",
		"temples", "mosques", "buddhis", "hinduis", "christianity",
		"islam", "judais", "spiritual",
	},
	"Social Sciences": {
		"economics", "sociology", "psychology", "politic", "law",
		"government", "election", "education", "language", "linguistics",
		"anthropology", "archaeology", "criminology",
	},
	"Sports": {
		"sport", "football", "baseball", "basketball", "cricket",
		"rugby", "tennis", "olympic", "athlete", "championship",
		"tournament", "soccer", "hockey", "cycling", "motorsport",
	},
}

// Assign maps an article's category names to the best-matching domain label.
// Ties go to the lexically smallest domain name so the result is
// deterministic.
func Assign(categories []string) string {
	catText := strings.ToLower(strings.Join(categories, " "))

	best := DefaultDomain
	bestScore := 0
	for domain, keywords := range domainKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(catText, kw) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && domain < best) {
			best = domain
			bestScore = score
		}
	}
	return best
}

// Domains lists every known domain label plus the fallback.
func Domains() []string {
	out := make([]string, 0, len(domainKeywords)+1)
	for domain := range domainKeywords {
		out = append(out, domain)
	}
	out = append(out, DefaultDomain)
	return out
}
