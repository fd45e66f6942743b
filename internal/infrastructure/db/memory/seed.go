package memory

import "github.com/ulysse/cms-api/internal/core/domain"

// CatalogSeed is the initial content loaded into a Catalog.
type CatalogSeed struct {
	Services    []domain.Service
	Insights    []domain.Insight
	CaseStudies []domain.CaseStudy
	Team        []domain.TeamMember
}

// Seed returns the content published on the site at launch. Each call
// builds fresh slices.
func Seed() CatalogSeed {
	return CatalogSeed{
		Services: []domain.Service{
			{
				ID:          "advisory",
				Title:       "Blockchain Advisory",
				Description: "Technical due diligence and infrastructure assessment for institutional grade deployments.",
				Details: []string{
					"PoW / PoS systems validation",
					"Infrastructure risk assessment",
					"Governance framework design",
					"Protocol selection & strategy",
				},
			},
			{
				ID:          "tokenization",
				Title:       "Tokenization Strategy",
				Description: "Bridging the gap between physical assets and digital liquidity through RWA frameworks.",
				Details: []string{
					"Real World Asset (RWA) modeling",
					"Token economy design",
					"Regulatory-aware architectures",
					"Lifecycle management systems",
				},
			},
			{
				ID:          "scaling",
				Title:       "Startup Capital Readiness",
				Description: "Preparing high-growth Web3 ventures for institutional investment and global scale.",
				Details: []string{
					"Technical roadmap audit",
					"Pitch deck & strategy alignment",
					"Investor due diligence prep",
					"Operational scaling roadmaps",
				},
			},
			{
				ID:          "consulting",
				Title:       "Web3 Infrastructure",
				Description: "Designing resilient, scalable systems that power the next generation of finance.",
				Details: []string{
					"API-driven fintech integration",
					"Validator node operations",
					"Smart contract systems audit",
					"Network performance optimization",
				},
			},
		},
		Insights: []domain.Insight{
			{
				ID:       "1",
				Title:    "The Future of Institutional RWA Tokenization",
				Category: "Investment",
				Date:     "Oct 24, 2024",
				ReadTime: "8 min read",
				Excerpt:  "An in-depth analysis of how mining operations are stabilizing the ERCOT grid while adhering to new SEC guidelines.",
				ImageURL: "https://picsum.photos/seed/blockchain/800/600",
			},
			{
				ID:       "2",
				Title:    "Regulatory Updates: Energy Compliance for Web3",
				Category: "Strategy",
				Date:     "Oct 15, 2024",
				ReadTime: "6 min read",
				Excerpt:  "Navigating the intersection of grid stability and proof-of-work in a rapidly evolving legislative landscape.",
				ImageURL: "https://picsum.photos/seed/finance/800/600",
			},
			{
				ID:       "3",
				Title:    "Optimizing Validator Node Performance",
				Category: "Blockchain",
				Date:     "Sep 28, 2024",
				ReadTime: "12 min read",
				Excerpt:  "How VCs are valuing real-world asset tokenization protocols in the current market cycle.",
				ImageURL: "https://picsum.photos/seed/tech/800/600",
			},
		},
		CaseStudies: []domain.CaseStudy{
			{
				ID:          "1",
				Title:       "Institutional Mining Operation Scaling",
				Description: "Designing and validating infrastructure for 500MW mining operation in Texas",
				Industry:    "Infrastructure",
				Results:     []string{"Grid compliance achieved", "99.9% uptime", "$50M+ capital deployed"},
				ImageURL:    "https://picsum.photos/seed/mining/800/600",
			},
			{
				ID:          "2",
				Title:       "RWA Tokenization Framework",
				Description: "Building real-world asset tokenization protocol for $200M in physical commodities",
				Industry:    "Tokenization",
				Results:     []string{"SEC compliance", "Institutional grade", "2M+ monthly transactions"},
				ImageURL:    "https://picsum.photos/seed/tokenization/800/600",
			},
		},
		Team: []domain.TeamMember{
			{
				ID:        "1",
				Name:      "Ulysse Ruff Williams",
				Title:     "Principal Advisor",
				Bio:       "Blockchain infrastructure specialist with 10+ years experience",
				ImageURL:  "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?q=80&w=1976",
				Expertise: []string{"Blockchain Infrastructure", "Mining Operations", "RWA Tokenization"},
				Social:    map[string]string{"linkedin": "#", "email": "ulysse@example.com"},
			},
		},
	}
}
