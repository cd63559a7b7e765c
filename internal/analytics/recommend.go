package analytics

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Recommender produces the recommendation list for a computed result.
// Implementations may read the other derived views; the static table ignores them.
type Recommender interface {
	Recommend(r *Result) []Recommendation
}

var staticRecommendations = []Recommendation{
	{
		Type:        "Transfer",
		Title:       "North to West Transfer",
		Description: "Surplus of Royal Luxury Emulsion in North. West region facing stockout.",
		Priority:    PriorityHigh,
	},
	{
		Type:        "Restock",
		Title:       "Urgent Restock: White Enamel",
		Description: "South region inventory below safety levels.",
		Priority:    PriorityMedium,
	},
	{
		Type:        "Discount",
		Title:       "Clearance: Aging Stock",
		Description: "Apply 15% discount on Distemper in Central region to move dead stock.",
		Priority:    PriorityLow,
	},
}

// StaticRecommender returns the fixed recommendation table.
type StaticRecommender struct{}

func (StaticRecommender) Recommend(*Result) []Recommendation {
	out := make([]Recommendation, len(staticRecommendations))
	copy(out, staticRecommendations)
	return out
}

func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}
