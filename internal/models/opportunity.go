package models

// Platform identifies one of the external marketplaces, stores or forums an
// opportunity has been observed on. The platform determines which
// metric-extraction formula applies to its raw data.
type Platform string

const (
	PlatformFiverr      Platform = "fiverr"
	PlatformUpwork      Platform = "upwork"
	PlatformKmong       Platform = "kmong"
	PlatformFreelancer  Platform = "freelancer"
	PlatformProductHunt Platform = "producthunt"
	PlatformReddit      Platform = "reddit"
	PlatformChrome      Platform = "chrome"
)

// Competition is the discrete saturation level derived from the numeric
// competition score.
type Competition string

const (
	CompetitionLow    Competition = "low"
	CompetitionMedium Competition = "medium"
	CompetitionHigh   Competition = "high"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendStable TrendDirection = "stable"
	TrendDown   TrendDirection = "down"
)

type Category string

const (
	CategoryProductivity  Category = "Productivity"
	CategoryMarketing     Category = "Marketing"
	CategoryDeveloperTool Category = "Developer Tools"
	CategoryEcommerce     Category = "E-commerce"
	CategorySaaS          Category = "SaaS"
	CategoryAIML          Category = "AI/ML"
	CategorySocialMedia   Category = "Social Media"
	CategoryFinance       Category = "Finance"
	CategoryEducation     Category = "Education"
	CategoryHealth        Category = "Health"
	CategoryAutomation    Category = "Automation"
	CategoryDesign        Category = "Design"
)

// Per-platform raw metric sub-records. When a platform entry is present it
// must carry every field that platform's extractor reads.

type FiverrData struct {
	GigCount         int     `json:"gigCount" yaml:"gig_count"`
	AveragePrice     float64 `json:"averagePrice" yaml:"average_price"`
	OrdersPerMonth   int     `json:"ordersPerMonth" yaml:"orders_per_month"`
	SellerCount      int     `json:"sellerCount" yaml:"seller_count"`
	TopSellerRevenue float64 `json:"topSellerRevenue" yaml:"top_seller_revenue"`
}

type UpworkData struct {
	JobPostings   int     `json:"jobPostings" yaml:"job_postings"`
	AverageRate   float64 `json:"averageRate" yaml:"average_rate"`
	ProposalCount int     `json:"proposalCount" yaml:"proposal_count"`
	HireRate      float64 `json:"hireRate" yaml:"hire_rate"`
}

type KmongData struct {
	ServiceCount     int         `json:"serviceCount" yaml:"service_count"`
	AveragePrice     float64     `json:"averagePrice" yaml:"average_price"` // KRW
	OrdersPerMonth   int         `json:"ordersPerMonth" yaml:"orders_per_month"`
	CompetitionLevel Competition `json:"competitionLevel" yaml:"competition_level"`
}

type FreelancerData struct {
	ProjectCount   int     `json:"projectCount" yaml:"project_count"`
	AverageBudget  float64 `json:"averageBudget" yaml:"average_budget"`
	BidCount       int     `json:"bidCount" yaml:"bid_count"`
	CompletionRate float64 `json:"completionRate" yaml:"completion_rate"`
}

type ProductHuntData struct {
	Upvotes  int `json:"upvotes" yaml:"upvotes"`
	Comments int `json:"comments" yaml:"comments"`
	Rank     int `json:"rank" yaml:"rank"`
}

type RedditData struct {
	Subscribers int    `json:"subscribers" yaml:"subscribers"`
	PainPoint   string `json:"painPoint" yaml:"pain_point"`
	PostCount   int    `json:"postCount" yaml:"post_count"`
	Sentiment   string `json:"sentiment" yaml:"sentiment"` // positive, neutral, negative
}

type ChromeData struct {
	Users   int     `json:"users" yaml:"users"`
	Rating  float64 `json:"rating" yaml:"rating"`
	Reviews int     `json:"reviews" yaml:"reviews"`
}

// DataPoints maps each platform an opportunity appears on to that platform's
// raw metrics. A single-source opportunity simply has one entry; zero entries
// is valid and scores to the neutral default.
type DataPoints struct {
	Fiverr      *FiverrData      `json:"fiverr,omitempty" yaml:"fiverr,omitempty"`
	Upwork      *UpworkData      `json:"upwork,omitempty" yaml:"upwork,omitempty"`
	Kmong       *KmongData       `json:"kmong,omitempty" yaml:"kmong,omitempty"`
	Freelancer  *FreelancerData  `json:"freelancer,omitempty" yaml:"freelancer,omitempty"`
	ProductHunt *ProductHuntData `json:"producthunt,omitempty" yaml:"producthunt,omitempty"`
	Reddit      *RedditData      `json:"reddit,omitempty" yaml:"reddit,omitempty"`
	Chrome      *ChromeData      `json:"chrome,omitempty" yaml:"chrome,omitempty"`
}

// RawOpportunity carries only source fields, before any derived score is
// attached. Scoring takes a RawOpportunity and returns a fully-populated
// Opportunity; raw records are never mutated in place.
type RawOpportunity struct {
	ID             string         `yaml:"id"`
	Title          string         `yaml:"title"`
	Description    string         `yaml:"description"`
	Platforms      []Platform     `yaml:"platforms"`
	AveragePrice   float64        `yaml:"average_price"` // USD
	DevTime        int            `yaml:"dev_time"`      // days
	TrendDirection TrendDirection `yaml:"trend_direction"`
	Category       Category       `yaml:"category"`
	Tags           []string       `yaml:"tags"`
	DataPoints     DataPoints     `yaml:"data_points"`
	TechStack      []string       `yaml:"tech_stack"`
	ActionPlan     string         `yaml:"action_plan"`
	CreatedAt      string         `yaml:"created_at"`
	UpdatedAt      string         `yaml:"updated_at"`
}

// Opportunity is the immutable-after-construction scored record. JSON field
// names are part of the API contract consumed by the presentation layer.
type Opportunity struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Platforms        []Platform     `json:"platforms"`
	AveragePrice     float64        `json:"averagePrice"`
	MonthlyRevenue   int            `json:"monthlyRevenue"`
	DevTime          int            `json:"devTime"`
	Competition      Competition    `json:"competition"`
	CompetitionScore int            `json:"competitionScore"` // 0-100
	DemandScore      int            `json:"demandScore"`      // 0-100
	MarketSize       int            `json:"marketSize"`       // 0-10, demandScore/10 for display compatibility
	TrendDirection   TrendDirection `json:"trendDirection"`
	ROIScore         int            `json:"roiScore"`
	Category         Category       `json:"category"`
	Tags             []string       `json:"tags"`
	DataPoints       DataPoints     `json:"dataPoints"`
	TechStack        []string       `json:"techStack,omitempty"`
	ActionPlan       string         `json:"actionPlan,omitempty"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

// LegacyOpportunity is the flat single-source variant served by the
// per-source endpoints. It predates the multi-platform model: revenue and
// marketSize are source fields, not derived ones, and its roiScore comes
// from the legacy formula.
type LegacyOpportunity struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Revenue     float64  `json:"revenue" yaml:"revenue"`
	DevTime     int      `json:"devTime" yaml:"dev_time"`
	MarketSize  int      `json:"marketSize" yaml:"market_size"`
	Category    Category `json:"category" yaml:"category"`
	Source      Platform `json:"source" yaml:"source"`
	ROIScore    int      `json:"roiScore" yaml:"roi_score"`
	Users       int      `json:"users,omitempty" yaml:"users,omitempty"`
	Subscribers int      `json:"subscribers,omitempty" yaml:"subscribers,omitempty"`
	PainPoint   string   `json:"painPoint,omitempty" yaml:"pain_point,omitempty"`
	Upvotes     int      `json:"upvotes,omitempty" yaml:"upvotes,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
}
